package timetravel

import (
	"context"
	"fmt"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/tasker"
)

// ErrInvalidTraveler is returned by Run when the traveler configuration is unusable.
// The returned error message carries every violation Validate found.
const ErrInvalidTraveler errorkit.Error = "Invalid TimeTraveler"

// StepFunc is the callback Run invokes once per step,
// with the cursor as it stands before the given step advances it.
// A non nil error aborts the remaining iterations and is returned by Run as is.
type StepFunc func(Cursor) error

type genericStepFunc interface {
	StepFunc | func(Cursor) error | func(Cursor)
}

// ToStepFunc converts the supported callback signatures into a StepFunc.
func ToStepFunc[FN genericStepFunc](fn FN) StepFunc {
	switch fn := any(fn).(type) {
	case StepFunc:
		return fn
	case func(Cursor) error:
		return fn
	case func(Cursor):
		return func(c Cursor) error { fn(c); return nil }
	default:
		panic(fmt.Sprintf("%T is not a supported StepFunc", fn))
	}
}

// Run drives a full synchronous iteration over the configured number of steps.
//
// When the configuration is invalid, Run fails fast with ErrInvalidTraveler
// before a single callback invocation or cursor movement takes place.
// Otherwise the callback runs exactly Steps times, each time receiving the
// cursor prior to advancing, so the first invocation always carries the
// starting timestamp at step zero. A non-positive step count yields zero
// invocations and is not an error.
//
// The cursor keeps its position after Run returns,
// so calling Run again continues the series rather than restarting it.
func (tt *Traveler) Run(fn StepFunc) error {
	if violations := tt.Validate(); 0 < len(violations) {
		return fmt.Errorf("%w: %s", ErrInvalidTraveler, strings.Join(violations, ", "))
	}
	steps, _ := toSteps(tt.config.Steps)
	for i := 0; i < steps; i++ {
		if err := fn(tt.Current); err != nil {
			return err
		}
		tt.StepForward()
	}
	return nil
}

// Task wraps the same iteration Run does into a tasker.Task,
// so a series can be generated as part of background task execution
// (tasker.Concurrence, tasker.Main).
// Iteration order and cursor semantics are identical to Run;
// only the delivery of the outcome is deferred to the task result.
func (tt *Traveler) Task(fn StepFunc) tasker.Task {
	return func(ctx context.Context) error {
		logger.Debug(ctx, "time traveler run",
			logging.Field("starts_at", tt.StartsAt),
			logging.Field("time_units", tt.config.TimeUnits),
			logging.Field("time_scale", tt.scale()))
		err := tt.Run(fn)
		if err != nil {
			logger.Debug(ctx, "time traveler run failed", logging.ErrField(err))
		}
		return err
	}
}

// Run is the package level convenience entry point:
// it constructs a Traveler from the configuration and immediately runs it.
func Run[FN genericStepFunc](c Config, fn FN) error {
	return New(c).Run(ToStepFunc(fn))
}
