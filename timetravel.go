// Package timetravel generates discrete time series by repeatedly advancing
// a starting point-in-time with a fixed calendar increment,
// invoking a caller supplied function at each step with the current cursor.
// It is meant for simulating time-series data in tests, demos and UI prototypes.
package timetravel

import (
	"fmt"
	"math"
	"time"

	"go.llib.dev/frameless/pkg/zerokit"

	"go.llib.dev/timetravel/calendar"
)

// Config describes a time series for a Traveler.
type Config struct {
	// StartsAt is the first point-in-time of the series.
	// It accepts a time.Time value or an ISO-8601 formatted string.
	// An unusable value is kept and reported lazily through Traveler.Validate.
	StartsAt any
	// Steps is the total number of intervals Run iterates over.
	// It is expected to hold a whole integer value.
	Steps any
	// TimeUnits is the calendar granularity of a single increment.
	TimeUnits calendar.Unit
	// TimeScale is the number of TimeUnits a single step advances with.
	// Defaults to 1.
	TimeScale int
}

// Cursor is the current position of a Traveler within its series.
type Cursor struct {
	// Step is the number of intervals elapsed since the series start.
	// Manual backward stepping can take it negative.
	Step int
	// Time is the point-in-time the series currently stands at.
	Time time.Time
}

func (c Cursor) String() string {
	return fmt.Sprintf("step:%d time:%s", c.Step, c.Time.Format(time.RFC3339))
}

// Traveler is a stateful stepper over a discrete time series.
// Construct it with New, then drive it with Run or step it manually.
// A Traveler is not safe for concurrent use.
type Traveler struct {
	// StartsAt is the coerced first point-in-time of the series.
	// It is a snapshot taken at construction; stepping never changes it.
	StartsAt time.Time
	// Current is the cursor of the series.
	// StepForward, StepBackward and Run mutate it in place,
	// though Current.Time itself is reassigned a fresh value on each step,
	// so timestamps already handed out stay frozen.
	Current Cursor

	config Config
}

// New constructs a Traveler from the given configuration.
// It coerces StartsAt and positions the cursor at step zero,
// but performs no validation; see Validate and IsValid.
func New(c Config) *Traveler {
	startsAt, _ := calendar.Coerce(c.StartsAt)
	return &Traveler{
		StartsAt: startsAt,
		Current:  Cursor{Step: 0, Time: startsAt},
		config:   c,
	}
}

// Validate checks the traveler configuration
// and returns one human readable violation per broken rule.
// An empty result means the configuration is usable.
// Every rule is evaluated on each call; nothing is cached.
func (tt *Traveler) Validate() []string {
	var violations []string
	if _, ok := calendar.Coerce(tt.config.StartsAt); !ok {
		violations = append(violations, "starts_at must be a valid ISO date")
	}
	if _, ok := toSteps(tt.config.Steps); !ok {
		violations = append(violations, "steps must be an integer")
	}
	return violations
}

// IsValid reports whether Validate yields no violation.
func (tt *Traveler) IsValid() bool {
	return len(tt.Validate()) == 0
}

// StepForward moves the cursor a single step ahead in the series:
// the step count grows by one and the cursor time advances by
// TimeScale amount of TimeUnits.
// It performs no validation and is safe to call on an invalid Traveler.
func (tt *Traveler) StepForward() {
	tt.Current.Step++
	tt.Current.Time = calendar.Add(tt.Current.Time, tt.scale(), tt.config.TimeUnits)
}

// StepBackward is the inverse of StepForward.
func (tt *Traveler) StepBackward() {
	tt.Current.Step--
	tt.Current.Time = calendar.Add(tt.Current.Time, -tt.scale(), tt.config.TimeUnits)
}

func (tt *Traveler) scale() int {
	return zerokit.Coalesce(tt.config.TimeScale, 1)
}

// toSteps reports whether v holds a whole integer value, and converts it.
// Booleans and strings never qualify,
// floating point values qualify only without a fractional part.
func toSteps(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return unsignedOf(uint64(v))
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return unsignedOf(v)
	case float32:
		return wholeOf(float64(v))
	case float64:
		return wholeOf(v)
	default:
		return 0, false
	}
}

func wholeOf(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, false
	}
	return int(f), true
}

// unsignedOf rejects unsigned values beyond the int range
// instead of letting the conversion wrap them negative.
func unsignedOf(v uint64) (int, bool) {
	if math.MaxInt < v {
		return 0, false
	}
	return int(v), true
}
