// Package calendar supplies the date handling that timetravel delegates to:
// timestamp coercion, validity checking and unit based calendar arithmetic.
package calendar

import (
	"strings"
	"time"

	"go.llib.dev/frameless/pkg/enum"
)

// Unit is a calendar granularity that a timestamp can be advanced by.
type Unit string

const (
	Second Unit = "second"
	Minute Unit = "minute"
	Hour   Unit = "hour"
	Day    Unit = "day"
	Week   Unit = "week"
	Month  Unit = "month"
	Year   Unit = "year"
)

var _ = enum.Register[Unit](Second, Minute, Hour, Day, Week, Month, Year)

// Units returns every registered calendar Unit.
func Units() []Unit {
	return []Unit{Second, Minute, Hour, Day, Week, Month, Year}
}

// Canon maps the accepted unit spellings to their canonical Unit value.
// Plural spellings ("days", "months") are accepted alongside the singular ones.
// The ok return reports whether the unit is known.
func (u Unit) Canon() (Unit, bool) {
	c := Unit(strings.TrimSuffix(strings.ToLower(string(u)), "s"))
	switch c {
	case Second, Minute, Hour, Day, Week, Month, Year:
		return c, true
	}
	return u, false
}

// layouts are the ISO-8601 forms Coerce accepts for string timestamps.
var layouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Coerce turns a supported timestamp input into a time.Time value.
// Supported inputs are time.Time values and ISO-8601 formatted strings.
// The ok return reports whether the input could be understood as a valid
// calendar timestamp; Coerce itself never fails.
//
// time.Parse already rejects internally inconsistent dates such as a
// day-of-month overflow, so a successful parse implies calendar validity.
func Coerce(v any) (time.Time, bool) {
	switch v := v.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case string:
		return parse(v)
	default:
		return time.Time{}, false
	}
}

func parse(raw string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Add advances t by the given amount of units. A negative amount subtracts.
// Day and larger units go through time.Time.AddDate, so Go's date
// normalisation rules govern month-end overflow.
// An unknown unit leaves t unchanged.
func Add(t time.Time, amount int, u Unit) time.Time {
	cu, ok := u.Canon()
	if !ok {
		return t
	}
	switch cu {
	case Second:
		return t.Add(time.Duration(amount) * time.Second)
	case Minute:
		return t.Add(time.Duration(amount) * time.Minute)
	case Hour:
		return t.Add(time.Duration(amount) * time.Hour)
	case Day:
		return t.AddDate(0, 0, amount)
	case Week:
		return t.AddDate(0, 0, amount*7)
	case Month:
		return t.AddDate(0, amount, 0)
	case Year:
		return t.AddDate(amount, 0, 0)
	}
	return t
}
