package calendar_test

import (
	"testing"
	"time"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/timetravel/calendar"
)

func TestUnit_Canon(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("canonical spellings pass through", func(t *testcase.T) {
		for _, u := range calendar.Units() {
			got, ok := u.Canon()
			assert.True(t, ok)
			assert.Equal(t, u, got)
		}
	})

	s.Test("plural spellings map to their canonical unit", func(t *testcase.T) {
		got, ok := calendar.Unit("days").Canon()
		assert.True(t, ok)
		assert.Equal(t, calendar.Day, got)

		got, ok = calendar.Unit("months").Canon()
		assert.True(t, ok)
		assert.Equal(t, calendar.Month, got)
	})

	s.Test("casing is forgiven", func(t *testcase.T) {
		got, ok := calendar.Unit("Years").Canon()
		assert.True(t, ok)
		assert.Equal(t, calendar.Year, got)
	})

	s.Test("an unknown unit reports not ok", func(t *testcase.T) {
		_, ok := calendar.Unit(t.Random.StringNC(8, "qwrtzpsdfg")).Canon()
		assert.False(t, ok)
	})
}

func TestAdd(t *testing.T) {
	s := testcase.NewSpec(t)

	var start = let.Var(s, func(t *testcase.T) time.Time {
		return t.Random.Time()
	})

	s.Test("day sized and larger units go through calendar arithmetic", func(t *testcase.T) {
		n := t.Random.IntB(1, 30)
		assert.True(t, calendar.Add(start.Get(t), n, calendar.Day).Equal(start.Get(t).AddDate(0, 0, n)))
		assert.True(t, calendar.Add(start.Get(t), n, calendar.Week).Equal(start.Get(t).AddDate(0, 0, n*7)))
		assert.True(t, calendar.Add(start.Get(t), n, calendar.Month).Equal(start.Get(t).AddDate(0, n, 0)))
		assert.True(t, calendar.Add(start.Get(t), n, calendar.Year).Equal(start.Get(t).AddDate(n, 0, 0)))
	})

	s.Test("sub-day units advance by wall-clock duration", func(t *testcase.T) {
		n := t.Random.IntB(1, 59)
		assert.True(t, calendar.Add(start.Get(t), n, calendar.Second).Equal(start.Get(t).Add(time.Duration(n)*time.Second)))
		assert.True(t, calendar.Add(start.Get(t), n, calendar.Minute).Equal(start.Get(t).Add(time.Duration(n)*time.Minute)))
		assert.True(t, calendar.Add(start.Get(t), n, calendar.Hour).Equal(start.Get(t).Add(time.Duration(n)*time.Hour)))
	})

	s.Test("a negative amount subtracts", func(t *testcase.T) {
		n := t.Random.IntB(1, 30)
		forth := calendar.Add(start.Get(t), n, calendar.Day)
		back := calendar.Add(forth, -n, calendar.Day)
		assert.True(t, back.Equal(start.Get(t)))
	})

	s.Test("plural unit spellings work the same as the canonical ones", func(t *testcase.T) {
		assert.True(t, calendar.Add(start.Get(t), 3, "days").
			Equal(calendar.Add(start.Get(t), 3, calendar.Day)))
	})

	s.Test("an unknown unit leaves the timestamp unchanged", func(t *testcase.T) {
		got := calendar.Add(start.Get(t), t.Random.IntB(1, 42), "lightyear")
		assert.True(t, got.Equal(start.Get(t)))
	})

	s.Test("month-end overflow follows Go's normalisation rules", func(t *testcase.T) {
		jan31 := time.Date(2015, time.January, 31, 0, 0, 0, 0, time.UTC)
		got := calendar.Add(jan31, 1, calendar.Month)
		assert.Equal(t, "2015-03-03", got.Format("2006-01-02"))
	})
}
