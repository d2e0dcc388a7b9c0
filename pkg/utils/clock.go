package util

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Clock reads the current time in the business time zone.
type Clock struct {
	Location *time.Location
	NowFunc  func() time.Time
}

func NewClock(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Clock{}, fmt.Errorf("load time zone %s: %w", timezone, err)
	}
	return Clock{Location: loc, NowFunc: time.Now}, nil
}

// FixedClock always reports t. Used by tests and seeders.
func FixedClock(t time.Time) Clock {
	return Clock{Location: t.Location(), NowFunc: func() time.Time { return t }}
}

func (c Clock) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

func (c Clock) Now() time.Time {
	now := time.Now
	if c.NowFunc != nil {
		now = c.NowFunc
	}
	return now().In(c.location())
}

func (c Clock) Loc() *time.Location {
	return c.location()
}

// TodayDateKey returns the local calendar date as YYYY-MM-DD.
func TodayDateKey(c Clock) string {
	return DateKey(c.Now(), c.location())
}

func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

func MonthKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(MonthLayout)
}

// MonthBounds returns the first and last date keys of the month containing t.
func MonthBounds(t time.Time, loc *time.Location) (string, string) {
	local := t.In(loc)
	first := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout)
}
