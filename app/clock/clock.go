// Package clock resolves "now" in the department's fixed civil timezone.
package clock

import (
	"fmt"
	"time"
)

// Clock produces the current date and time in a fixed UTC offset,
// optionally shifted by a configured number of minutes.
type Clock struct {
	loc   *time.Location
	shift time.Duration

	// nowFunc is swapped in tests.
	nowFunc func() time.Time
}

// New builds a Clock for a zone offsetMinutes east of UTC, shifted by
// shiftMinutes.
func New(offsetMinutes, shiftMinutes int) *Clock {
	name := fmt.Sprintf("UTC%+03d:%02d", offsetMinutes/60, abs(offsetMinutes%60))
	return &Clock{
		loc:     time.FixedZone(name, offsetMinutes*60),
		shift:   time.Duration(shiftMinutes) * time.Minute,
		nowFunc: time.Now,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Now returns the current shifted time in the configured zone.
func (c *Clock) Now() time.Time {
	return c.nowFunc().Add(c.shift).In(c.loc)
}

// DayOfWeek returns the current weekday as 1 (Monday) through 7 (Sunday).
func (c *Clock) DayOfWeek() int {
	return DayOfWeek(c.Now())
}

// TimeOfDay returns the current time as zero-padded "HH:MM".
func (c *Clock) TimeOfDay() string {
	return c.Now().Format("15:04")
}

// Today returns the current civil date at midnight in the configured zone.
func (c *Clock) Today() time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)
}

// Location returns the configured fixed zone.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// DayOfWeek maps a time's weekday to 1 (Monday) through 7 (Sunday).
// time.Weekday has Sunday as 0; the timetable uses the ISO convention.
func DayOfWeek(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
