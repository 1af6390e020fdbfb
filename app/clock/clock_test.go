package clock

import (
	"testing"
	"time"
)

func fixed(c *Clock, t time.Time) *Clock {
	c.nowFunc = func() time.Time { return t }
	return c
}

func TestDayOfWeekRange(t *testing.T) {
	// 2024-01-01 is a Monday.
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	want := []int{1, 2, 3, 4, 5, 6, 7}
	for i := 0; i < 7; i++ {
		got := DayOfWeek(start.AddDate(0, 0, i))
		if got != want[i] {
			t.Errorf("day %d: DayOfWeek() = %d, want %d", i, got, want[i])
		}
		if got < 1 || got > 7 {
			t.Errorf("day %d: DayOfWeek() = %d, out of [1,7]", i, got)
		}
	}
}

func TestSundayMapsToSeven(t *testing.T) {
	sunday := time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC)
	if got := DayOfWeek(sunday); got != 7 {
		t.Errorf("DayOfWeek(Sunday) = %d, want 7", got)
	}
}

func TestTimeOfDayZeroPadded(t *testing.T) {
	c := fixed(New(0, 0), time.Date(2024, 3, 4, 9, 5, 0, 0, time.UTC))
	if got := c.TimeOfDay(); got != "09:05" {
		t.Errorf("TimeOfDay() = %q, want %q", got, "09:05")
	}
}

func TestOffsetAndShift(t *testing.T) {
	// 23:40 UTC + 5:30 offset + 60 minute shift = 06:10 next day.
	c := fixed(New(330, 60), time.Date(2024, 3, 4, 23, 40, 0, 0, time.UTC))

	if got := c.TimeOfDay(); got != "06:10" {
		t.Errorf("TimeOfDay() = %q, want %q", got, "06:10")
	}
	// 2024-03-04 is a Monday, so the shifted instant is Tuesday.
	if got := c.DayOfWeek(); got != 2 {
		t.Errorf("DayOfWeek() = %d, want 2", got)
	}
	today := c.Today()
	if today.Day() != 5 || today.Hour() != 0 || today.Minute() != 0 {
		t.Errorf("Today() = %v, want midnight on the 5th", today)
	}
}
