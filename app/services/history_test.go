package services

import (
	"testing"
	"time"

	"github.com/sumanth2354/ITAttendance/app/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekWindow(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"monday", date(2024, 3, 4), date(2024, 3, 4), date(2024, 3, 10)},
		{"midweek", date(2024, 3, 7), date(2024, 3, 4), date(2024, 3, 10)},
		// A Sunday belongs to the week begun the preceding Monday.
		{"sunday wraps back", date(2024, 3, 10), date(2024, 3, 4), date(2024, 3, 10)},
		{"time of day ignored", time.Date(2024, 3, 6, 23, 59, 0, 0, time.UTC), date(2024, 3, 4), date(2024, 3, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekWindow(tt.ref)
			if !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
				t.Errorf("WeekWindow(%v) = (%v, %v), want (%v, %v)",
					tt.ref, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(date(2024, 2, 15))
	if !start.Equal(date(2024, 2, 1)) || !end.Equal(date(2024, 2, 29)) {
		t.Errorf("MonthWindow(feb) = (%v, %v), want leap february", start, end)
	}

	start, end = MonthWindow(date(2023, 12, 31))
	if !start.Equal(date(2023, 12, 1)) || !end.Equal(date(2023, 12, 31)) {
		t.Errorf("MonthWindow(dec) = (%v, %v)", start, end)
	}
}

func TestEnumerateDates(t *testing.T) {
	dates := enumerateDates(date(2024, 3, 4), date(2024, 3, 10))
	if len(dates) != 7 {
		t.Fatalf("got %d dates, want 7", len(dates))
	}
	if dates[0].Weekday != "Mon" || dates[0].Day != 4 || dates[0].ISO != "2024-03-04" {
		t.Errorf("first date = %+v", dates[0])
	}
	if dates[6].Weekday != "Sun" || dates[6].Day != 10 {
		t.Errorf("last date = %+v", dates[6])
	}
}

func TestBuildCellsSeedsPeriodsPerWeekday(t *testing.T) {
	students := []*models.Student{{ID: "stu-a"}, {ID: "stu-b"}}
	// One Monday period only; every other weekday falls back to general.
	periods := []*models.TimetablePeriod{
		{ID: "p-mon", DayOfWeek: 1, PeriodNumber: 1, StartTime: "09:00", EndTime: "10:00"},
	}
	dates := enumerateDates(date(2024, 3, 4), date(2024, 3, 10))

	cells := buildCells(students, periods, nil, dates)

	monday := cells["stu-a"]["2024-03-04"]
	if _, ok := monday["p-mon"]; !ok {
		t.Errorf("monday cell missing period key: %v", monday)
	}
	if _, ok := monday[GeneralCell]; ok {
		t.Errorf("monday cell should not have a general key when periods are scheduled: %v", monday)
	}

	tuesday := cells["stu-a"]["2024-03-05"]
	if len(tuesday) != 1 {
		t.Errorf("tuesday cell = %v, want only a general key", tuesday)
	}
	if _, ok := tuesday[GeneralCell]; !ok {
		t.Errorf("tuesday cell missing general fallback: %v", tuesday)
	}
}

func TestBuildCellsOverlaysRecords(t *testing.T) {
	students := []*models.Student{{ID: "stu-a"}}
	periods := []*models.TimetablePeriod{
		{ID: "p-mon", DayOfWeek: 1, PeriodNumber: 1, StartTime: "09:00", EndTime: "10:00"},
	}
	dates := enumerateDates(date(2024, 3, 4), date(2024, 3, 10))

	otherPeriod := "p-other"
	records := grouped([]*models.HistoryRecord{
		{StudentID: "stu-a", Date: date(2024, 3, 4), PeriodID: strptr("p-mon"), Status: models.Present},
		// A record against someone else's period lands in general.
		{StudentID: "stu-a", Date: date(2024, 3, 4), PeriodID: &otherPeriod, Status: models.Absent},
		// A manual period-less record always lands in general.
		{StudentID: "stu-a", Date: date(2024, 3, 5), Status: models.Absent},
		// Records for unknown students are dropped.
		{StudentID: "ghost", Date: date(2024, 3, 4), Status: models.Present},
	})

	cells := buildCells(students, periods, records, dates)

	monday := cells["stu-a"]["2024-03-04"]
	if monday["p-mon"] != models.Present {
		t.Errorf("monday period cell = %q, want present", monday["p-mon"])
	}
	if monday[GeneralCell] != models.Absent {
		t.Errorf("monday general cell = %q, want absent", monday[GeneralCell])
	}

	tuesday := cells["stu-a"]["2024-03-05"]
	if tuesday[GeneralCell] != models.Absent {
		t.Errorf("tuesday general cell = %q, want absent", tuesday[GeneralCell])
	}

	if _, ok := cells["ghost"]; ok {
		t.Error("unknown student should not appear in the grid")
	}
}

func TestBuildCellsEmptyClass(t *testing.T) {
	cells := buildCells(nil, nil, nil, enumerateDates(date(2024, 3, 4), date(2024, 3, 10)))
	if len(cells) != 0 {
		t.Errorf("empty class grid = %v, want empty", cells)
	}
}

func strptr(s string) *string { return &s }
