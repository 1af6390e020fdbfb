package services

import (
	"testing"

	"github.com/sumanth2354/ITAttendance/app/models"
)

func period(id string, number int, start, end string, isBreak bool) *models.TimetablePeriod {
	return &models.TimetablePeriod{
		ID:           id,
		PeriodNumber: number,
		StartTime:    start,
		EndTime:      end,
		IsBreak:      isBreak,
	}
}

func TestMatchPeriod(t *testing.T) {
	periods := []*models.TimetablePeriod{
		period("p1", 1, "09:00", "10:00", false),
		period("p2", 2, "10:00", "11:00", false),
		period("br", 3, "11:00", "11:30", true),
		period("p4", 4, "11:30", "12:30", false),
	}

	tests := []struct {
		name      string
		timeOfDay string
		wantID    string
	}{
		{"inside first period", "09:30", "p1"},
		{"window start is inclusive", "09:00", "p1"},
		// 10:00 ends p1 and starts p2; the lower period number wins.
		{"boundary shared by two periods", "10:00", "p1"},
		{"window end is inclusive", "12:30", "p4"},
		{"break never matches", "11:15", ""},
		{"before the day begins", "08:59", ""},
		{"after the day ends", "12:31", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchPeriod(periods, tt.timeOfDay)
			gotID := ""
			if got != nil {
				gotID = got.ID
			}
			if gotID != tt.wantID {
				t.Errorf("MatchPeriod(%q) = %q, want %q", tt.timeOfDay, gotID, tt.wantID)
			}
		})
	}
}

func TestMatchPeriodTieBreak(t *testing.T) {
	// Overlapping windows should not happen under correct scheduling but are
	// not structurally prevented; the lowest period number must win even
	// when the slice is unordered.
	periods := []*models.TimetablePeriod{
		period("late", 5, "09:00", "12:00", false),
		period("early", 2, "09:00", "12:00", false),
	}
	got := MatchPeriod(periods, "10:00")
	if got == nil || got.ID != "early" {
		t.Fatalf("MatchPeriod() = %v, want period %q", got, "early")
	}
}

func TestMatchPeriodEmpty(t *testing.T) {
	if got := MatchPeriod(nil, "10:00"); got != nil {
		t.Errorf("MatchPeriod(nil) = %v, want nil", got)
	}
}
