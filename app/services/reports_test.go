package services

import (
	"testing"
	"time"

	"github.com/sumanth2354/ITAttendance/app/clock"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name    string
		present int
		total   int
		want    float64
		wantNil bool
	}{
		{"no records", 0, 0, 0, true},
		{"3 of 5", 3, 5, 60.00, false},
		{"all present", 10, 10, 100.00, false},
		{"all absent", 0, 4, 0.00, false},
		{"repeating decimal rounds to 2dp", 2, 3, 66.67, false},
		{"one of seven", 1, 7, 14.29, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := percentage(tt.present, tt.total)
			if tt.wantNil {
				if got != nil {
					t.Errorf("percentage(%d, %d) = %v, want nil", tt.present, tt.total, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("percentage(%d, %d) = nil, want %v", tt.present, tt.total, tt.want)
			}
			if *got != tt.want {
				t.Errorf("percentage(%d, %d) = %v, want %v", tt.present, tt.total, *got, tt.want)
			}
		})
	}
}

func TestReportSince(t *testing.T) {
	clk := clock.New(0, 0)

	if got := reportSince(clk, ReportFull); got != nil {
		t.Errorf("reportSince(full) = %v, want nil", got)
	}
	if got := reportSince(clk, "bogus"); got != nil {
		t.Errorf("reportSince(bogus) = %v, want nil", got)
	}

	week := reportSince(clk, ReportWeek)
	if week == nil {
		t.Fatal("reportSince(week) = nil")
	}
	wantWeek := clk.Today().AddDate(0, 0, -7)
	if !week.Equal(wantWeek) {
		t.Errorf("reportSince(week) = %v, want %v", week, wantWeek)
	}

	month := reportSince(clk, ReportMonth)
	if month == nil {
		t.Fatal("reportSince(month) = nil")
	}
	if got := clk.Today().Sub(*month); got != 30*24*time.Hour {
		t.Errorf("month window spans %v, want 720h", got)
	}
}
