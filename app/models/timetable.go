package models

import "time"

// TimetablePeriod is one slot in a class's weekly timetable.
// DayOfWeek runs 1 (Monday) through 7 (Sunday); StartTime and EndTime are
// zero-padded "HH:MM" strings and the window is the closed interval
// [StartTime, EndTime].
type TimetablePeriod struct {
	ID           string  `json:"id"`
	ClassID      string  `json:"class_id"`
	DayOfWeek    int     `json:"day_of_week"`
	PeriodNumber int     `json:"period_number"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	SubjectID    *string `json:"subject_id,omitempty"`
	TeacherID    *string `json:"teacher_id,omitempty"`
	IsBreak      bool    `json:"is_break"`
	BreakName    *string `json:"break_name,omitempty"`

	// Joined display fields, populated by queries that need them.
	SubjectName string `json:"subject_name,omitempty"`
	TeacherName string `json:"teacher_name,omitempty"`
	ClassName   string `json:"class_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Covers reports whether timeOfDay ("HH:MM") falls inside the period's
// closed time window. Zero-padded 24-hour strings compare correctly as text.
func (p *TimetablePeriod) Covers(timeOfDay string) bool {
	return p.StartTime <= timeOfDay && timeOfDay <= p.EndTime
}
