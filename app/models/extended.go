package models

import "time"

// Typed projections for queries whose result shape does not match a single
// table. One struct per distinct row shape.

// HistoryRecord is an attendance row joined to period and subject metadata,
// as fetched for the history grid.
type HistoryRecord struct {
	StudentID    string           `json:"student_id"`
	Date         time.Time        `json:"date"`
	PeriodID     *string          `json:"period_id,omitempty"`
	Status       AttendanceStatus `json:"status"`
	PeriodNumber *int             `json:"period_number,omitempty"`
	SubjectName  *string          `json:"subject_name,omitempty"`
}

// ReportRow is one student's aggregate attendance over a report window.
// Percentage is nil when the student has no records in the window.
type ReportRow struct {
	StudentID   string   `json:"student_id"`
	RollNumber  int      `json:"roll_number"`
	StudentName string   `json:"student_name"`
	PresentDays int      `json:"present_days"`
	AbsentDays  int      `json:"absent_days"`
	TotalDays   int      `json:"total_days"`
	Percentage  *float64 `json:"percentage,omitempty"`
}

// RosterEntry is a student plus today's status for the active period.
type RosterEntry struct {
	Student
	Status AttendanceStatus `json:"status,omitempty"`
	Marked bool             `json:"marked"`
}

// ClassSchedule is a class with the requesting teacher's periods in it,
// used on the teacher dashboard.
type ClassSchedule struct {
	Class
	Periods      []*TimetablePeriod `json:"periods"`
	TodayPresent int                `json:"today_present"`
	TodayAbsent  int                `json:"today_absent"`
	Current      *TimetablePeriod   `json:"current_period,omitempty"`
}

// DashboardStats backs the admin dashboard.
type DashboardStats struct {
	TotalClasses  int `json:"total_classes"`
	TotalStudents int `json:"total_students"`
	TotalTeachers int `json:"total_teachers"`
	TotalSubjects int `json:"total_subjects"`
	MarkedToday   int `json:"marked_today"`
}
