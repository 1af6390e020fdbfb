package models

import "time"

// AttendanceStatus is the recorded state for one student, date and period.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	return s == Present || s == Absent
}

// AttendanceRecord stores one marked status. PeriodID is nil for manual
// historical edits; at most one such row exists per (student, date).
type AttendanceRecord struct {
	ID        string           `json:"id"`
	StudentID string           `json:"student_id"`
	ClassID   string           `json:"class_id"`
	PeriodID  *string          `json:"period_id,omitempty"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
	MarkedBy  *string          `json:"marked_by,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Bookmark annotates a calendar date for a class (holiday, festival, event).
type Bookmark struct {
	ID          string    `json:"id"`
	ClassID     string    `json:"class_id"`
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   *string   `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
