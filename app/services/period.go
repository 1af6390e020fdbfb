// Package services holds the attendance domain logic: current-period
// resolution, marking, the history grid and the report aggregation.
package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/sumanth2354/ITAttendance/app/clock"
	"github.com/sumanth2354/ITAttendance/app/database"
	"github.com/sumanth2354/ITAttendance/app/models"
)

// ErrNoActivePeriod means the teacher has no scheduled period covering the
// current instant. It is a normal condition outside teaching hours, not a
// system fault.
var ErrNoActivePeriod = errors.New("no active period for this teacher right now")

// MatchPeriod picks the period whose closed [start, end] window contains
// timeOfDay ("HH:MM"). Breaks never match. If the schedule is malformed and
// several periods cover the instant, the lowest period number wins. Returns
// nil when nothing matches.
func MatchPeriod(periods []*models.TimetablePeriod, timeOfDay string) *models.TimetablePeriod {
	var match *models.TimetablePeriod
	for _, p := range periods {
		if p.IsBreak || !p.Covers(timeOfDay) {
			continue
		}
		if match == nil || p.PeriodNumber < match.PeriodNumber {
			match = p
		}
	}
	return match
}

// CurrentPeriod resolves the teacher's active period in a class using the
// live clock. A nil period with a nil error means no period is active.
func CurrentPeriod(db *sql.DB, clk *clock.Clock, classID, teacherID string) (*models.TimetablePeriod, error) {
	periods, err := database.GetTeacherPeriodsForDay(db, classID, teacherID, clk.DayOfWeek())
	if err != nil {
		return nil, err
	}
	return MatchPeriod(periods, clk.TimeOfDay()), nil
}

// MarkAttendance records one status for a student. The period is always
// resolved against the live clock, never the supplied date: marking outside
// the teacher's own scheduled window fails with ErrNoActivePeriod.
func MarkAttendance(db *sql.DB, clk *clock.Clock, studentID, classID string, status models.AttendanceStatus, date time.Time, teacherID string) (*models.AttendanceRecord, error) {
	period, err := CurrentPeriod(db, clk, classID, teacherID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, ErrNoActivePeriod
	}

	rec := &models.AttendanceRecord{
		StudentID: studentID,
		ClassID:   classID,
		PeriodID:  &period.ID,
		Date:      date,
		Status:    status,
		MarkedBy:  &teacherID,
	}
	if err := database.UpsertAttendance(db, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// BulkChange is one historical edit: an empty status deletes the day's
// record for the student.
type BulkChange struct {
	StudentID string
	Date      time.Time
	Status    models.AttendanceStatus
}

// ApplyBulkChanges runs the historical-edit path for a class and returns how
// many rows actually changed. Edits bypass period resolution entirely.
func ApplyBulkChanges(db *sql.DB, classID string, changes []BulkChange, markedBy string) (int, error) {
	updated := 0
	for _, change := range changes {
		changed, err := database.ApplyManualEdit(db, classID, change.StudentID, change.Date, change.Status, &markedBy)
		if err != nil {
			return updated, err
		}
		if changed {
			updated++
		}
	}
	return updated, nil
}
