package services

import (
	"database/sql"
	"math"
	"time"

	"github.com/sumanth2354/ITAttendance/app/clock"
	"github.com/sumanth2354/ITAttendance/app/database"
	"github.com/sumanth2354/ITAttendance/app/models"
)

// Report windows.
const (
	ReportWeek  = "week"
	ReportMonth = "month"
	ReportFull  = "full"
)

// reportSince returns the date lower bound for a report window; nil means
// all time.
func reportSince(clk *clock.Clock, period string) *time.Time {
	var since time.Time
	switch period {
	case ReportWeek:
		since = clk.Today().AddDate(0, 0, -7)
	case ReportMonth:
		since = clk.Today().AddDate(0, 0, -30)
	default:
		return nil
	}
	return &since
}

// percentage rounds present*100/total to two decimals; nil when total is 0.
func percentage(present, total int) *float64 {
	if total == 0 {
		return nil
	}
	p := math.Round(float64(present)*100/float64(total)*100) / 100
	return &p
}

// BuildReport computes per-student attendance aggregates for a class,
// restricted to periods taught by the teacher plus period-less manual
// records, ordered by roll number.
func BuildReport(db *sql.DB, clk *clock.Clock, classID, teacherID, period string) ([]*models.ReportRow, error) {
	students, err := database.GetStudentsByClass(db, classID)
	if err != nil {
		return nil, err
	}

	counts, err := database.GetAttendanceCounts(db, classID, teacherID, reportSince(clk, period))
	if err != nil {
		return nil, err
	}

	rows := make([]*models.ReportRow, 0, len(students))
	for _, student := range students {
		c := counts[student.ID]
		total := c.Present + c.Absent
		rows = append(rows, &models.ReportRow{
			StudentID:   student.ID,
			RollNumber:  student.RollNumber,
			StudentName: student.Name,
			PresentDays: c.Present,
			AbsentDays:  c.Absent,
			TotalDays:   total,
			Percentage:  percentage(c.Present, total),
		})
	}
	return rows, nil
}

// BuildStudentSummary aggregates one student's own attendance across every
// teacher's periods, for the student self-view.
func BuildStudentSummary(db *sql.DB, student *models.Student) (*models.ReportRow, error) {
	present, absent, err := database.GetStudentCounts(db, student.ID)
	if err != nil {
		return nil, err
	}
	total := present + absent
	return &models.ReportRow{
		StudentID:   student.ID,
		RollNumber:  student.RollNumber,
		StudentName: student.Name,
		PresentDays: present,
		AbsentDays:  absent,
		TotalDays:   total,
		Percentage:  percentage(present, total),
	}, nil
}
