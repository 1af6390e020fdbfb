package database

import (
	"database/sql"
	"time"

	"github.com/sumanth2354/ITAttendance/app/models"
)

// UpsertAttendance writes one status keyed by (student, date, period).
// A repeat mark overwrites status and marked_by; last write wins.
func UpsertAttendance(db *sql.DB, rec *models.AttendanceRecord) error {
	query := `INSERT INTO attendance_records (student_id, class_id, period_id, date, status, marked_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  ON CONFLICT (student_id, date, period_id)
			  DO UPDATE SET status = EXCLUDED.status, marked_by = EXCLUDED.marked_by, updated_at = NOW()
			  RETURNING id`

	return db.QueryRow(query,
		rec.StudentID, rec.ClassID, rec.PeriodID, rec.Date, rec.Status, rec.MarkedBy,
	).Scan(&rec.ID)
}

// GetStatusesForPeriodDate returns student -> status for one period and date.
func GetStatusesForPeriodDate(db *sql.DB, periodID string, date time.Time) (map[string]models.AttendanceStatus, error) {
	query := `SELECT student_id, status FROM attendance_records
			  WHERE period_id = $1 AND date = $2`

	rows, err := db.Query(query, periodID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make(map[string]models.AttendanceStatus)
	for rows.Next() {
		var studentID string
		var status models.AttendanceStatus
		if err := rows.Scan(&studentID, &status); err != nil {
			return nil, err
		}
		statuses[studentID] = status
	}
	return statuses, rows.Err()
}

// GetPeriodDayCounts returns today's present/absent tallies for one period.
func GetPeriodDayCounts(db *sql.DB, periodID string, date time.Time) (present, absent int, err error) {
	query := `SELECT
			  COUNT(*) FILTER (WHERE status = 'present'),
			  COUNT(*) FILTER (WHERE status = 'absent')
			  FROM attendance_records
			  WHERE period_id = $1 AND date = $2`

	err = db.QueryRow(query, periodID, date).Scan(&present, &absent)
	return present, absent, err
}

// GetHistoryRecords fetches every record for a class inside [from, to],
// joined to period and subject metadata for the history grid.
func GetHistoryRecords(db *sql.DB, classID string, from, to time.Time) ([]*models.HistoryRecord, error) {
	query := `SELECT ar.student_id, ar.date, ar.period_id, ar.status, tp.period_number, s.name
			  FROM attendance_records ar
			  LEFT JOIN timetable_periods tp ON ar.period_id = tp.id
			  LEFT JOIN subjects s ON tp.subject_id = s.id
			  WHERE ar.class_id = $1 AND ar.date BETWEEN $2 AND $3
			  ORDER BY ar.date, tp.period_number`

	rows, err := db.Query(query, classID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.HistoryRecord
	for rows.Next() {
		rec := &models.HistoryRecord{}
		err := rows.Scan(&rec.StudentID, &rec.Date, &rec.PeriodID, &rec.Status, &rec.PeriodNumber, &rec.SubjectName)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if records == nil {
		records = []*models.HistoryRecord{}
	}
	return records, rows.Err()
}

// AttendanceCounts is the aggregation row shape for reports.
type AttendanceCounts struct {
	Present int
	Absent  int
}

// GetAttendanceCounts tallies present/absent per student for records whose
// period is taught by the teacher, plus period-less manual records. A nil
// since means all time.
func GetAttendanceCounts(db *sql.DB, classID, teacherID string, since *time.Time) (map[string]AttendanceCounts, error) {
	query := `SELECT ar.student_id,
			  COUNT(*) FILTER (WHERE ar.status = 'present'),
			  COUNT(*) FILTER (WHERE ar.status = 'absent')
			  FROM attendance_records ar
			  LEFT JOIN timetable_periods tp ON ar.period_id = tp.id
			  WHERE ar.class_id = $1 AND (tp.teacher_id = $2 OR ar.period_id IS NULL)`

	args := []interface{}{classID, teacherID}
	if since != nil {
		query += ` AND ar.date >= $3`
		args = append(args, *since)
	}
	query += ` GROUP BY ar.student_id`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]AttendanceCounts)
	for rows.Next() {
		var studentID string
		var c AttendanceCounts
		if err := rows.Scan(&studentID, &c.Present, &c.Absent); err != nil {
			return nil, err
		}
		counts[studentID] = c
	}
	return counts, rows.Err()
}

// ApplyManualEdit applies one bulk historical edit. An empty status deletes
// the day's rows for the student; otherwise the existing (student, date) row
// is updated when present, else a period-less row is inserted. Returns true
// when a row changed.
func ApplyManualEdit(db *sql.DB, classID, studentID string, date time.Time, status models.AttendanceStatus, markedBy *string) (bool, error) {
	if status == "" {
		res, err := db.Exec(`DELETE FROM attendance_records WHERE student_id = $1 AND date = $2`, studentID, date)
		if err != nil {
			return false, err
		}
		n, _ := res.RowsAffected()
		return n > 0, nil
	}

	var id string
	err := db.QueryRow(
		`SELECT id FROM attendance_records WHERE student_id = $1 AND date = $2 LIMIT 1`,
		studentID, date,
	).Scan(&id)

	switch {
	case err == sql.ErrNoRows:
		_, err = db.Exec(
			`INSERT INTO attendance_records (student_id, class_id, period_id, date, status, marked_by, created_at, updated_at)
			 VALUES ($1, $2, NULL, $3, $4, $5, NOW(), NOW())`,
			studentID, classID, date, status, markedBy,
		)
		if err != nil {
			return false, uniqueViolation(err)
		}
		return true, nil
	case err != nil:
		return false, err
	default:
		_, err = db.Exec(
			`UPDATE attendance_records SET status = $1, marked_by = $2, updated_at = NOW() WHERE id = $3`,
			status, markedBy, id,
		)
		if err != nil {
			return false, err
		}
		return true, nil
	}
}

// GetStudentCounts tallies one student's records across every period.
func GetStudentCounts(db *sql.DB, studentID string) (present, absent int, err error) {
	query := `SELECT
			  COUNT(*) FILTER (WHERE status = 'present'),
			  COUNT(*) FILTER (WHERE status = 'absent')
			  FROM attendance_records WHERE student_id = $1`

	err = db.QueryRow(query, studentID).Scan(&present, &absent)
	return present, absent, err
}

// CountRecordsForDate backs the admin dashboard's "marked today" figure.
func CountRecordsForDate(db *sql.DB, date time.Time) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM attendance_records WHERE date = $1`, date).Scan(&count)
	return count, err
}
