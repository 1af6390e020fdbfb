package database

import (
	"database/sql"

	"github.com/sumanth2354/ITAttendance/app/models"
)

func scanPeriods(rows *sql.Rows) ([]*models.TimetablePeriod, error) {
	var periods []*models.TimetablePeriod
	for rows.Next() {
		p := &models.TimetablePeriod{}
		err := rows.Scan(
			&p.ID, &p.ClassID, &p.DayOfWeek, &p.PeriodNumber, &p.StartTime, &p.EndTime,
			&p.SubjectID, &p.TeacherID, &p.IsBreak, &p.BreakName, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	if periods == nil {
		periods = []*models.TimetablePeriod{}
	}
	return periods, rows.Err()
}

const periodColumns = `id, class_id, day_of_week, period_number, start_time, end_time,
	subject_id, teacher_id, is_break, break_name, created_at, updated_at`

// GetTeacherPeriodsForDay returns the teacher's non-break periods in a class
// on one weekday, lowest period number first.
func GetTeacherPeriodsForDay(db *sql.DB, classID, teacherID string, dayOfWeek int) ([]*models.TimetablePeriod, error) {
	query := `SELECT ` + periodColumns + `
			  FROM timetable_periods
			  WHERE class_id = $1 AND teacher_id = $2 AND day_of_week = $3 AND is_break = false
			  ORDER BY period_number`

	rows, err := db.Query(query, classID, teacherID, dayOfWeek)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPeriods(rows)
}

// GetTeacherPeriodsInClass returns every non-break period the teacher has in
// the class across the whole week.
func GetTeacherPeriodsInClass(db *sql.DB, classID, teacherID string) ([]*models.TimetablePeriod, error) {
	query := `SELECT ` + periodColumns + `
			  FROM timetable_periods
			  WHERE class_id = $1 AND teacher_id = $2 AND is_break = false
			  ORDER BY day_of_week, period_number`

	rows, err := db.Query(query, classID, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPeriods(rows)
}

// GetPeriodsByClass returns a class's full weekly timetable with subject and
// teacher names joined, for the timetable screens.
func GetPeriodsByClass(db *sql.DB, classID string) ([]*models.TimetablePeriod, error) {
	query := `SELECT tp.id, tp.class_id, tp.day_of_week, tp.period_number, tp.start_time, tp.end_time,
			  tp.subject_id, tp.teacher_id, tp.is_break, tp.break_name, tp.created_at, tp.updated_at,
			  COALESCE(s.name, ''), COALESCE(u.name, '')
			  FROM timetable_periods tp
			  LEFT JOIN subjects s ON tp.subject_id = s.id
			  LEFT JOIN users u ON tp.teacher_id = u.id
			  WHERE tp.class_id = $1
			  ORDER BY tp.day_of_week, tp.period_number`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []*models.TimetablePeriod
	for rows.Next() {
		p := &models.TimetablePeriod{}
		err := rows.Scan(
			&p.ID, &p.ClassID, &p.DayOfWeek, &p.PeriodNumber, &p.StartTime, &p.EndTime,
			&p.SubjectID, &p.TeacherID, &p.IsBreak, &p.BreakName, &p.CreatedAt, &p.UpdatedAt,
			&p.SubjectName, &p.TeacherName,
		)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	if periods == nil {
		periods = []*models.TimetablePeriod{}
	}
	return periods, rows.Err()
}

func GetPeriodByID(db *sql.DB, periodID string) (*models.TimetablePeriod, error) {
	p := &models.TimetablePeriod{}
	query := `SELECT ` + periodColumns + ` FROM timetable_periods WHERE id = $1`

	err := db.QueryRow(query, periodID).Scan(
		&p.ID, &p.ClassID, &p.DayOfWeek, &p.PeriodNumber, &p.StartTime, &p.EndTime,
		&p.SubjectID, &p.TeacherID, &p.IsBreak, &p.BreakName, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func CreatePeriod(db *sql.DB, p *models.TimetablePeriod) error {
	query := `INSERT INTO timetable_periods
			  (class_id, day_of_week, period_number, start_time, end_time, subject_id, teacher_id, is_break, break_name, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		p.ClassID, p.DayOfWeek, p.PeriodNumber, p.StartTime, p.EndTime,
		p.SubjectID, p.TeacherID, p.IsBreak, p.BreakName,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return uniqueViolation(err)
}

func UpdatePeriod(db *sql.DB, p *models.TimetablePeriod) error {
	query := `UPDATE timetable_periods
			  SET day_of_week = $1, period_number = $2, start_time = $3, end_time = $4,
				  subject_id = $5, teacher_id = $6, is_break = $7, break_name = $8, updated_at = NOW()
			  WHERE id = $9`
	_, err := db.Exec(query,
		p.DayOfWeek, p.PeriodNumber, p.StartTime, p.EndTime,
		p.SubjectID, p.TeacherID, p.IsBreak, p.BreakName, p.ID,
	)
	return uniqueViolation(err)
}

// DeletePeriod removes a period; its attendance records go with it via the
// foreign key cascade.
func DeletePeriod(db *sql.DB, periodID string) error {
	query := `DELETE FROM timetable_periods WHERE id = $1`
	_, err := db.Exec(query, periodID)
	return err
}

// CheckTimeConflict reports whether the teacher or the class already has a
// period overlapping the given window on that weekday.
func CheckTimeConflict(db *sql.DB, teacherID *string, classID string, dayOfWeek int, startTime, endTime string, excludeID string) (bool, error) {
	query := `SELECT COUNT(*) FROM timetable_periods
			  WHERE (teacher_id = $1 OR class_id = $2)
			  AND day_of_week = $3
			  AND (
				  (start_time <= $4 AND end_time >= $4) OR
				  (start_time <= $5 AND end_time >= $5) OR
				  (start_time >= $4 AND end_time <= $5)
			  )`

	args := []interface{}{teacherID, classID, dayOfWeek, startTime, endTime}
	if excludeID != "" {
		query += " AND id != $6"
		args = append(args, excludeID)
	}

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
