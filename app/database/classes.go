package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/sumanth2354/ITAttendance/app/models"
)

// ErrConflict is returned when an insert or update violates a uniqueness
// rule (duplicate year/section, roll number, subject code, username).
var ErrConflict = errors.New("duplicate record")

// uniqueViolation converts Postgres unique violations to ErrConflict so
// handlers can answer 409 instead of a generic storage error.
func uniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrConflict
	}
	return err
}

func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT id, name, year, section, total_students, created_at, updated_at
			  FROM classes ORDER BY year, section`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		err := rows.Scan(
			&class.ID, &class.Name, &class.Year, &class.Section,
			&class.TotalStudents, &class.CreatedAt, &class.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	if classes == nil {
		classes = []*models.Class{}
	}
	return classes, rows.Err()
}

func GetClassByID(db *sql.DB, classID string) (*models.Class, error) {
	class := &models.Class{}
	query := `SELECT id, name, year, section, total_students, created_at, updated_at
			  FROM classes WHERE id = $1`

	err := db.QueryRow(query, classID).Scan(
		&class.ID, &class.Name, &class.Year, &class.Section,
		&class.TotalStudents, &class.CreatedAt, &class.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return class, nil
}

// GetClassesForTeacher lists the classes where the teacher has at least one
// non-break timetable period.
func GetClassesForTeacher(db *sql.DB, teacherID string) ([]*models.Class, error) {
	query := `SELECT DISTINCT c.id, c.name, c.year, c.section, c.total_students, c.created_at, c.updated_at
			  FROM classes c
			  JOIN timetable_periods tp ON tp.class_id = c.id
			  WHERE tp.teacher_id = $1 AND tp.is_break = false
			  ORDER BY c.year, c.section`

	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		err := rows.Scan(
			&class.ID, &class.Name, &class.Year, &class.Section,
			&class.TotalStudents, &class.CreatedAt, &class.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	if classes == nil {
		classes = []*models.Class{}
	}
	return classes, rows.Err()
}

func CreateClass(db *sql.DB, class *models.Class) error {
	query := `INSERT INTO classes (name, year, section, created_at, updated_at)
			  VALUES ($1, $2, $3, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, class.Name, class.Year, class.Section).Scan(
		&class.ID, &class.CreatedAt, &class.UpdatedAt,
	)
	return uniqueViolation(err)
}

func UpdateClass(db *sql.DB, class *models.Class) error {
	query := `UPDATE classes SET name = $1, year = $2, section = $3, updated_at = NOW()
			  WHERE id = $4`
	_, err := db.Exec(query, class.Name, class.Year, class.Section, class.ID)
	return uniqueViolation(err)
}

func DeleteClass(db *sql.DB, classID string) error {
	query := `DELETE FROM classes WHERE id = $1`
	_, err := db.Exec(query, classID)
	return err
}

// RefreshClassStudentCount recomputes the cached total after roster edits.
func RefreshClassStudentCount(db *sql.DB, classID string) error {
	query := `UPDATE classes
			  SET total_students = (SELECT COUNT(*) FROM students WHERE class_id = $1),
				  updated_at = NOW()
			  WHERE id = $1`
	_, err := db.Exec(query, classID)
	return err
}

func GetAllSubjects(db *sql.DB) ([]*models.Subject, error) {
	query := `SELECT id, name, code, created_at FROM subjects ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		subject := &models.Subject{}
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.Code, &subject.CreatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	if subjects == nil {
		subjects = []*models.Subject{}
	}
	return subjects, rows.Err()
}

func CreateSubject(db *sql.DB, subject *models.Subject) error {
	query := `INSERT INTO subjects (name, code, created_at) VALUES ($1, $2, NOW())
			  RETURNING id, created_at`
	err := db.QueryRow(query, subject.Name, subject.Code).Scan(&subject.ID, &subject.CreatedAt)
	return uniqueViolation(err)
}

func UpdateSubject(db *sql.DB, subject *models.Subject) error {
	query := `UPDATE subjects SET name = $1, code = $2 WHERE id = $3`
	_, err := db.Exec(query, subject.Name, subject.Code, subject.ID)
	return uniqueViolation(err)
}

func DeleteSubject(db *sql.DB, subjectID string) error {
	query := `DELETE FROM subjects WHERE id = $1`
	_, err := db.Exec(query, subjectID)
	return err
}
