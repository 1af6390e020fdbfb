package database

import (
	"database/sql"

	"github.com/sumanth2354/ITAttendance/app/models"
)

func GetStudentsByClass(db *sql.DB, classID string) ([]*models.Student, error) {
	query := `SELECT id, class_id, roll_number, name, user_id, created_at, updated_at
			  FROM students
			  WHERE class_id = $1
			  ORDER BY roll_number`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		err := rows.Scan(
			&student.ID, &student.ClassID, &student.RollNumber, &student.Name,
			&student.UserID, &student.CreatedAt, &student.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	if students == nil {
		students = []*models.Student{}
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT id, class_id, roll_number, name, user_id, created_at, updated_at
			  FROM students WHERE id = $1`

	err := db.QueryRow(query, studentID).Scan(
		&student.ID, &student.ClassID, &student.RollNumber, &student.Name,
		&student.UserID, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// GetStudentByUserID resolves the student row behind a login account.
func GetStudentByUserID(db *sql.DB, userID string) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT id, class_id, roll_number, name, user_id, created_at, updated_at
			  FROM students WHERE user_id = $1`

	err := db.QueryRow(query, userID).Scan(
		&student.ID, &student.ClassID, &student.RollNumber, &student.Name,
		&student.UserID, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (class_id, roll_number, name, user_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, student.ClassID, student.RollNumber, student.Name, student.UserID).Scan(
		&student.ID, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return uniqueViolation(err)
	}
	return RefreshClassStudentCount(db, student.ClassID)
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students SET roll_number = $1, name = $2, user_id = $3, updated_at = NOW()
			  WHERE id = $4`
	_, err := db.Exec(query, student.RollNumber, student.Name, student.UserID, student.ID)
	return uniqueViolation(err)
}

func DeleteStudent(db *sql.DB, studentID string) error {
	var classID string
	if err := db.QueryRow(`SELECT class_id FROM students WHERE id = $1`, studentID).Scan(&classID); err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM students WHERE id = $1`, studentID); err != nil {
		return err
	}
	return RefreshClassStudentCount(db, classID)
}
