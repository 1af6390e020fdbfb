package database

import (
	"database/sql"
	"time"

	"github.com/sumanth2354/ITAttendance/app/models"
)

// GetBookmarksForWindow returns a class's bookmarks with dates in [from, to].
func GetBookmarksForWindow(db *sql.DB, classID string, from, to time.Time) ([]*models.Bookmark, error) {
	query := `SELECT id, class_id, date, title, description, created_by, created_at
			  FROM bookmarks
			  WHERE class_id = $1 AND date BETWEEN $2 AND $3
			  ORDER BY date`

	rows, err := db.Query(query, classID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []*models.Bookmark
	for rows.Next() {
		b := &models.Bookmark{}
		err := rows.Scan(&b.ID, &b.ClassID, &b.Date, &b.Title, &b.Description, &b.CreatedBy, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	if bookmarks == nil {
		bookmarks = []*models.Bookmark{}
	}
	return bookmarks, rows.Err()
}

// UpsertBookmark saves the annotation for (class, date); one per day.
func UpsertBookmark(db *sql.DB, b *models.Bookmark) error {
	query := `INSERT INTO bookmarks (class_id, date, title, description, created_by, created_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  ON CONFLICT (class_id, date)
			  DO UPDATE SET title = EXCLUDED.title, description = EXCLUDED.description, created_by = EXCLUDED.created_by
			  RETURNING id`

	return db.QueryRow(query, b.ClassID, b.Date, b.Title, b.Description, b.CreatedBy).Scan(&b.ID)
}

func DeleteBookmark(db *sql.DB, bookmarkID string) error {
	query := `DELETE FROM bookmarks WHERE id = $1`
	_, err := db.Exec(query, bookmarkID)
	return err
}
