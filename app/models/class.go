package models

import "time"

type Class struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	Section   string    `json:"section"`
	// Cached count, refreshed when students are added or removed.
	TotalStudents int       `json:"total_students"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Subject struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

type Student struct {
	ID         string    `json:"id"`
	ClassID    string    `json:"class_id"`
	RollNumber int       `json:"roll_number"`
	Name       string    `json:"name"`
	// Linked login account, if the student can sign in.
	UserID    *string   `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
