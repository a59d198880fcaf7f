package models

import "time"

type Deck struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CourseID    *int64    `json:"course_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
