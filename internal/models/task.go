package models

import "time"

// Task is a single to-do item. OwnerID binds it to the user that created it
// and is never reassigned; it is not serialized in API responses.
type Task struct {
	ID          string    `json:"id"`
	OwnerID     int       `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsComplete  bool      `json:"is_complete"`
	CreatedAt   time.Time `json:"created_at"`
}
