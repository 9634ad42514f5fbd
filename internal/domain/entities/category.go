package entities

import "time"

// Category is a reference-list entry backing Book.Category.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Name is unique; uniqueness is enforced by the use case before insert.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
