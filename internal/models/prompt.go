package models

import "time"

// Prompt represents a stored prompt template. A prompt may optionally belong
// to a collection; the reference is by id only, so deleting a collection
// never deletes its prompts.
type Prompt struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Description  *string   `json:"description"`
	CollectionID *string   `json:"collection_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
