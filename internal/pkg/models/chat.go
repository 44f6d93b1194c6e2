package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation groups all messages of one job. There is at most one
// conversation per job; the unique constraint on job_id enforces it.
type Conversation struct {
	ID        int64     `db:"id" json:"id"`
	JobID     int64     `db:"job_id" json:"job_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Message is a persisted chat message. Rows are created exactly once per
// accepted inbound frame and never mutated by the realtime service.
type Message struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ConversationID int64     `db:"conversation_id" json:"conversation_id"`
	SenderID       int64     `db:"sender_id" json:"sender_id"`
	Content        string    `db:"content" json:"content"`
	FileURL        *string   `db:"file_url" json:"file_url"`
	FileType       string    `db:"file_type" json:"file_type"`
	IsRead         bool      `db:"is_read" json:"is_read"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
