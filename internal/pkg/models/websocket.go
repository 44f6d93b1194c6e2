package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ChatFrame is the inbound chat payload. Message is a pointer so a
// missing field can be told apart from an empty string.
type ChatFrame struct {
	Message *string `json:"message"`
}

// SignalFrame is the inbound signaling payload. Type discriminates;
// the remaining fields are forwarded opaquely per type.
type SignalFrame struct {
	Type         string          `json:"type"`
	Offer        json.RawMessage `json:"offer,omitempty"`
	Answer       json.RawMessage `json:"answer,omitempty"`
	ICECandidate json.RawMessage `json:"ice_candidate,omitempty"`
	Message      json.RawMessage `json:"message,omitempty"`
	To           int64           `json:"to,omitempty"`
}

// WSError is the reply-to-sender error payload for protocol errors.
// The connection stays open after it is sent.
type WSError struct {
	Error string `json:"error"`
}

// PresenceEvent announces a member joining or leaving a room.
type PresenceEvent struct {
	Event     string `json:"event"`
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name,omitempty"`
	UserRole  string `json:"user_role,omitempty"`
	Timestamp string `json:"timestamp"`
}

// ChatMessageEvent is the public projection of a persisted message,
// broadcast to the room after the row exists.
type ChatMessageEvent struct {
	Event      string    `json:"event"`
	ID         uuid.UUID `json:"id"`
	JobID      int64     `json:"job_id"`
	Sender     int64     `json:"sender"`
	SenderName string    `json:"sender_name"`
	SenderRole string    `json:"sender_role"`
	Content    string    `json:"content"`
	FileURL    *string   `json:"file_url"`
	FileType   string    `json:"file_type"`
	CreatedAt  string    `json:"created_at"`
	IsRead     bool      `json:"is_read"`
}

// Outbound signaling events. Sender identity is attached server-side;
// clients cannot forge it.

type OfferEvent struct {
	Type       string          `json:"type"`
	Offer      json.RawMessage `json:"offer"`
	CallerID   int64           `json:"caller_id"`
	CallerName string          `json:"caller_name"`
	CallerRole string          `json:"caller_role"`
}

type AnswerEvent struct {
	Type       string          `json:"type"`
	Answer     json.RawMessage `json:"answer"`
	AnswererID int64           `json:"answerer_id"`
}

type ICECandidateEvent struct {
	Type         string          `json:"type"`
	ICECandidate json.RawMessage `json:"ice_candidate"`
	SenderID     int64           `json:"sender_id"`
}

type CallEndedEvent struct {
	Type     string `json:"type"`
	JobID    int64  `json:"job_id,omitempty"`
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
}

type PingEvent struct {
	Type     string          `json:"type"`
	Message  json.RawMessage `json:"message"`
	SenderID int64           `json:"sender_id"`
}

type ReadyToCallEvent struct {
	Type     string `json:"type"`
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
}

type TestSignalEvent struct {
	Type       string          `json:"type"`
	Message    json.RawMessage `json:"message"`
	SenderID   int64           `json:"sender_id"`
	SenderName string          `json:"sender_name"`
}
