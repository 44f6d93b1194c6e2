package models

import "time"

// User roles
const (
	RoleClient       = "client"
	RoleProfessional = "professional"
	RoleAdmin        = "admin"
)

// User represents a marketplace account as stored by the user service.
// Only the columns the realtime service reads are mapped here.
type User struct {
	ID        int64     `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Email     string    `db:"email" json:"email"`
	Role      string    `db:"role" json:"role"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Principal is the authenticated identity bound to one websocket
// connection. It is resolved once during the handshake and never
// mutated afterwards.
type Principal struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
