package models

import "time"

// User represents a user record in the database.
// The password hash is never serialized outward.
type User struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Email        string    `json:"email" db:"email"`           // Unique email
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash, never exposed
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
