package models

// Location represents a climbing location owned by a single user.
type Location struct {
	ID           int64  `json:"id" db:"id"`                       // Primary key
	UserID       int64  `json:"user_id" db:"user_id"`             // Owner
	LocationName string `json:"location_name" db:"location_name"` // Display name
}
