package models

// Problem represents a climbing problem within a location.
type Problem struct {
	ID          int64  `json:"id" db:"id"`                   // Primary key
	LocationID  int64  `json:"location_id" db:"location_id"` // Parent location
	UserID      int64  `json:"user_id" db:"user_id"`         // Owner
	ProblemName string `json:"problem_name" db:"problem_name"`
	Grade       string `json:"grade" db:"grade"`
	Area        string `json:"area" db:"area"`
	Notes       string `json:"notes" db:"notes"`
	Sent        bool   `json:"sent" db:"sent"` // Whether the problem has been completed
}

// ProblemUpdate carries a partial update of a problem.
// Nil fields are left untouched.
type ProblemUpdate struct {
	ProblemName *string
	Grade       *string
	Area        *string
	Notes       *string
	Sent        *bool
}

// Empty reports whether the update would change nothing.
func (u ProblemUpdate) Empty() bool {
	return u.ProblemName == nil && u.Grade == nil && u.Area == nil && u.Notes == nil && u.Sent == nil
}
