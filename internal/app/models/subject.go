package models

// Subject defines the subject model based on the 'subjects' table. A
// subject belongs to exactly one school.
type Subject struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	SchoolID int64  `json:"schoolId" db:"school_id"`

	// Populated by list queries
	SchoolName string `json:"schoolName,omitempty"`
}
