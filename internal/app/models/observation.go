package models

import "time"

// Observation defines a behavioral observation based on the 'observations'
// table. Discipline is a free-text label matched to subjects by name, not a
// foreign key. Visibility is scoped through the parent student's school.
type Observation struct {
	ID          int64           `json:"id" db:"id"`
	StudentID   int64           `json:"studentId" db:"student_id"`
	Date        time.Time       `json:"date" db:"date"`
	Discipline  string          `json:"discipline" db:"discipline"`
	Kind        ObservationKind `json:"kind" db:"kind"`
	Description string          `json:"description" db:"description"`
	Consequence *string         `json:"consequence,omitempty" db:"consequence"`

	// Populated by list queries
	StudentName  string `json:"studentName,omitempty"`
	StudentClass string `json:"studentClass,omitempty"`
}
