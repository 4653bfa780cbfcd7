package models

// Student defines the student model based on the 'students' table.
// Number is unique within a school, not globally. SchoolID is immutable
// after creation.
type Student struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Number     string `json:"number" db:"number"`
	ClassLabel string `json:"classLabel" db:"class_label"`
	Year       int    `json:"year" db:"year"`
	SchoolID   int64  `json:"schoolId" db:"school_id"`

	// Populated by list queries
	SchoolName string `json:"schoolName,omitempty"`
}
