package models

import "time"

// Grade defines the grade model based on the 'grades' table. SchoolID is a
// denormalized copy of the parent student's school, taken at creation time
// so list queries can scope visibility without a join.
type Grade struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	SubjectID int64     `json:"subjectId" db:"subject_id"`
	Value     float64   `json:"value" db:"value"`
	Date      time.Time `json:"date" db:"date"`
	SchoolID  int64     `json:"schoolId" db:"school_id"`
}
