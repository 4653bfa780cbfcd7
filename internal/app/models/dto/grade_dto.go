package dto

// CreateGradeRequest carries the fields for recording a grade. The school
// reference is never accepted from the client; it is copied from the parent
// student at insert time.
type CreateGradeRequest struct {
	StudentID int64    `json:"studentId" binding:"required" example:"5"`
	SubjectID int64    `json:"subjectId" binding:"required" example:"2"`
	Value     *float64 `json:"value" binding:"required" example:"8.5"`
	Date      string   `json:"date" binding:"required" example:"2024-05-10"`
}

// UpdateGradeRequest carries the mutable grade fields
type UpdateGradeRequest struct {
	Value *float64 `json:"value" binding:"required" example:"9.0"`
}
