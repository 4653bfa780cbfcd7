package dto

// CreateStudentRequest carries the fields for enrolling a student. SchoolID
// is required from administrators and ignored for monitors, whose home
// school is always used.
type CreateStudentRequest struct {
	Name       string `json:"name" binding:"required" example:"Ana"`
	Number     string `json:"number" binding:"required" example:"42"`
	ClassLabel string `json:"classLabel" binding:"required" example:"3A"`
	Year       int    `json:"year" binding:"required" example:"2024"`
	SchoolID   *int64 `json:"schoolId" example:"1"`
}

// UpdateStudentRequest carries the mutable student fields. The school
// affiliation is immutable after creation and deliberately absent here.
type UpdateStudentRequest struct {
	Name       string `json:"name" binding:"required" example:"Ana"`
	Number     string `json:"number" binding:"required" example:"42"`
	ClassLabel string `json:"classLabel" binding:"required" example:"3A"`
	Year       int    `json:"year" binding:"required" example:"2024"`
}

// StudentFilter holds the optional list filters
type StudentFilter struct {
	ClassLabel string
	Year       int
	Search     string
}
