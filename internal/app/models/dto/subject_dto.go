package dto

// CreateSubjectRequest carries the fields for registering a subject
type CreateSubjectRequest struct {
	Name     string `json:"name" binding:"required" example:"Mathematics"`
	SchoolID int64  `json:"schoolId" binding:"required" example:"1"`
}

// UpdateSubjectRequest carries the mutable subject fields
type UpdateSubjectRequest struct {
	Name string `json:"name" binding:"required" example:"Mathematics"`
}
