package dto

// CreateSchoolRequest carries the fields for registering a school
type CreateSchoolRequest struct {
	Name string `json:"name" binding:"required" example:"Lincoln"`
}

// UpdateSchoolRequest carries the mutable school fields
type UpdateSchoolRequest struct {
	Name string `json:"name" binding:"required" example:"Lincoln High"`
}
