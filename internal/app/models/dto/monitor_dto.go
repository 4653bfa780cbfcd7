package dto

// CreateMonitorRequest carries the fields for registering a staff account
type CreateMonitorRequest struct {
	Name       string `json:"name" binding:"required" example:"Maria Souza"`
	NationalID string `json:"nationalId" binding:"required" example:"12345678901"`
	Role       string `json:"role" binding:"required" example:"monitor" enums:"admin,monitor"`
	SchoolID   *int64 `json:"schoolId" example:"3"`
	Password   string `json:"password" binding:"required" example:"s3cret"`
}

// UpdateMonitorRequest carries the mutable staff-account fields. Password
// is optional; when empty the stored credential is left untouched.
type UpdateMonitorRequest struct {
	Name       string `json:"name" binding:"required" example:"Maria Souza"`
	NationalID string `json:"nationalId" binding:"required" example:"12345678901"`
	Role       string `json:"role" binding:"required" example:"monitor" enums:"admin,monitor"`
	SchoolID   *int64 `json:"schoolId" example:"3"`
	Password   string `json:"password,omitempty"`
}
