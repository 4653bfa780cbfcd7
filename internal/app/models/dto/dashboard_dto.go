package dto

// DashboardStats holds role-scoped entity counts for the landing page
type DashboardStats struct {
	TotalStudents int64 `json:"totalStudents" example:"412"`
	TotalMonitors int64 `json:"totalMonitors" example:"18"`
	TotalSchools  int64 `json:"totalSchools" example:"4"`
}
