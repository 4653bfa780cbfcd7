package dto

// LoginRequest carries login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

// PrincipalData is the session identity returned by login and /auth/me
type PrincipalData struct {
	ID       int64  `json:"id" example:"1"`
	Name     string `json:"name" example:"admin"`
	Role     string `json:"role" example:"admin" enums:"admin,monitor"`
	SchoolID *int64 `json:"schoolId,omitempty" example:"3"`
}

// LoginResponse is returned on successful login. The token is also set as
// an HTTP-only cookie; it is included in the body for non-browser clients.
type LoginResponse struct {
	User  PrincipalData `json:"user"`
	Token string        `json:"token"`
}
