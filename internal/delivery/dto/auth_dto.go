package dto

// Request DTOs

// LoginRequest is shared by doctor and patient logins; identifier is the
// account email.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type DashboardResponse struct {
	Role       string `json:"role"`
	Identifier string `json:"identifier"`
}
