package auth

// Error messages for the auth handlers
const (
	ErrInvalidCredentials = "Invalid credentials"
	ErrLoginFailed        = "Failed to process login"
)

// AdminLoginRequest model for admin login
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TeamLoginRequest model for team portal login
type TeamLoginRequest struct {
	TeamName string `json:"team_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// JuryLoginRequest model for jury portal login
type JuryLoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token and the actor's role
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
}
