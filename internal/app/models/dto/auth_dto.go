package dto

// RegisterRequest represents a registration payload. Field presence and the
// password confirmation are enforced by binding; the institutional email
// domain and uniqueness checks happen in the auth service, in that order.
type RegisterRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the public view of a user returned alongside a token.
type UserInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// AuthResponse represents a successful registration or login. The token is a
// signed session token embedding {userId, email}, valid for 24 hours.
type AuthResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
	Token   string   `json:"token"`
}
