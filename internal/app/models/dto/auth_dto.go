package dto

// LoginRequest is the payload for the admin login endpoint
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued admin session token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}
