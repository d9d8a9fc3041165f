package dto

// RegisterRequest represents the API request for creating an account
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the API request for authenticating
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the issued session token
type TokenResponse struct {
	Token    string `json:"token"`
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
}

// UserResponse represents an account in API responses
type UserResponse struct {
	ID              uint64 `json:"id"`
	Username        string `json:"username"`
	DefaultLocation string `json:"defaultLocation,omitempty"`
}

// ChangePasswordRequest represents the API request for replacing a credential
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// DefaultLocationRequest represents the API request for setting the
// preferred location
type DefaultLocationRequest struct {
	Location string `json:"location" binding:"required"`
}
