package models

// AdminLoginRequest carries the single admin's credentials.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse returns the issued token alongside the identity.
type AdminLoginResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}
