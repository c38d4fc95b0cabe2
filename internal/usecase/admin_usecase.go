package usecase

import "context"

// --- Input DTOs ---

// LoginInput defines the data required for the admin to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AdminUser is the authenticated principal echoed back on login.
type AdminUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginOutput returns the signed session token after a successful login.
type LoginOutput struct {
	Token string
	User  AdminUser
}

// AdminUsecase defines the interface for the admin session guard.
type AdminUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
