package domain

import "errors"

var (
	MessageSuccessLogin = "login success"
	MessageFailedLogin  = "failed to login"

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminNotConfigured = errors.New("admin login is not configured")
)

type (
	LoginRequest struct {
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
)
