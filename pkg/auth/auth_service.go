package auth

import (
	"context"

	"healthy-eats-backend/domain"
	"healthy-eats-backend/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminSubject = "admin"

type (
	AuthService interface {
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
	}

	authService struct {
		passwordHash string
		jwtService   jwt.JWTService
		logger       *zap.Logger
	}
)

// NewAuthService checks admin logins against a bcrypt hash. An empty hash
// disables login.
func NewAuthService(passwordHash string, jwtService jwt.JWTService, logger *zap.Logger) AuthService {
	return &authService{
		passwordHash: passwordHash,
		jwtService:   jwtService,
		logger:       logger.Named("auth"),
	}
}

func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if s.passwordHash == "" {
		return domain.LoginResponse{}, domain.ErrAdminNotConfigured
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("admin login rejected")
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(adminSubject, domain.RoleAdmin)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	return domain.LoginResponse{Token: token, Role: domain.RoleAdmin}, nil
}
