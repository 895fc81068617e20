package auth

import (
	"context"
	"testing"

	"healthy-eats-backend/domain"
	"healthy-eats-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	jwtService := jwt.NewJWTService("test-secret")
	service := NewAuthService(string(hash), jwtService, zap.NewNop())
	ctx := context.Background()

	t.Run("correct password", func(t *testing.T) {
		res, err := service.Login(ctx, domain.LoginRequest{Password: "correct-horse"})

		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, res.Role)
		_, role, err := jwtService.GetSubjectByToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, domain.LoginRequest{Password: "battery-staple"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("login disabled without a hash", func(t *testing.T) {
		_, err := NewAuthService("", jwtService, zap.NewNop()).Login(ctx, domain.LoginRequest{Password: "correct-horse"})

		assert.ErrorIs(t, err, domain.ErrAdminNotConfigured)
	})
}
