package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"excise-portal-backend/internal/domain"
	"excise-portal-backend/internal/security"
	"excise-portal-backend/internal/service"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokenManager := security.NewTokenManager("test-secret-key-of-sufficient-length", time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := service.NewAuthService(userRepo, tokenManager)

		userRepo.On("GetByUsername", ctx, "citizen1").Return(&domain.User{
			Username:     "citizen1",
			PasswordHash: string(hash),
			Role:         domain.RoleCitizen,
		}, nil)

		user, token, err := svc.Login(ctx, "citizen1", "password123")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleCitizen, user.Role)
		assert.NotEmpty(t, token)

		claims, err := tokenManager.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "citizen1", claims.Username)
		assert.Equal(t, domain.RoleCitizen, claims.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := service.NewAuthService(userRepo, tokenManager)

		userRepo.On("GetByUsername", ctx, "citizen1").Return(&domain.User{
			Username:     "citizen1",
			PasswordHash: string(hash),
			Role:         domain.RoleCitizen,
		}, nil)

		_, _, err := svc.Login(ctx, "citizen1", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := service.NewAuthService(userRepo, tokenManager)

		userRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, _, err := svc.Login(ctx, "ghost", "password123")
		// Unknown users are indistinguishable from bad passwords.
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
