package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"excise-portal-backend/internal/domain"
	"excise-portal-backend/internal/repository"
	"excise-portal-backend/internal/security"
)

type authService struct {
	userRepo     repository.UserRepository
	tokenManager security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokenManager security.TokenManager) AuthService {
	return &authService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.GenerateSessionToken(user.Username, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
