package service

import (
	"errors"
	"fmt"
	"time"

	"hrms/internal/models"
	"hrms/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is deactivated")
)

type AuthService interface {
	// Login verifies credentials and returns a bearer token plus the
	// authenticated user. Unknown or soft-deleted emails and wrong passwords
	// come back as ErrInvalidCredentials; a correct password on a
	// deactivated account comes back as ErrAccountInactive.
	Login(email, password string) (string, time.Time, *models.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *TokenService
	hasher *PasswordHasher
	logger *zap.Logger
}

func NewAuthService(users repository.UserRepository, tokens *TokenService, hasher *PasswordHasher, logger *zap.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		logger: logger,
	}
}

func (s *authService) Login(email, password string) (string, time.Time, *models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", time.Time{}, nil, ErrInvalidCredentials
		}
		s.logger.Error("Failed to get user by email", zap.Error(err))
		return "", time.Time{}, nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}

	if user.Status != models.UserStatusActive {
		return "", time.Time{}, nil, ErrAccountInactive
	}

	tokenString, expirationTime, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err))
		return "", time.Time{}, nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("User logged in successfully.", zap.Int64("user_id", user.ID))

	return tokenString, expirationTime, user, nil
}
