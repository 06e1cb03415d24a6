package service

import (
	"context"
	"errors"
	"time"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/logger"
	"inmogestion-backend/internal/repository"
	"inmogestion-backend/internal/security"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
	email    EmailService
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager, email EmailService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		email:    email,
	}
}

func (s *authService) Signup(ctx context.Context, name, email, phone, password string, role domain.UserRole) (*domain.User, string, string, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", "", err
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, "", "", err
	}

	if role == "" {
		role = domain.UserRoleAgent
	}

	user := &domain.User{
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
		CreatedOn:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", err
	}

	// Welcome email is best effort; signup succeeds even if delivery fails.
	if err := s.email.SendWelcome(ctx, user.Email, user.Name); err != nil {
		logger.Warn("welcome email not sent", "email", user.Email, "error", err)
	}

	access, refresh, err := s.generateTokens(user)
	return user, access, refresh, err
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return "", "", ErrInvalidCredentials
	}

	return s.generateTokens(user)
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	return s.generateTokens(user)
}

func (s *authService) Logout(ctx context.Context, refresh string) error {
	// Stateless JWTs; a blacklist would go here if sessions need revocation.
	return nil
}

func (s *authService) generateTokens(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
