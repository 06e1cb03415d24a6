package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/repository"
	"inmogestion-backend/internal/security"
)

func newTestTokenManager() security.TokenManager {
	return security.NewTokenManager("test-secret-that-is-long-enough!", 15, 60*24*7)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	email := "laura@inmo.test"

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := NewAuthService(userRepo, newTestTokenManager(), emailSvc)

		userRepo.On("GetByEmail", ctx, email).Return(nil, repository.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 42
		}).Return(nil)
		emailSvc.On("SendWelcome", ctx, email, "Laura").Return(nil)

		user, access, refresh, err := svc.Signup(ctx, "Laura", email, "3007654321", "s3cret-pass", "")
		assert.NoError(t, err)
		assert.Equal(t, int32(42), user.ID)
		assert.Equal(t, domain.UserRoleAgent, user.Role)
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
		assert.True(t, security.CheckPassword("s3cret-pass", user.PasswordHash))
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		userRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Email Taken", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := NewAuthService(userRepo, newTestTokenManager(), emailSvc)

		userRepo.On("GetByEmail", ctx, email).Return(&domain.User{ID: 1, Email: email}, nil)

		_, _, _, err := svc.Signup(ctx, "Laura", email, "", "s3cret-pass", "")
		assert.ErrorIs(t, err, ErrEmailTaken)
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Email Failure Does Not Block Signup", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := NewAuthService(userRepo, newTestTokenManager(), emailSvc)

		userRepo.On("GetByEmail", ctx, email).Return(nil, repository.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)
		emailSvc.On("SendWelcome", ctx, email, "Laura").Return(assert.AnError)

		_, _, _, err := svc.Signup(ctx, "Laura", email, "", "s3cret-pass", "")
		assert.NoError(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	email := "laura@inmo.test"
	hash, err := security.HashPassword("s3cret-pass")
	assert.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, newTestTokenManager(), new(MockEmailService))

		userRepo.On("GetByEmail", ctx, email).Return(&domain.User{
			ID:           42,
			Email:        email,
			PasswordHash: hash,
			Role:         domain.UserRoleAgent,
		}, nil)

		access, refresh, err := svc.Login(ctx, email, "s3cret-pass")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, newTestTokenManager(), new(MockEmailService))

		userRepo.On("GetByEmail", ctx, email).Return(&domain.User{ID: 42, Email: email, PasswordHash: hash}, nil)

		_, _, err := svc.Login(ctx, email, "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, newTestTokenManager(), new(MockEmailService))

		userRepo.On("GetByEmail", ctx, "nobody@inmo.test").Return(nil, repository.ErrNotFound)

		_, _, err := svc.Login(ctx, "nobody@inmo.test", "s3cret-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	tokens := newTestTokenManager()

	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, tokens, new(MockEmailService))

	t.Run("Valid Refresh Token", func(t *testing.T) {
		refresh, err := tokens.GenerateRefreshToken(42, "laura@inmo.test")
		assert.NoError(t, err)

		userRepo.On("GetByID", ctx, int32(42)).Return(&domain.User{
			ID:    42,
			Email: "laura@inmo.test",
			Role:  domain.UserRoleAgent,
		}, nil)

		access, newRefresh, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("Access Token Rejected", func(t *testing.T) {
		access, err := tokens.GenerateAccessToken(42, "laura@inmo.test", "AGENT")
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage Token Rejected", func(t *testing.T) {
		_, _, err := svc.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
