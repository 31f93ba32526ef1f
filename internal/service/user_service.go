package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/polidog/web/internal/auth"
	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/logger"
	"github.com/polidog/web/internal/metrics"
	"github.com/polidog/web/internal/repository"
	"github.com/polidog/web/internal/validator"
)

// UserService manages author accounts outside the OAuth flow.
type UserService struct {
	users     repository.UserRepository
	validator *validator.Validator
	allowList *auth.AllowList
}

// NewUserService creates a UserService. allowList may be nil.
func NewUserService(users repository.UserRepository, v *validator.Validator, allowList *auth.AllowList) *UserService {
	return &UserService{users: users, validator: v, allowList: allowList}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Create validates in, runs the allow-list hook and inserts the user.
func (s *UserService) Create(ctx context.Context, in validator.UserInput, verified bool) (user *domain.User, err error) {
	timer := metrics.NewTimer()
	defer func() { observe(ctx, "user.create", timer, err) }()

	in.Normalize()
	if err := s.validator.ValidateUser(&in); err != nil {
		return nil, err
	}
	email := strings.ToLower(in.Email)
	if err := s.allowList.BeforeUserCreate(email); err != nil {
		return nil, err
	}

	user = &domain.User{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Email:         email,
		EmailVerified: verified,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "User created", "user_id", user.ID)
	return user, nil
}

// Delete removes the user with id.
func (s *UserService) Delete(ctx context.Context, id string) (err error) {
	timer := metrics.NewTimer()
	defer func() { observe(ctx, "user.delete", timer, err) }()

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoContext(ctx, "User deleted", "user_id", id)
	return nil
}
