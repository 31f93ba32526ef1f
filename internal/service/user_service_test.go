package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/polidog/web/internal/auth"
	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/mocks"
	"github.com/polidog/web/internal/service"
	"github.com/polidog/web/internal/validator"
)

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with lowercased email", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "jane@example.com" && u.Name == "Jane" && u.ID != "" && !u.EmailVerified
		})).Return(nil)

		svc := service.NewUserService(repo, validator.NewValidator(), nil)
		user, err := svc.Create(ctx, validator.UserInput{Name: " Jane ", Email: "Jane@Example.com"}, false)

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Len(t, user.ID, 36)
	})

	t.Run("invalid input never reaches the store", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)

		svc := service.NewUserService(repo, validator.NewValidator(), nil)
		_, err := svc.Create(ctx, validator.UserInput{Name: "Jane", Email: "nope"}, false)

		fe, ok := validator.AsFieldErrors(err)
		require.True(t, ok)
		assert.True(t, fe.Has("email"))
	})

	t.Run("allow-list rejects", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		allow := auth.NewAllowList([]string{"owner@example.com"})

		svc := service.NewUserService(repo, validator.NewValidator(), allow)
		_, err := svc.Create(ctx, validator.UserInput{Name: "Eve", Email: "eve@example.com"}, true)

		assert.ErrorIs(t, err, domain.ErrEmailNotAllowed)
	})

	t.Run("allow-list accepts", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		allow := auth.NewAllowList([]string{"owner@example.com"})

		svc := service.NewUserService(repo, validator.NewValidator(), allow)
		user, err := svc.Create(ctx, validator.UserInput{Name: "Owner", Email: "OWNER@example.com"}, true)

		require.NoError(t, err)
		assert.True(t, user.EmailVerified)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

		svc := service.NewUserService(repo, validator.NewValidator(), nil)
		_, err := svc.Create(ctx, validator.UserInput{Name: "Jane", Email: "jane@example.com"}, false)

		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		repo.EXPECT().Delete(mock.Anything, "u1").Return(nil)

		svc := service.NewUserService(repo, validator.NewValidator(), nil)
		assert.NoError(t, svc.Delete(ctx, "u1"))
	})

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		repo.EXPECT().Delete(mock.Anything, "ghost").Return(domain.ErrNotFound)

		svc := service.NewUserService(repo, validator.NewValidator(), nil)
		assert.ErrorIs(t, svc.Delete(ctx, "ghost"), domain.ErrNotFound)
	})
}

func TestUserService_List(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]domain.User{{ID: "u1"}, {ID: "u2"}}, nil)

	svc := service.NewUserService(repo, validator.NewValidator(), nil)
	users, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)

	repo2 := mocks.NewMockUserRepository(t)
	repo2.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))
	_, err = service.NewUserService(repo2, validator.NewValidator(), nil).List(context.Background())
	assert.Error(t, err)
}
