package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/polidog/web/internal/domain"
)

// GormUserRepository implements UserRepository using gorm.
type GormUserRepository struct {
	db *gorm.DB
}

func userFromModel(m userModel) domain.User {
	return domain.User{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		EmailVerified: m.EmailVerified,
		Image:         m.Image,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *GormUserRepository) List(ctx context.Context) ([]domain.User, error) {
	var ms []userModel
	if err := r.db.WithContext(ctx).Order("created_at, email").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]domain.User, 0, len(ms))
	for _, m := range ms {
		users = append(users, userFromModel(m))
	}
	return users, nil
}

func (r *GormUserRepository) get(ctx context.Context, query string, arg any) (*domain.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).Where(query, arg).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	u := userFromModel(m)
	return &u, nil
}

func (r *GormUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.get(ctx, "id = ?", id)
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, "email = ?", email)
}

func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	stampTimes(&user.CreatedAt, &user.UpdatedAt)
	m := userModel{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
		Image:         user.Image,
		CreatedAt:     utc(user.CreatedAt),
		UpdatedAt:     utc(user.UpdatedAt),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert user: %w", translateGormError(err, domain.ErrDuplicateEmail))
	}
	return nil
}

func (r *GormUserRepository) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", user.ID).Updates(map[string]any{
		"name":           user.Name,
		"email":          user.Email,
		"email_verified": user.EmailVerified,
		"image":          user.Image,
		"updated_at":     utc(user.UpdatedAt),
	})
	if res.Error != nil {
		return fmt.Errorf("update user: %w", translateGormError(res.Error, domain.ErrDuplicateEmail))
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormUserRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&userModel{})
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GormSessionRepository implements SessionRepository using gorm.
type GormSessionRepository struct {
	db *gorm.DB
}

func (r *GormSessionRepository) Create(ctx context.Context, s *domain.Session) error {
	m := sessionModel{
		TokenHash: s.TokenHash,
		UserID:    s.UserID,
		ExpiresAt: utc(s.ExpiresAt),
		IPAddress: s.IPAddress,
		UserAgent: s.UserAgent,
		CreatedAt: utc(s.CreatedAt),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *GormSessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	var m sessionModel
	err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &domain.Session{
		TokenHash: m.TokenHash,
		UserID:    m.UserID,
		ExpiresAt: m.ExpiresAt,
		IPAddress: m.IPAddress,
		UserAgent: m.UserAgent,
		CreatedAt: m.CreatedAt,
	}, nil
}

func (r *GormSessionRepository) Delete(ctx context.Context, tokenHash string) error {
	if err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Delete(&sessionModel{}).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *GormSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", utc(now)).Delete(&sessionModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}
