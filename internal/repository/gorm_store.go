package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/polidog/web/internal/domain"
)

type userModel struct {
	ID            string `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	Email         string `gorm:"not null;uniqueIndex:users_email_key"`
	EmailVerified bool   `gorm:"not null;default:false"`
	Image         *string
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (userModel) TableName() string { return "users" }

type sessionModel struct {
	TokenHash string     `gorm:"primaryKey"`
	UserID    string     `gorm:"not null;index"`
	User      *userModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time  `gorm:"not null;index"`
	IPAddress string     `gorm:"not null;default:''"`
	UserAgent string     `gorm:"not null;default:''"`
	CreatedAt time.Time  `gorm:"not null"`
}

func (sessionModel) TableName() string { return "sessions" }

type postModel struct {
	ID          int64      `gorm:"primaryKey"`
	Title       string     `gorm:"not null"`
	Slug        string     `gorm:"not null;uniqueIndex:posts_slug_key"`
	Content     string     `gorm:"not null"`
	Excerpt     *string
	Status      string     `gorm:"not null;check:posts_status_check,status IN ('draft', 'published')"`
	AuthorID    string     `gorm:"not null;index"`
	Author      *userModel `gorm:"foreignKey:AuthorID"`
	PublishedAt *time.Time `gorm:"index;check:posts_published_at_check,status = 'draft' OR published_at IS NOT NULL"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

func (postModel) TableName() string { return "posts" }

type categoryModel struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Slug      string    `gorm:"not null;uniqueIndex:categories_slug_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (categoryModel) TableName() string { return "categories" }

type tagModel struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Slug      string    `gorm:"not null;uniqueIndex:tags_slug_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (tagModel) TableName() string { return "tags" }

// Join rows follow their post; term deletion cleans up explicitly.
type postCategoryModel struct {
	PostID     int64          `gorm:"primaryKey;autoIncrement:false"`
	CategoryID int64          `gorm:"primaryKey;autoIncrement:false;index"`
	Post       *postModel     `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Category   *categoryModel `gorm:"foreignKey:CategoryID"`
}

func (postCategoryModel) TableName() string { return "post_categories" }

type postTagModel struct {
	PostID int64      `gorm:"primaryKey;autoIncrement:false"`
	TagID  int64      `gorm:"primaryKey;autoIncrement:false;index"`
	Post   *postModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Tag    *tagModel  `gorm:"foreignKey:TagID"`
}

func (postTagModel) TableName() string { return "post_tags" }

// termRow reads and writes either term table through db.Table.
type termRow struct {
	ID        int64 `gorm:"primaryKey"`
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AutoMigrate creates or updates the local schema. It mirrors the
// PostgreSQL migrations.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&userModel{},
		&sessionModel{},
		&postModel{},
		&categoryModel{},
		&tagModel{},
		&postCategoryModel{},
		&postTagModel{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// GormStore implements Store on gorm, used for the local SQLite file.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GormStore.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Users() UserRepository       { return &GormUserRepository{db: s.db} }
func (s *GormStore) Sessions() SessionRepository { return &GormSessionRepository{db: s.db} }
func (s *GormStore) Posts() PostRepository       { return &GormPostRepository{db: s.db} }

func (s *GormStore) Terms(kind domain.TermKind) TermRepository {
	return &GormTermRepository{db: s.db, kind: kind, tbl: tablesFor(kind)}
}

// WithTransaction runs fn in a transaction. Nested calls use savepoints.
func (s *GormStore) WithTransaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB exposes the gorm handle for metrics collection.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func translateGormError(err, duplicate error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return duplicate
	}
	return err
}

func utc(t time.Time) time.Time {
	return t.UTC()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func postFromModel(m postModel) domain.Post {
	return domain.Post{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Content:     m.Content,
		Excerpt:     m.Excerpt,
		Status:      domain.PostStatus(m.Status),
		AuthorID:    m.AuthorID,
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func postsFromModels(ms []postModel) []domain.Post {
	posts := make([]domain.Post, 0, len(ms))
	for _, m := range ms {
		posts = append(posts, postFromModel(m))
	}
	return posts
}

func termFromRow(r termRow, kind domain.TermKind) domain.Term {
	return domain.Term{
		ID:        r.ID,
		Kind:      kind,
		Name:      r.Name,
		Slug:      r.Slug,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func paginate(db *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		db = db.Limit(limit)
	}
	if offset > 0 {
		db = db.Offset(offset)
	}
	return db
}
