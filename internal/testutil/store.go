// Package testutil holds fixtures shared by package tests that need a
// real store.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	gormlogger "gorm.io/gorm/logger"

	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/infrastructure/database"
	"github.com/polidog/web/internal/repository"
)

// NewSQLiteStore opens a migrated store on a fresh file under t.TempDir.
func NewSQLiteStore(t testing.TB) *repository.GormStore {
	t.Helper()

	db, err := database.NewSQLite(database.SQLiteConfig{
		Path:     filepath.Join(t.TempDir(), "blog.db"),
		LogLevel: gormlogger.Silent,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	store := repository.NewGormStore(db)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// CreateUser inserts a verified user with the given email.
func CreateUser(t testing.TB, store repository.Store, email string) *domain.User {
	t.Helper()

	u := &domain.User{
		ID:            uuid.NewString(),
		Name:          "Author " + email,
		Email:         email,
		EmailVerified: true,
	}
	if err := store.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

// CreatePost inserts a post. A non-nil publishedAt makes it published.
func CreatePost(t testing.TB, store repository.Store, authorID, slug string, publishedAt *time.Time) *domain.Post {
	t.Helper()

	p := &domain.Post{
		Title:       "Title " + slug,
		Slug:        slug,
		Content:     "# " + slug,
		Status:      domain.PostStatusDraft,
		AuthorID:    authorID,
		PublishedAt: publishedAt,
	}
	if publishedAt != nil {
		p.Status = domain.PostStatusPublished
	}
	if err := store.Posts().Create(context.Background(), p); err != nil {
		t.Fatalf("create post %s: %v", slug, err)
	}
	return p
}

// CreateTerm inserts a category or tag.
func CreateTerm(t testing.TB, store repository.Store, kind domain.TermKind, name, slug string) *domain.Term {
	t.Helper()

	term := &domain.Term{Kind: kind, Name: name, Slug: slug}
	if err := store.Terms(kind).Create(context.Background(), term); err != nil {
		t.Fatalf("create %s %s: %v", kind, slug, err)
	}
	return term
}

// Time returns a UTC timestamp pointer.
func Time(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return &t
}
