package service

import (
	"context"

	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/validator"
)

// PostServiceInterface defines the admin operations on posts.
// Used for dependency injection and mocking in tests.
type PostServiceInterface interface {
	Create(ctx context.Context, actor *domain.User, in validator.PostInput) (*domain.Post, error)
	Update(ctx context.Context, actor *domain.User, id int64, in validator.PostInput) (*domain.Post, error)
	Delete(ctx context.Context, actor *domain.User, id int64) error
	Publish(ctx context.Context, actor *domain.User, id int64) (*domain.Post, error)
	Unpublish(ctx context.Context, actor *domain.User, id int64) (*domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	// SelectedTermIDs returns the ids attached to the post, for edit forms.
	SelectedTermIDs(ctx context.Context, postID int64, kind domain.TermKind) ([]int64, error)
}

// TermServiceInterface defines the admin operations on one kind of
// term (categories or tags).
type TermServiceInterface interface {
	Kind() domain.TermKind
	Create(ctx context.Context, actor *domain.User, in validator.TermInput) (*domain.Term, error)
	Update(ctx context.Context, actor *domain.User, id int64, in validator.TermInput) (*domain.Term, error)
	Delete(ctx context.Context, actor *domain.User, id int64) error
	List(ctx context.Context) ([]domain.Term, error)
	Get(ctx context.Context, id int64) (*domain.Term, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Term, error)
	// GetWithPosts returns the term and one page of its posts in any status.
	GetWithPosts(ctx context.Context, id int64, page, perPage int) (*domain.PostPage, error)
}

// UserServiceInterface defines the operations behind the users API.
type UserServiceInterface interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, in validator.UserInput, verified bool) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// BlogServiceInterface defines the read side behind public and
// dashboard pages.
type BlogServiceInterface interface {
	Home(ctx context.Context) ([]domain.Post, error)
	Index(ctx context.Context) ([]domain.Post, error)
	PostDetail(ctx context.Context, slug string) (*PostDetail, error)
	TermListing(ctx context.Context, kind domain.TermKind, slug string, page int) (*domain.PostPage, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}
