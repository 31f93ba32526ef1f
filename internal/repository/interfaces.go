package repository

import (
	"context"
	"time"

	"github.com/polidog/web/internal/domain"
)

// Lookups that miss return domain.ErrNotFound. Unique violations are
// reported as domain.ErrDuplicateSlug or domain.ErrDuplicateEmail.

// UserRepository defines methods for user data access.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// SessionRepository defines methods for login session data access.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	Delete(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// PostQuery narrows post listings.
type PostQuery struct {
	PublishedOnly bool
	Limit         int // 0 means no limit
	Offset        int
}

// PostRepository defines methods for post data access, including the
// post side of the category and tag join tables.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
	// Publish marks the post published. publishedAt is set to at when
	// the post was a draft or had no date, and kept otherwise.
	Publish(ctx context.Context, id int64, at time.Time) error
	// Unpublish reverts the post to draft and clears publishedAt.
	Unpublish(ctx context.Context, id int64) error
	// ListPublished orders by publishedAt desc; List orders by createdAt desc.
	ListPublished(ctx context.Context, limit int) ([]domain.Post, error)
	List(ctx context.Context, limit int) ([]domain.Post, error)
	Stats(ctx context.Context) (domain.PostStats, error)

	AddTerms(ctx context.Context, postID int64, kind domain.TermKind, termIDs []int64) error
	RemoveTerms(ctx context.Context, postID int64, kind domain.TermKind) error
	TermIDs(ctx context.Context, postID int64, kind domain.TermKind) ([]int64, error)
	Terms(ctx context.Context, postID int64, kind domain.TermKind) ([]domain.Term, error)
}

// TermRepository defines methods for category or tag data access. One
// instance serves one kind.
type TermRepository interface {
	Kind() domain.TermKind
	List(ctx context.Context) ([]domain.Term, error)
	GetByID(ctx context.Context, id int64) (*domain.Term, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Term, error)
	Create(ctx context.Context, term *domain.Term) error
	Update(ctx context.Context, term *domain.Term) error
	Delete(ctx context.Context, id int64) error
	// GetOrCreate returns the term with slug, inserting it with name
	// when missing.
	GetOrCreate(ctx context.Context, name, slug string) (*domain.Term, error)
	// DetachAll removes every join row pointing at the term.
	DetachAll(ctx context.Context, id int64) error
	// ListPosts returns the term's posts and the total matching count.
	// Published-only listings order by publishedAt desc, others by
	// createdAt desc.
	ListPosts(ctx context.Context, id int64, q PostQuery) ([]domain.Post, int, error)
}

// Store bundles the repositories over one connection or transaction.
type Store interface {
	Users() UserRepository
	Sessions() SessionRepository
	Posts() PostRepository
	Terms(kind domain.TermKind) TermRepository
	// WithTransaction runs fn against a Store bound to a transaction,
	// committing when fn returns nil and rolling back otherwise.
	WithTransaction(ctx context.Context, fn func(tx Store) error) error
	Ping(ctx context.Context) error
	Close() error
}
