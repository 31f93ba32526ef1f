package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/polidog/web/internal/cache"
	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/logger"
	"github.com/polidog/web/internal/metrics"
	"github.com/polidog/web/internal/repository"
	"github.com/polidog/web/internal/validator"
)

// DefaultTermPostsPerPage is the admin term detail page size.
const DefaultTermPostsPerPage = 50

// TermService implements the admin actions for one kind of term.
type TermService struct {
	kind      domain.TermKind
	store     repository.Store
	validator *validator.Validator
	cache     cache.Invalidator
}

// NewTermService creates a TermService for kind.
func NewTermService(kind domain.TermKind, store repository.Store, v *validator.Validator, inv cache.Invalidator) *TermService {
	if inv == nil {
		inv = cache.Nop{}
	}
	return &TermService{kind: kind, store: store, validator: v, cache: inv}
}

// Kind returns the term kind the service manages.
func (s *TermService) Kind() domain.TermKind {
	return s.kind
}

func (s *TermService) action(verb string) string {
	return string(s.kind) + "." + verb
}

func (s *TermService) revalidate(id int64) {
	base := "/admin/" + s.kind.Plural()
	paths := []string{base}
	if id > 0 {
		paths = append(paths, base+"/"+strconv.FormatInt(id, 10))
	}
	s.cache.Revalidate(append(paths, publicPaths...)...)
}

// Create inserts a term. A taken slug returns domain.ErrDuplicateSlug.
func (s *TermService) Create(ctx context.Context, actor *domain.User, in validator.TermInput) (term *domain.Term, err error) {
	timer := metrics.NewTimer()
	defer func() { observe(ctx, s.action("create"), timer, err) }()

	if err := requireActor(actor); err != nil {
		return nil, err
	}
	in.Normalize()
	if err := s.validator.ValidateTerm(&in); err != nil {
		return nil, err
	}

	term = &domain.Term{Kind: s.kind, Name: in.Name, Slug: in.Slug}
	if err := s.store.Terms(s.kind).Create(ctx, term); err != nil {
		return nil, err
	}

	s.revalidate(0)
	logger.InfoContext(ctx, "Term created", "kind", s.kind, "term_id", term.ID, "slug", term.Slug)
	return term, nil
}

// Update renames a term or changes its slug.
func (s *TermService) Update(ctx context.Context, actor *domain.User, id int64, in validator.TermInput) (term *domain.Term, err error) {
	timer := metrics.NewTimer()
	defer func() { observe(ctx, s.action("update"), timer, err) }()

	if err := requireActor(actor); err != nil {
		return nil, err
	}
	in.Normalize()
	if err := s.validator.ValidateTerm(&in); err != nil {
		return nil, err
	}

	term = &domain.Term{ID: id, Kind: s.kind, Name: in.Name, Slug: in.Slug}
	if err := s.store.Terms(s.kind).Update(ctx, term); err != nil {
		return nil, err
	}

	s.revalidate(id)
	logger.InfoContext(ctx, "Term updated", "kind", s.kind, "term_id", id, "slug", term.Slug)
	return term, nil
}

// Delete detaches the term from every post and removes it, in one
// transaction.
func (s *TermService) Delete(ctx context.Context, actor *domain.User, id int64) (err error) {
	timer := metrics.NewTimer()
	defer func() { observe(ctx, s.action("delete"), timer, err) }()

	if err := requireActor(actor); err != nil {
		return err
	}

	err = s.store.WithTransaction(ctx, func(tx repository.Store) error {
		terms := tx.Terms(s.kind)
		if err := terms.DetachAll(ctx, id); err != nil {
			return err
		}
		return terms.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", s.kind, id, err)
	}

	s.revalidate(id)
	logger.InfoContext(ctx, "Term deleted", "kind", s.kind, "term_id", id)
	return nil
}

// List returns every term of the kind ordered by name.
func (s *TermService) List(ctx context.Context) ([]domain.Term, error) {
	return s.store.Terms(s.kind).List(ctx)
}

// Get returns the term with id.
func (s *TermService) Get(ctx context.Context, id int64) (*domain.Term, error) {
	return s.store.Terms(s.kind).GetByID(ctx, id)
}

// GetBySlug returns the term with slug.
func (s *TermService) GetBySlug(ctx context.Context, slug string) (*domain.Term, error) {
	return s.store.Terms(s.kind).GetBySlug(ctx, slug)
}

// GetWithPosts returns the term and a page of its posts in any status,
// newest first. page < 1 is treated as 1 and perPage < 1 uses
// DefaultTermPostsPerPage.
func (s *TermService) GetWithPosts(ctx context.Context, id int64, page, perPage int) (*domain.PostPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultTermPostsPerPage
	}

	terms := s.store.Terms(s.kind)
	term, err := terms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	posts, total, err := terms.ListPosts(ctx, id, repository.PostQuery{
		Limit:  perPage,
		Offset: domain.Offset(page, perPage),
	})
	if err != nil {
		return nil, fmt.Errorf("list %s posts: %w", s.kind, err)
	}

	return &domain.PostPage{
		Term:       term,
		Posts:      posts,
		Page:       page,
		PerPage:    perPage,
		TotalCount: total,
		TotalPages: domain.TotalPages(total, perPage),
	}, nil
}
