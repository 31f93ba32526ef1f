package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/polidog/web/internal/cache"
	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/logger"
	"github.com/polidog/web/internal/metrics"
	"github.com/polidog/web/internal/repository"
	"github.com/polidog/web/internal/validator"
)

// PostService implements the admin post actions. Every action checks
// the actor, validates, writes inside a transaction and revalidates the
// cached pages it affects.
type PostService struct {
	store     repository.Store
	validator *validator.Validator
	cache     cache.Invalidator
	loc       *time.Location
	now       func() time.Time
}

// NewPostService creates a PostService. loc is the zone form dates are
// read in.
func NewPostService(store repository.Store, v *validator.Validator, inv cache.Invalidator, loc *time.Location) *PostService {
	if inv == nil {
		inv = cache.Nop{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &PostService{store: store, validator: v, cache: inv, loc: loc, now: time.Now}
}

// prepare normalizes and validates in.
func (s *PostService) prepare(ctx context.Context, in *validator.PostInput) error {
	in.Normalize()
	if err := in.ResolvePublishedAt(s.loc); err != nil {
		return err
	}
	if err := s.validator.ValidatePost(in); err != nil {
		return err
	}
	return s.checkTermIDs(ctx, in)
}

// checkTermIDs rejects selections naming terms that do not exist.
func (s *PostService) checkTermIDs(ctx context.Context, in *validator.PostInput) error {
	fe := &validator.FieldErrors{}
	check := func(field string, kind domain.TermKind, ids []int64) error {
		for _, id := range ids {
			_, err := s.store.Terms(kind).GetByID(ctx, id)
			if errors.Is(err, domain.ErrNotFound) {
				fe.Add(field, "invalid_id")
				return nil
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
	if err := check("category_ids", domain.TermCategory, in.CategoryIDs); err != nil {
		return err
	}
	if err := check("tag_ids", domain.TermTag, in.TagIDs); err != nil {
		return err
	}
	if len(fe.Errors) > 0 {
		return fe
	}
	return nil
}

func replaceTerms(ctx context.Context, posts repository.PostRepository, postID int64, in validator.PostInput) error {
	for kind, ids := range map[domain.TermKind][]int64{
		domain.TermCategory: in.CategoryIDs,
		domain.TermTag:      in.TagIDs,
	} {
		if err := posts.RemoveTerms(ctx, postID, kind); err != nil {
			return err
		}
		if err := posts.AddTerms(ctx, postID, kind, ids); err != nil {
			return err
		}
	}
	return nil
}

// Create inserts a post with its category and tag selection. A
// published post without an explicit date is stamped now.
func (s *PostService) Create(ctx context.Context, actor *domain.User, in validator.PostInput) (post *domain.Post, err error) {
	timer := metrics.NewTimer()
	defer func() { observe(ctx, "post.create", timer, err) }()

	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.prepare(ctx, &in); err != nil {
		return nil, err
	}

	post = &domain.Post{
		Title:    in.Title,
		Slug:     in.Slug,
		Content:  in.Content,
		Excerpt:  in.ExcerptPtr(),
		Status:   domain.PostStatus(in.Status),
		AuthorID: actor.ID,
	}
	if post.Status == domain.PostStatusPublished {
		at := s.now()
		if in.PublishedAt != nil {
			at = *in.PublishedAt
		}
		post.PublishedAt = &at
	}

	err = s.store.WithTransaction(ctx, func(tx repository.Store) error {
		if err := tx.Posts().Create(ctx, post); err != nil {
			return err
		}
		if err := tx.Posts().AddTerms(ctx, post.ID, domain.TermCategory, in.CategoryIDs); err != nil {
			return err
		}
		return tx.Posts().AddTerms(ctx, post.ID, domain.TermTag, in.TagIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.cache.Revalidate(append([]string{"/admin/posts"}, publicPaths...)...)
	logger.InfoContext(ctx, "Post created", "post_id", post.ID, "slug", post.Slug, "status", post.Status)
	return post, nil
}

// nextPublishedAt computes the publication date of an updated post.
// An explicit date wins, a draft becoming published is stamped now, an
// already published post keeps its date and a draft has none.
func (s *PostService) nextPublishedAt(current *domain.Post, status domain.PostStatus, explicit *time.Time) *time.Time {
	if status != domain.PostStatusPublished {
		return nil
	}
	if explicit != nil {
		return explicit
	}
	if current.Status == domain.PostStatusPublished && current.PublishedAt != nil {
		return current.PublishedAt
	}
	at := s.now()
	return &at
}

// Update rewrites a post and replaces its category and tag selection
// wholesale. An empty selection removes every link.
func (s *PostService) Update(ctx context.Context, actor *domain.User, id int64, in validator.PostInput) (post *domain.Post, err error) {
	timer := metrics.NewTimer()
	defer func() { observe(ctx, "post.update", timer, err) }()

	if err := requireActor(actor); err != nil {
		return nil, err
	}
	current, err := s.store.Posts().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.prepare(ctx, &in); err != nil {
		return nil, err
	}

	post = &domain.Post{
		ID:        current.ID,
		Title:     in.Title,
		Slug:      in.Slug,
		Content:   in.Content,
		Excerpt:   in.ExcerptPtr(),
		Status:    domain.PostStatus(in.Status),
		AuthorID:  current.AuthorID,
		CreatedAt: current.CreatedAt,
	}
	post.PublishedAt = s.nextPublishedAt(current, post.Status, in.PublishedAt)

	err = s.store.WithTransaction(ctx, func(tx repository.Store) error {
		if err := tx.Posts().Update(ctx, post); err != nil {
			return err
		}
		return replaceTerms(ctx, tx.Posts(), post.ID, in)
	})
	if err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}

	s.revalidatePost(post.ID)
	logger.InfoContext(ctx, "Post updated", "post_id", post.ID, "slug", post.Slug, "status", post.Status)
	return post, nil
}

// Delete removes a post and its join rows.
func (s *PostService) Delete(ctx context.Context, actor *domain.User, id int64) (err error) {
	timer := metrics.NewTimer()
	defer func() { observe(ctx, "post.delete", timer, err) }()

	if err := requireActor(actor); err != nil {
		return err
	}

	err = s.store.WithTransaction(ctx, func(tx repository.Store) error {
		if err := tx.Posts().RemoveTerms(ctx, id, domain.TermCategory); err != nil {
			return err
		}
		if err := tx.Posts().RemoveTerms(ctx, id, domain.TermTag); err != nil {
			return err
		}
		return tx.Posts().Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}

	s.revalidatePost(id)
	logger.InfoContext(ctx, "Post deleted", "post_id", id)
	return nil
}

// Publish marks a post published, stamping now unless it already had a
// publication date as a published post.
func (s *PostService) Publish(ctx context.Context, actor *domain.User, id int64) (post *domain.Post, err error) {
	timer := metrics.NewTimer()
	defer func() { observe(ctx, "post.publish", timer, err) }()

	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.store.Posts().Publish(ctx, id, s.now()); err != nil {
		return nil, fmt.Errorf("publish post %d: %w", id, err)
	}
	post, err = s.store.Posts().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.revalidatePost(id)
	logger.InfoContext(ctx, "Post published", "post_id", id)
	return post, nil
}

// Unpublish reverts a post to draft and clears its publication date.
func (s *PostService) Unpublish(ctx context.Context, actor *domain.User, id int64) (post *domain.Post, err error) {
	timer := metrics.NewTimer()
	defer func() { observe(ctx, "post.unpublish", timer, err) }()

	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.store.Posts().Unpublish(ctx, id); err != nil {
		return nil, fmt.Errorf("unpublish post %d: %w", id, err)
	}
	post, err = s.store.Posts().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.revalidatePost(id)
	logger.InfoContext(ctx, "Post unpublished", "post_id", id)
	return post, nil
}

func (s *PostService) revalidatePost(id int64) {
	paths := []string{"/admin/posts", "/admin/posts/" + strconv.FormatInt(id, 10) + "/edit"}
	s.cache.Revalidate(append(paths, publicPaths...)...)
}

// Get returns a post in any status.
func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return s.store.Posts().GetByID(ctx, id)
}

// List returns every post, newest first.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.store.Posts().List(ctx, 0)
}

// SelectedTermIDs returns the ids of the post's categories or tags.
func (s *PostService) SelectedTermIDs(ctx context.Context, postID int64, kind domain.TermKind) ([]int64, error) {
	return s.store.Posts().TermIDs(ctx, postID, kind)
}
