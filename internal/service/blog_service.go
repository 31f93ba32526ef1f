package service

import (
	"context"
	"fmt"
	"html/template"

	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/render"
	"github.com/polidog/web/internal/repository"
)

const (
	// HomePostLimit is the number of posts on the home page.
	HomePostLimit = 10
	// TermListingPerPage is the page size of public category and tag
	// listings.
	TermListingPerPage = 10
	// DashboardRecentLimit is the number of recent posts on the dashboard.
	DashboardRecentLimit = 5
)

// PostDetail is a published post ready to render.
type PostDetail struct {
	Post       domain.Post
	Content    template.HTML
	Categories []domain.Term
	Tags       []domain.Term
}

// Dashboard is the admin overview.
type Dashboard struct {
	Stats  domain.PostStats
	Recent []domain.Post
}

// BlogService serves the read side of the public blog and dashboard.
type BlogService struct {
	store    repository.Store
	markdown *render.Markdown
}

// NewBlogService creates a BlogService.
func NewBlogService(store repository.Store, md *render.Markdown) *BlogService {
	if md == nil {
		md = render.NewMarkdown()
	}
	return &BlogService{store: store, markdown: md}
}

// Home returns the latest published posts.
func (s *BlogService) Home(ctx context.Context) ([]domain.Post, error) {
	return s.store.Posts().ListPublished(ctx, HomePostLimit)
}

// Index returns every published post, newest first.
func (s *BlogService) Index(ctx context.Context) ([]domain.Post, error) {
	return s.store.Posts().ListPublished(ctx, 0)
}

// PostDetail returns the published post with slug. Drafts are reported
// as domain.ErrNotFound.
func (s *BlogService) PostDetail(ctx context.Context, slug string) (*PostDetail, error) {
	post, err := s.store.Posts().GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished() {
		return nil, domain.ErrNotFound
	}

	categories, err := s.store.Posts().Terms(ctx, post.ID, domain.TermCategory)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	tags, err := s.store.Posts().Terms(ctx, post.ID, domain.TermTag)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	content, err := s.markdown.Render(post.Content)
	if err != nil {
		return nil, err
	}

	return &PostDetail{
		Post:       *post,
		Content:    content,
		Categories: domain.DedupeTermsBySlug(categories),
		Tags:       domain.DedupeTermsBySlug(tags),
	}, nil
}

// TermListing returns a page of the published posts of the category or
// tag with slug. page < 1 is treated as 1.
func (s *BlogService) TermListing(ctx context.Context, kind domain.TermKind, slug string, page int) (*domain.PostPage, error) {
	if page < 1 {
		page = 1
	}

	terms := s.store.Terms(kind)
	term, err := terms.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	posts, total, err := terms.ListPosts(ctx, term.ID, repository.PostQuery{
		PublishedOnly: true,
		Limit:         TermListingPerPage,
		Offset:        domain.Offset(page, TermListingPerPage),
	})
	if err != nil {
		return nil, fmt.Errorf("list %s posts: %w", kind, err)
	}

	return &domain.PostPage{
		Term:       term,
		Posts:      domain.DedupePostsBySlug(posts),
		Page:       page,
		PerPage:    TermListingPerPage,
		TotalCount: total,
		TotalPages: domain.TotalPages(total, TermListingPerPage),
	}, nil
}

// Dashboard returns post counters and the most recently created posts.
func (s *BlogService) Dashboard(ctx context.Context) (*Dashboard, error) {
	stats, err := s.store.Posts().Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	recent, err := s.store.Posts().List(ctx, DashboardRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("load recent posts: %w", err)
	}
	return &Dashboard{Stats: stats, Recent: recent}, nil
}
