package middleware

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polidog/web/internal/auth"
	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/logger"
	"github.com/polidog/web/internal/render"
)

// PostFinder looks posts up by slug.
type PostFinder interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
}

// SessionResolver resolves the login session of a request.
type SessionResolver interface {
	GetSession(ctx context.Context, r *http.Request) (*auth.SessionInfo, error)
}

var (
	// /{yyyy}/{mm}/{dd}/{slug} from the previous blog engine
	legacyDatedPath = regexp.MustCompile(`^/(\d{4})/(\d{2})/(\d{2})/([^/]+)/?$`)
	shortPostPath   = regexp.MustCompile(`^/blog/([^/]+)/?$`)

	edgeSkipPrefixes = []string{"/api", "/static", "/metrics", "/health", "/ready", "/live"}
)

// Edge runs before routing for every request. It redirects short and
// legacy post URLs to the dated form and keeps /admin behind a session.
func Edge(posts PostFinder, sessions SessionResolver, loc *time.Location) gin.HandlerFunc {
	if loc == nil {
		loc = time.UTC
	}
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range edgeSkipPrefixes {
			if hasPathPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		if m := shortPostPath.FindStringSubmatch(path); m != nil {
			if target := shortPostRedirect(c.Request.Context(), posts, m[1], loc); target != "" {
				c.Redirect(http.StatusMovedPermanently, target)
				c.Abort()
				return
			}
		}

		if m := legacyDatedPath.FindStringSubmatch(path); m != nil {
			c.Redirect(http.StatusMovedPermanently, "/blog/"+m[1]+"/"+m[2]+"/"+m[4])
			c.Abort()
			return
		}

		if hasPathPrefix(path, "/admin") {
			info, err := sessions.GetSession(c.Request.Context(), c.Request)
			if err != nil {
				logger.ErrorContext(c.Request.Context(), "Failed to load session", "error", err)
			}
			if info == nil {
				c.Redirect(http.StatusFound, auth.LoginPath)
				c.Abort()
				return
			}
			auth.SetSession(c, info)
		}

		c.Next()
	}
}

// shortPostRedirect returns the dated path for slug, or "" when the
// request should fall through.
func shortPostRedirect(ctx context.Context, posts PostFinder, slug string, loc *time.Location) string {
	post, err := posts.GetBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.ErrorContext(ctx, "Failed to look up post for redirect", "slug", slug, "error", err)
		}
		return ""
	}
	if post.PublishedAt == nil {
		return ""
	}
	return render.DatedPostPath(post.PublishedAt.In(loc), post.Slug)
}

// hasPathPrefix matches prefix as a whole path segment.
func hasPathPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
