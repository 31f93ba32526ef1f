package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polidog/web/internal/auth"
	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/render"
	"github.com/polidog/web/internal/service"
)

// loginErrors maps the ?error= codes set by the OAuth callback.
var loginErrors = map[string]string{
	"access_denied": "Sign-in was cancelled.",
	"invalid_state": "Your sign-in session expired. Please try again.",
	"oauth":         "Google sign-in failed. Please try again.",
	"not_allowed":   "This account is not allowed to sign in.",
	"server":        msgServerError,
}

// PublicHandler serves the public blog pages and the login page.
type PublicHandler struct {
	blog  service.BlogServiceInterface
	links render.Links
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(blog service.BlogServiceInterface, links render.Links) *PublicHandler {
	return &PublicHandler{blog: blog, links: links}
}

// Home handles GET /
func (h *PublicHandler) Home(c *gin.Context) {
	posts, err := h.blog.Home(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to load home page")
		return
	}
	renderPage(c, http.StatusOK, "home.html", gin.H{"Posts": posts})
}

// Index handles GET /blog
func (h *PublicHandler) Index(c *gin.Context) {
	posts, err := h.blog.Index(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to load blog index")
		return
	}
	renderPage(c, http.StatusOK, "blog.html", gin.H{"Title": "Blog", "Posts": posts})
}

// Post handles GET /blog/:year/:month/:slug
// The post is found by slug; a year or month that does not match its
// publication date redirects to the canonical URL.
func (h *PublicHandler) Post(c *gin.Context) {
	detail, err := h.blog.PostDetail(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, domain.ErrNotFound) {
		notFound(c, "")
		return
	}
	if err != nil {
		serverError(c, err, "Failed to load post")
		return
	}

	canonical := h.links.PostURL(detail.Post)
	if requested := fmt.Sprintf("/blog/%s/%s/%s", c.Param("year"), c.Param("month"), c.Param("slug")); requested != canonical {
		c.Redirect(http.StatusMovedPermanently, canonical)
		return
	}

	renderPage(c, http.StatusOK, "post.html", gin.H{
		"Title":      detail.Post.Title,
		"Post":       detail.Post,
		"Content":    detail.Content,
		"Categories": detail.Categories,
		"Tags":       detail.Tags,
	})
}

// TermListing returns the handler for GET /blog/{kind}/:slug
func (h *PublicHandler) TermListing(kind domain.TermKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := h.blog.TermListing(c.Request.Context(), kind, c.Param("slug"), queryPage(c))
		if errors.Is(err, domain.ErrNotFound) {
			notFound(c, "")
			return
		}
		if err != nil {
			serverError(c, err, "Failed to load term listing")
			return
		}

		renderPage(c, http.StatusOK, "term.html", gin.H{
			"Title":      page.Term.Name,
			"Term":       page.Term,
			"Posts":      page.Posts,
			"TotalCount": page.TotalCount,
			"Pagination": render.NewPagination(render.TermURL(*page.Term), page.Page, page.TotalPages),
		})
	}
}

// Login handles GET /login
func (h *PublicHandler) Login(c *gin.Context) {
	if auth.CurrentUser(c) != nil {
		c.Redirect(http.StatusFound, auth.DashboardPath)
		return
	}
	renderPage(c, http.StatusOK, "login.html", gin.H{
		"Title":     "Sign in",
		"Error":     loginErrors[c.Query("error")],
		"SignInURL": auth.SignInPath,
	})
}

// NotFound renders the 404 page for unmatched routes.
func (h *PublicHandler) NotFound(c *gin.Context) {
	notFound(c, "")
}

// RegisterRoutes mounts the public pages on r.
func (h *PublicHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Home)
	r.GET("/blog", h.Index)
	r.GET("/blog/:year/:month/:slug", h.Post)
	r.GET("/blog/category/:slug", h.TermListing(domain.TermCategory))
	r.GET("/blog/tag/:slug", h.TermListing(domain.TermTag))
}
