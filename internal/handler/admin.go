package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polidog/web/internal/auth"
	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/render"
	"github.com/polidog/web/internal/service"
	"github.com/polidog/web/internal/validator"
)

// AdminHandler serves the authoring pages under /admin. Every route
// expects RequireAuth to have run.
type AdminHandler struct {
	posts service.PostServiceInterface
	terms map[domain.TermKind]service.TermServiceInterface
	blog  service.BlogServiceInterface
	loc   *time.Location
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(posts service.PostServiceInterface, categories, tags service.TermServiceInterface, blog service.BlogServiceInterface, loc *time.Location) *AdminHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AdminHandler{
		posts: posts,
		terms: map[domain.TermKind]service.TermServiceInterface{
			domain.TermCategory: categories,
			domain.TermTag:      tags,
		},
		blog: blog,
		loc:  loc,
	}
}

// RegisterRoutes mounts the admin pages on r.
func (h *AdminHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("", h.Root)
	r.GET("/", h.Root)
	r.GET("/dashboard", h.Dashboard)

	r.GET("/posts", h.ListPosts)
	r.GET("/posts/new", h.NewPost)
	r.POST("/posts", h.CreatePost)
	r.GET("/posts/:id/edit", h.EditPost)
	r.POST("/posts/:id", h.UpdatePost)
	r.POST("/posts/:id/delete", h.DeletePost)
	r.POST("/posts/:id/publish", h.PublishPost)
	r.POST("/posts/:id/unpublish", h.UnpublishPost)

	for kind, svc := range h.terms {
		grp := r.Group("/" + kind.Plural())
		grp.GET("", h.ListTerms(svc))
		grp.POST("", h.CreateTerm(svc))
		grp.GET("/:id", h.ShowTerm(svc))
		grp.POST("/:id", h.UpdateTerm(svc))
		grp.POST("/:id/delete", h.DeleteTerm(svc))
	}
}

// Root handles GET /admin
func (h *AdminHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, auth.DashboardPath)
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dash, err := h.blog.Dashboard(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to load dashboard")
		return
	}
	renderPage(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"Title":  "Dashboard",
		"Stats":  dash.Stats,
		"Recent": dash.Recent,
	})
}

// ListPosts handles GET /admin/posts
func (h *AdminHandler) ListPosts(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to list posts")
		return
	}
	renderPage(c, http.StatusOK, "admin_posts.html", gin.H{"Title": "Posts", "Posts": posts})
}

// NewPost handles GET /admin/posts/new
func (h *AdminHandler) NewPost(c *gin.Context) {
	h.renderPostForm(c, http.StatusOK, nil, validator.PostInput{Status: string(domain.PostStatusDraft)}, nil)
}

// EditPost handles GET /admin/posts/:id/edit
func (h *AdminHandler) EditPost(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "")
		return
	}
	ctx := c.Request.Context()

	post, err := h.posts.Get(ctx, id)
	if err != nil {
		h.fail(c, err, "Failed to load post")
		return
	}
	categoryIDs, err := h.posts.SelectedTermIDs(ctx, id, domain.TermCategory)
	if err != nil {
		serverError(c, err, "Failed to load post categories")
		return
	}
	tagIDs, err := h.posts.SelectedTermIDs(ctx, id, domain.TermTag)
	if err != nil {
		serverError(c, err, "Failed to load post tags")
		return
	}

	form := validator.PostInput{
		Title:       post.Title,
		Slug:        post.Slug,
		Content:     post.Content,
		Status:      string(post.Status),
		PublishedAt: post.PublishedAt,
		CategoryIDs: categoryIDs,
		TagIDs:      tagIDs,
	}
	if post.Excerpt != nil {
		form.Excerpt = *post.Excerpt
	}
	h.renderPostForm(c, http.StatusOK, post, form, nil)
}

// CreatePost handles POST /admin/posts
func (h *AdminHandler) CreatePost(c *gin.Context) {
	var in validator.PostInput
	if err := c.ShouldBind(&in); err != nil {
		h.postFormFailure(c, nil, in, actionFailure{status: http.StatusBadRequest, banner: msgInvalidForm})
		return
	}

	post, err := h.posts.Create(c.Request.Context(), auth.CurrentUser(c), in)
	if err != nil {
		h.postActionError(c, nil, in, err)
		return
	}
	if wantsJSON(c) {
		c.JSON(http.StatusCreated, ActionResult{Success: true, Post: post})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/posts")
}

// UpdatePost handles POST /admin/posts/:id
func (h *AdminHandler) UpdatePost(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "")
		return
	}
	current := &domain.Post{ID: id}

	var in validator.PostInput
	if err := c.ShouldBind(&in); err != nil {
		h.postFormFailure(c, current, in, actionFailure{status: http.StatusBadRequest, banner: msgInvalidForm})
		return
	}

	post, err := h.posts.Update(c.Request.Context(), auth.CurrentUser(c), id, in)
	if err != nil {
		h.postActionError(c, current, in, err)
		return
	}
	if wantsJSON(c) {
		c.JSON(http.StatusOK, ActionResult{Success: true, Post: post})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/posts")
}

// DeletePost handles POST /admin/posts/:id/delete
func (h *AdminHandler) DeletePost(c *gin.Context) {
	h.postCommand(c, func(ctx context.Context, actor *domain.User, id int64) (*domain.Post, error) {
		return nil, h.posts.Delete(ctx, actor, id)
	})
}

// PublishPost handles POST /admin/posts/:id/publish
func (h *AdminHandler) PublishPost(c *gin.Context) {
	h.postCommand(c, h.posts.Publish)
}

// UnpublishPost handles POST /admin/posts/:id/unpublish
func (h *AdminHandler) UnpublishPost(c *gin.Context) {
	h.postCommand(c, h.posts.Unpublish)
}

// postCommand runs a form-less post action and returns to the list.
func (h *AdminHandler) postCommand(c *gin.Context, run func(context.Context, *domain.User, int64) (*domain.Post, error)) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "")
		return
	}

	post, err := run(c.Request.Context(), auth.CurrentUser(c), id)
	if err != nil {
		h.fail(c, err, "Post action failed")
		return
	}
	if wantsJSON(c) {
		c.JSON(http.StatusOK, ActionResult{Success: true, Post: post})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/posts")
}

// postActionError shows a failed create or update.
func (h *AdminHandler) postActionError(c *gin.Context, current *domain.Post, in validator.PostInput, err error) {
	f, ok := classify(err)
	if !ok || f.status == http.StatusNotFound || f.status == http.StatusUnauthorized {
		h.fail(c, err, "Failed to save post")
		return
	}
	h.postFormFailure(c, current, in, f)
}

func (h *AdminHandler) postFormFailure(c *gin.Context, current *domain.Post, in validator.PostInput, f actionFailure) {
	if wantsJSON(c) {
		failureJSON(c, f)
		return
	}
	// Keep the submitted date in the re-rendered form.
	_ = in.ResolvePublishedAt(h.loc)
	h.renderPostForm(c, f.status, current, in, &f)
}

func (h *AdminHandler) renderPostForm(c *gin.Context, status int, post *domain.Post, form validator.PostInput, f *actionFailure) {
	ctx := c.Request.Context()
	categories, err := h.terms[domain.TermCategory].List(ctx)
	if err != nil {
		serverError(c, err, "Failed to list categories")
		return
	}
	tags, err := h.terms[domain.TermTag].List(ctx)
	if err != nil {
		serverError(c, err, "Failed to list tags")
		return
	}

	data := gin.H{
		"Title":      "New post",
		"Form":       form,
		"Categories": categories,
		"Tags":       tags,
		"Action":     "/admin/posts",
	}
	if post != nil {
		data["Title"] = "Edit post"
		data["Post"] = post
		data["Action"] = fmt.Sprintf("/admin/posts/%d", post.ID)
	}
	if f != nil {
		data["Banner"] = f.banner
		if f.fields != nil {
			data["Errors"] = f.fields
		}
	}
	renderPage(c, status, "admin_post_form.html", data)
}

// fail reports an action error that has no form to go back to.
func (h *AdminHandler) fail(c *gin.Context, err error, msg string) {
	f, ok := classify(err)
	if !ok {
		serverError(c, err, msg)
		return
	}
	if wantsJSON(c) {
		failureJSON(c, f)
		return
	}
	switch f.status {
	case http.StatusUnauthorized:
		c.Redirect(http.StatusSeeOther, auth.LoginPath)
	case http.StatusNotFound:
		notFound(c, "")
	default:
		renderPage(c, f.status, "error.html", gin.H{"Title": "Error", "Message": f.banner})
	}
}

// ListTerms returns the handler for GET /admin/{kind}
func (h *AdminHandler) ListTerms(svc service.TermServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.renderTermList(c, svc, http.StatusOK, validator.TermInput{}, nil)
	}
}

// CreateTerm returns the handler for POST /admin/{kind}
func (h *AdminHandler) CreateTerm(svc service.TermServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in validator.TermInput
		if err := c.ShouldBind(&in); err != nil {
			h.termListFailure(c, svc, in, actionFailure{status: http.StatusBadRequest, banner: msgInvalidForm})
			return
		}

		term, err := svc.Create(c.Request.Context(), auth.CurrentUser(c), in)
		if err != nil {
			f, ok := classify(err)
			if !ok || f.status == http.StatusUnauthorized {
				h.fail(c, err, "Failed to create term")
				return
			}
			h.termListFailure(c, svc, in, f)
			return
		}
		if wantsJSON(c) {
			c.JSON(http.StatusCreated, ActionResult{Success: true, Term: term})
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/"+svc.Kind().Plural())
	}
}

func (h *AdminHandler) termListFailure(c *gin.Context, svc service.TermServiceInterface, in validator.TermInput, f actionFailure) {
	if wantsJSON(c) {
		failureJSON(c, f)
		return
	}
	h.renderTermList(c, svc, f.status, in, &f)
}

func (h *AdminHandler) renderTermList(c *gin.Context, svc service.TermServiceInterface, status int, form validator.TermInput, f *actionFailure) {
	terms, err := svc.List(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to list terms")
		return
	}
	data := gin.H{
		"Title": termsTitle(svc.Kind()),
		"Kind":  svc.Kind(),
		"Terms": terms,
		"Form":  form,
	}
	if f != nil {
		data["Banner"] = f.banner
		if f.fields != nil {
			data["Errors"] = f.fields
		}
	}
	renderPage(c, status, "admin_terms.html", data)
}

// ShowTerm returns the handler for GET /admin/{kind}/:id
func (h *AdminHandler) ShowTerm(svc service.TermServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			notFound(c, "")
			return
		}
		h.renderTermDetail(c, svc, id, queryPage(c), http.StatusOK, nil, nil)
	}
}

// UpdateTerm returns the handler for POST /admin/{kind}/:id
func (h *AdminHandler) UpdateTerm(svc service.TermServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			notFound(c, "")
			return
		}

		var in validator.TermInput
		if err := c.ShouldBind(&in); err != nil {
			h.termDetailFailure(c, svc, id, in, actionFailure{status: http.StatusBadRequest, banner: msgInvalidForm})
			return
		}

		term, err := svc.Update(c.Request.Context(), auth.CurrentUser(c), id, in)
		if err != nil {
			f, ok := classify(err)
			if !ok || f.status == http.StatusNotFound || f.status == http.StatusUnauthorized {
				h.fail(c, err, "Failed to update term")
				return
			}
			h.termDetailFailure(c, svc, id, in, f)
			return
		}
		if wantsJSON(c) {
			c.JSON(http.StatusOK, ActionResult{Success: true, Term: term})
			return
		}
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/%s/%d", svc.Kind().Plural(), id))
	}
}

func (h *AdminHandler) termDetailFailure(c *gin.Context, svc service.TermServiceInterface, id int64, in validator.TermInput, f actionFailure) {
	if wantsJSON(c) {
		failureJSON(c, f)
		return
	}
	h.renderTermDetail(c, svc, id, 1, f.status, &in, &f)
}

// renderTermDetail shows the term with one page of its posts. form
// overrides the stored values when re-rendering a failed update.
func (h *AdminHandler) renderTermDetail(c *gin.Context, svc service.TermServiceInterface, id int64, page, status int, form *validator.TermInput, f *actionFailure) {
	result, err := svc.GetWithPosts(c.Request.Context(), id, page, service.DefaultTermPostsPerPage)
	if err != nil {
		h.fail(c, err, "Failed to load term")
		return
	}

	if form == nil {
		form = &validator.TermInput{Name: result.Term.Name, Slug: result.Term.Slug}
	}
	basePath := fmt.Sprintf("/admin/%s/%d", svc.Kind().Plural(), id)
	data := gin.H{
		"Title":      result.Term.Name,
		"Term":       result.Term,
		"Posts":      result.Posts,
		"TotalCount": result.TotalCount,
		"Pagination": render.NewPagination(basePath, result.Page, result.TotalPages),
		"Form":       form,
	}
	if f != nil {
		data["Banner"] = f.banner
		if f.fields != nil {
			data["Errors"] = f.fields
		}
	}
	renderPage(c, status, "admin_term.html", data)
}

// DeleteTerm returns the handler for POST /admin/{kind}/:id/delete
func (h *AdminHandler) DeleteTerm(svc service.TermServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			notFound(c, "")
			return
		}
		if err := svc.Delete(c.Request.Context(), auth.CurrentUser(c), id); err != nil {
			h.fail(c, err, "Failed to delete term")
			return
		}
		if wantsJSON(c) {
			c.JSON(http.StatusOK, ActionResult{Success: true})
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/"+svc.Kind().Plural())
	}
}

func termsTitle(kind domain.TermKind) string {
	if kind == domain.TermCategory {
		return "Categories"
	}
	return "Tags"
}
