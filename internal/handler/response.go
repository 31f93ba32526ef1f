package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polidog/web/internal/auth"
	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/logger"
	"github.com/polidog/web/internal/middleware"
	"github.com/polidog/web/internal/validator"
)

const (
	msgInvalidForm = "The submitted form could not be read."
	msgFixFields   = "Please fix the highlighted fields."
	msgSlugTaken   = "That slug is already in use."
	msgServerError = "Something went wrong. Please try again later."
)

// ActionResult is the JSON answer to an admin action.
type ActionResult struct {
	Success bool                   `json:"success"`
	Post    *domain.Post           `json:"post,omitempty"`
	Term    *domain.Term           `json:"term,omitempty"`
	Error   string                 `json:"error,omitempty"`
	Errors  []validator.FieldError `json:"errors,omitempty"`
}

// wantsJSON reports whether the client prefers JSON over HTML.
func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// renderPage renders a template with the values every page shares.
func renderPage(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["User"]; !ok {
		data["User"] = auth.CurrentUser(c)
	}
	data["RequestID"] = middleware.GetRequestID(c)
	c.HTML(status, name, data)
}

func notFound(c *gin.Context, message string) {
	renderPage(c, http.StatusNotFound, "404.html", gin.H{"Title": "Not found", "Message": message})
}

// serverError logs err and renders the generic error page.
func serverError(c *gin.Context, err error, msg string) {
	logger.ErrorContext(c.Request.Context(), msg, "error", err)
	if wantsJSON(c) {
		c.JSON(http.StatusInternalServerError, ActionResult{Error: msgServerError})
		return
	}
	renderPage(c, http.StatusInternalServerError, "error.html", gin.H{"Title": "Error", "Message": msgServerError})
}

// actionFailure describes how a failed action is shown to the user.
type actionFailure struct {
	status int
	banner string
	fields *validator.FieldErrors
}

// classify maps business-rule errors to a response. ok is false for
// unexpected errors, which callers report as a server error.
func classify(err error) (f actionFailure, ok bool) {
	if fe, isField := validator.AsFieldErrors(err); isField {
		return actionFailure{status: http.StatusUnprocessableEntity, banner: msgFixFields, fields: fe}, true
	}
	switch {
	case errors.Is(err, domain.ErrDuplicateSlug):
		fe := (&validator.FieldErrors{}).Add("slug", "slug_taken")
		return actionFailure{status: http.StatusConflict, banner: msgSlugTaken, fields: fe}, true
	case errors.Is(err, domain.ErrNotFound):
		return actionFailure{status: http.StatusNotFound, banner: "Not found."}, true
	case errors.Is(err, domain.ErrUnauthenticated):
		return actionFailure{status: http.StatusUnauthorized, banner: "Please sign in."}, true
	}
	return actionFailure{}, false
}

// failureJSON writes the JSON form of a failed action.
func failureJSON(c *gin.Context, f actionFailure) {
	res := ActionResult{Error: f.banner}
	if f.fields != nil {
		res.Errors = f.fields.Errors
	}
	c.JSON(f.status, res)
}

// paramID parses the :id route parameter.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// queryPage reads ?page=, defaulting to 1.
func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
