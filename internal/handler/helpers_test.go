package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/polidog/web/internal/auth"
	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/render"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testUser = domain.User{ID: "user-1", Name: "Author", Email: "author@example.com"}

// newPageRouter returns an engine with the real templates loaded.
func newPageRouter(t *testing.T) *gin.Engine {
	t.Helper()
	tmpl, err := render.Templates(render.Links{Location: time.UTC}.FuncMap())
	require.NoError(t, err)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	return router
}

// signedIn attaches testUser as the session user.
func signedIn(c *gin.Context) {
	auth.SetSession(c, &auth.SessionInfo{User: testUser})
	c.Next()
}

func doRequest(router *gin.Engine, method, path string, form url.Values, header map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func at(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	return &t
}

func publishedPost(id int64, slug string, when *time.Time) domain.Post {
	return domain.Post{
		ID:          id,
		Title:       "Title " + slug,
		Slug:        slug,
		Content:     "# " + slug,
		Status:      domain.PostStatusPublished,
		PublishedAt: when,
		CreatedAt:   *when,
	}
}

var jsonHeader = map[string]string{"Accept": "application/json"}
