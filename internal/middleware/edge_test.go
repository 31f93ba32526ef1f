package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/polidog/web/internal/auth"
	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/middleware"
	"github.com/polidog/web/internal/mocks"
)

func newEdgeRouter(posts middleware.PostFinder, sessions middleware.SessionResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Edge(posts, sessions, time.UTC))
	router.GET("/blog/:year/:month/:slug", func(c *gin.Context) {
		c.String(http.StatusOK, "post "+c.Param("slug"))
	})
	router.GET("/admin/posts", func(c *gin.Context) {
		c.String(http.StatusOK, "admin")
	})
	router.GET("/api/users", func(c *gin.Context) {
		c.String(http.StatusOK, "users")
	})
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestEdge_LegacyDatedPath(t *testing.T) {
	posts := mocks.NewMockPostFinder(t)
	sessions := mocks.NewMockSessionResolver(t)
	router := newEdgeRouter(posts, sessions)

	w := get(router, "/2019/05/12/old-post")

	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/blog/2019/05/old-post", w.Header().Get("Location"))
}

func TestEdge_ShortBlogPath(t *testing.T) {
	t.Run("redirects to the dated path", func(t *testing.T) {
		posts := mocks.NewMockPostFinder(t)
		sessions := mocks.NewMockSessionResolver(t)
		published := time.Date(2020, 3, 14, 9, 0, 0, 0, time.UTC)
		posts.EXPECT().GetBySlug(mock.Anything, "old-post").
			Return(&domain.Post{Slug: "old-post", Status: domain.PostStatusPublished, PublishedAt: &published}, nil)

		w := get(newEdgeRouter(posts, sessions), "/blog/old-post")

		assert.Equal(t, http.StatusMovedPermanently, w.Code)
		assert.Equal(t, "/blog/2020/03/old-post", w.Header().Get("Location"))
	})

	t.Run("uses the blog time zone", func(t *testing.T) {
		posts := mocks.NewMockPostFinder(t)
		sessions := mocks.NewMockSessionResolver(t)
		// 2020-03-31 20:00 UTC is already April in Tokyo.
		published := time.Date(2020, 3, 31, 20, 0, 0, 0, time.UTC)
		posts.EXPECT().GetBySlug(mock.Anything, "late").
			Return(&domain.Post{Slug: "late", PublishedAt: &published}, nil)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(middleware.Edge(posts, sessions, time.FixedZone("JST", 9*60*60)))

		w := get(router, "/blog/late")
		assert.Equal(t, "/blog/2020/04/late", w.Header().Get("Location"))
	})

	t.Run("falls through when missing", func(t *testing.T) {
		posts := mocks.NewMockPostFinder(t)
		sessions := mocks.NewMockSessionResolver(t)
		posts.EXPECT().GetBySlug(mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		w := get(newEdgeRouter(posts, sessions), "/blog/ghost")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("falls through for drafts", func(t *testing.T) {
		posts := mocks.NewMockPostFinder(t)
		sessions := mocks.NewMockSessionResolver(t)
		posts.EXPECT().GetBySlug(mock.Anything, "draft").Return(&domain.Post{Slug: "draft"}, nil)

		w := get(newEdgeRouter(posts, sessions), "/blog/draft")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store failure falls through", func(t *testing.T) {
		posts := mocks.NewMockPostFinder(t)
		sessions := mocks.NewMockSessionResolver(t)
		posts.EXPECT().GetBySlug(mock.Anything, "boom").Return(nil, errors.New("db down"))

		w := get(newEdgeRouter(posts, sessions), "/blog/boom")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("dated paths are not looked up", func(t *testing.T) {
		posts := mocks.NewMockPostFinder(t)
		sessions := mocks.NewMockSessionResolver(t)

		w := get(newEdgeRouter(posts, sessions), "/blog/2020/03/old-post")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "post old-post", w.Body.String())
	})
}

func TestEdge_AdminGate(t *testing.T) {
	t.Run("redirects without session", func(t *testing.T) {
		posts := mocks.NewMockPostFinder(t)
		sessions := mocks.NewMockSessionResolver(t)
		sessions.EXPECT().GetSession(mock.Anything, mock.Anything).Return(nil, nil)

		w := get(newEdgeRouter(posts, sessions), "/admin/posts")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("passes with session", func(t *testing.T) {
		posts := mocks.NewMockPostFinder(t)
		sessions := mocks.NewMockSessionResolver(t)
		sessions.EXPECT().GetSession(mock.Anything, mock.Anything).
			Return(&auth.SessionInfo{User: domain.User{ID: "u1"}}, nil)

		w := get(newEdgeRouter(posts, sessions), "/admin/posts")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin", w.Body.String())
	})

	t.Run("lookup failure denies", func(t *testing.T) {
		posts := mocks.NewMockPostFinder(t)
		sessions := mocks.NewMockSessionResolver(t)
		sessions.EXPECT().GetSession(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		w := get(newEdgeRouter(posts, sessions), "/admin/posts")
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("prefix must be a whole segment", func(t *testing.T) {
		posts := mocks.NewMockPostFinder(t)
		sessions := mocks.NewMockSessionResolver(t)

		w := get(newEdgeRouter(posts, sessions), "/administrator")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEdge_SkipsAPI(t *testing.T) {
	posts := mocks.NewMockPostFinder(t)
	sessions := mocks.NewMockSessionResolver(t)

	w := get(newEdgeRouter(posts, sessions), "/api/users")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "users", w.Body.String())
}
