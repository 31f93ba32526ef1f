package cache

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevalidate(t *testing.T) {
	pc := NewPageCache(DefaultSize)
	for _, key := range []string{"/", "/blog", "/blog?page=2", "/blog/2024/03/hello", "/blog/tag/go?page=1", "/login"} {
		pc.Set(key, &Page{Body: []byte(key)})
	}

	pc.Revalidate("/blog")
	_, ok := pc.Get("/blog")
	assert.False(t, ok)
	_, ok = pc.Get("/blog?page=2")
	assert.False(t, ok, "query variants share the path")
	_, ok = pc.Get("/blog/2024/03/hello")
	assert.True(t, ok, "exact path must not drop children")

	pc.Revalidate("/blog/*")
	_, ok = pc.Get("/blog/2024/03/hello")
	assert.False(t, ok)
	_, ok = pc.Get("/blog/tag/go?page=1")
	assert.False(t, ok)

	assert.Equal(t, 2, pc.Len())
	pc.Revalidate("/*")
	assert.Equal(t, 0, pc.Len())
}

func TestKey(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"/blog", "/blog"},
		{"/blog?page=1", "/blog"},
		{"/blog?page=2", "/blog?page=2"},
		{"/blog?page=02&utm_source=x", "/blog?page=2"},
		{"/blog?page=0", "/blog"},
		{"/blog?page=-3", "/blog"},
		{"/blog?page=abc", "/blog"},
		{"/blog?cb=12345", "/blog"},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			u, err := url.Parse(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Key(u))
		})
	}
}

func TestPageCacheBounded(t *testing.T) {
	pc := NewPageCache(3)
	for i := 0; i < 10; i++ {
		pc.Set(fmt.Sprintf("/blog/post-%d", i), &Page{})
	}
	assert.Equal(t, 3, pc.Len())
	_, ok := pc.Get("/blog/post-0")
	assert.False(t, ok, "oldest entry is dropped")
	_, ok = pc.Get("/blog/post-9")
	assert.True(t, ok)


	fallback := NewPageCache(0)
	for i := 0; i < DefaultSize+5; i++ {
		fallback.Set(fmt.Sprintf("/p/%d", i), &Page{})
	}
	assert.Equal(t, DefaultSize, fallback.Len())
}

func TestNop(t *testing.T) {
	var inv Invalidator = Nop{}
	assert.NotPanics(t, func() { inv.Revalidate("/*") })
}

func newRouter(pc *PageCache, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(pc, "session"))
	router.GET("/page", func(c *gin.Context) {
		*calls++
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<p>hello</p>"))
	})
	router.GET("/missing", func(c *gin.Context) {
		*calls++
		c.String(http.StatusNotFound, "nope")
	})
	router.POST("/page", func(c *gin.Context) {
		*calls++
		c.Status(http.StatusNoContent)
	})
	return router
}

func serve(router *gin.Engine, method, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMiddleware(t *testing.T) {
	t.Run("caches 200 GET responses", func(t *testing.T) {
		pc := NewPageCache(DefaultSize)
		calls := 0
		router := newRouter(pc, &calls)

		first := serve(router, http.MethodGet, "/page")
		require.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, "MISS", first.Header().Get(HeaderCache))

		second := serve(router, http.MethodGet, "/page")
		require.Equal(t, http.StatusOK, second.Code)
		assert.Equal(t, "HIT", second.Header().Get(HeaderCache))
		assert.Equal(t, "<p>hello</p>", second.Body.String())
		assert.Equal(t, "text/html; charset=utf-8", second.Header().Get("Content-Type"))
		assert.Equal(t, 1, calls)
	})

	t.Run("query strings share one entry", func(t *testing.T) {
		pc := NewPageCache(DefaultSize)
		calls := 0
		router := newRouter(pc, &calls)

		serve(router, http.MethodGet, "/page")
		for i := 0; i < 50; i++ {
			w := serve(router, http.MethodGet, fmt.Sprintf("/page?cb=%d", i))
			assert.Equal(t, "HIT", w.Header().Get(HeaderCache))
		}
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, pc.Len())
	})

	t.Run("revalidation forces a render", func(t *testing.T) {
		pc := NewPageCache(DefaultSize)
		calls := 0
		router := newRouter(pc, &calls)

		serve(router, http.MethodGet, "/page")
		pc.Revalidate("/page")
		serve(router, http.MethodGet, "/page")
		assert.Equal(t, 2, calls)
	})

	t.Run("does not cache errors", func(t *testing.T) {
		pc := NewPageCache(DefaultSize)
		calls := 0
		router := newRouter(pc, &calls)

		serve(router, http.MethodGet, "/missing")
		serve(router, http.MethodGet, "/missing")
		assert.Equal(t, 2, calls)
		assert.Equal(t, 0, pc.Len())
	})

	t.Run("skips non-GET", func(t *testing.T) {
		pc := NewPageCache(DefaultSize)
		calls := 0
		router := newRouter(pc, &calls)

		serve(router, http.MethodPost, "/page")
		serve(router, http.MethodPost, "/page")
		assert.Equal(t, 2, calls)
	})

	t.Run("bypasses signed-in visitors", func(t *testing.T) {
		pc := NewPageCache(DefaultSize)
		calls := 0
		router := newRouter(pc, &calls)
		cookie := &http.Cookie{Name: "session", Value: "abc"}

		serve(router, http.MethodGet, "/page", cookie)
		assert.Equal(t, 0, pc.Len())

		serve(router, http.MethodGet, "/page")
		w := serve(router, http.MethodGet, "/page", cookie)
		assert.Empty(t, w.Header().Get(HeaderCache))
		assert.Equal(t, 3, calls)
	})
}
