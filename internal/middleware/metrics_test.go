package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/polidog/web/internal/metrics"
)

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("labels by route template", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/blog/:year/:month/:slug", func(c *gin.Context) {
			c.String(http.StatusOK, c.Param("slug"))
		})

		counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/blog/:year/:month/:slug", "200")
		initial := testutil.ToFloat64(counter)
		initialInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/blog/2024/03/first").Code)
		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/blog/2024/04/second").Code)

		assert.Equal(t, initial+2, testutil.ToFloat64(counter))
		assert.Equal(t, initialInFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight), "in-flight should return to initial")
	})

	t.Run("unmatched and redirected paths", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.Use(func(c *gin.Context) {
			if c.Request.URL.Path == "/2019/05/old" {
				c.Redirect(http.StatusMovedPermanently, "/blog/2019/05/old")
				c.Abort()
			}
		})

		unmatched := metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")
		redirected := metrics.HTTPRequestsTotal.WithLabelValues("GET", "edge_redirect", "301")
		initialUnmatched := testutil.ToFloat64(unmatched)
		initialRedirected := testutil.ToFloat64(redirected)

		assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/nope").Code)
		assert.Equal(t, http.StatusMovedPermanently, serve(router, http.MethodGet, "/2019/05/old").Code)

		assert.Equal(t, initialUnmatched+1, testutil.ToFloat64(unmatched))
		assert.Equal(t, initialRedirected+1, testutil.ToFloat64(redirected))
	})

	t.Run("skips probes", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/live", func(c *gin.Context) { c.Status(http.StatusOK) })

		counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/live", "200")
		initial := testutil.ToFloat64(counter)

		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/live").Code)
		assert.Equal(t, initial, testutil.ToFloat64(counter))
	})

	t.Run("admin form posts", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.POST("/admin/posts", func(c *gin.Context) {
			c.Redirect(http.StatusSeeOther, "/admin/posts")
		})

		counter := metrics.HTTPRequestsTotal.WithLabelValues("POST", "/admin/posts", "303")
		initial := testutil.ToFloat64(counter)

		assert.Equal(t, http.StatusSeeOther, serve(router, http.MethodPost, "/admin/posts").Code)
		assert.Equal(t, initial+1, testutil.ToFloat64(counter))
	})
}
