package cache

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polidog/web/internal/metrics"
)

// HeaderCache reports HIT or MISS on cacheable responses.
const HeaderCache = "X-Page-Cache"

// recorder copies the body while it is written to the client.
type recorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *recorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *recorder) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}

// Middleware serves GET requests from pc and stores 200 responses.
// Requests carrying bypassCookie (the session cookie) are never served
// from or written to the cache, since signed-in pages differ.
func Middleware(pc *PageCache, bypassCookie string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		if bypassCookie != "" {
			if _, err := c.Request.Cookie(bypassCookie); err == nil {
				metrics.PageCacheRequests.WithLabelValues("bypass").Inc()
				c.Next()
				return
			}
		}

		key := Key(c.Request.URL)
		if page, ok := pc.Get(key); ok {
			metrics.PageCacheRequests.WithLabelValues("hit").Inc()
			for k, vs := range page.Header {
				for _, v := range vs {
					c.Writer.Header().Add(k, v)
				}
			}
			c.Header(HeaderCache, "HIT")
			c.Data(http.StatusOK, page.Header.Get("Content-Type"), page.Body)
			c.Abort()
			return
		}

		metrics.PageCacheRequests.WithLabelValues("miss").Inc()
		c.Header(HeaderCache, "MISS")
		rec := &recorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		if rec.Status() != http.StatusOK {
			return
		}
		header := http.Header{}
		if ct := rec.Header().Get("Content-Type"); ct != "" {
			header.Set("Content-Type", ct)
		}
		pc.Set(key, &Page{Header: header, Body: bytes.Clone(rec.body.Bytes()), StoredAt: time.Now()})
	}
}
