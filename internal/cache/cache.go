// Package cache keeps rendered public pages in memory until a content
// change revalidates them.
package cache

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/polidog/web/internal/metrics"
)

// Invalidator drops cached pages. A path ending in "*" drops every
// entry whose path starts with the part before it.
type Invalidator interface {
	Revalidate(paths ...string)
}

// Nop is an Invalidator that does nothing, used when caching is off.
type Nop struct{}

// Revalidate implements Invalidator.
func (Nop) Revalidate(...string) {}

// Page is one cached response.
type Page struct {
	Header   http.Header
	Body     []byte
	StoredAt time.Time
}

// DefaultSize is the number of pages kept when no size is configured.
const DefaultSize = 1000

// PageCache maps cache keys (see Key) to rendered pages. It holds at most
// size pages and drops the least recently used one when full.
type PageCache struct {
	pages *lru.Cache[string, *Page]
}

// NewPageCache creates an empty cache holding up to size pages. A size
// below 1 means DefaultSize.
func NewPageCache(size int) *PageCache {
	if size < 1 {
		size = DefaultSize
	}
	pages, err := lru.NewWithEvict(size, func(string, *Page) {
		metrics.PageCacheEvictions.Inc()
	})
	if err != nil {
		panic(err)
	}
	return &PageCache{pages: pages}
}

// Key returns the cache key of u: the path plus the page number when it
// selects a page beyond the first. Other query parameters do not change
// what public pages render, so they share the entry.
func Key(u *url.URL) string {
	if page, err := strconv.Atoi(u.Query().Get("page")); err == nil && page > 1 {
		return u.Path + "?page=" + strconv.Itoa(page)
	}
	return u.Path
}

// Get returns the page stored under key.
func (pc *PageCache) Get(key string) (*Page, bool) {
	return pc.pages.Get(key)
}

// Set stores page under key.
func (pc *PageCache) Set(key string, page *Page) {
	pc.pages.Add(key, page)
	metrics.PageCacheEntries.Set(float64(pc.pages.Len()))
}

// Len returns the number of cached pages.
func (pc *PageCache) Len() int {
	return pc.pages.Len()
}

// Revalidate implements Invalidator. Keys are matched on their path,
// so "/blog" also drops "/blog?page=2".
func (pc *PageCache) Revalidate(paths ...string) {
	for _, key := range pc.pages.Keys() {
		keyPath, _, _ := strings.Cut(key, "?")
		for _, p := range paths {
			if matches(keyPath, p) {
				pc.pages.Remove(key)
				break
			}
		}
	}
	metrics.PageCacheEntries.Set(float64(pc.pages.Len()))
}

func matches(keyPath, pattern string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(keyPath, prefix)
	}
	return keyPath == pattern
}
