package render

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polidog/web/internal/domain"
)

func numbers(items []PageItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it.Ellipsis {
			out = append(out, "...")
			continue
		}
		s := strconv.Itoa(it.Number)
		if it.Current {
			s = "[" + s + "]"
		}
		out = append(out, s)
	}
	return out
}

func TestPageItems(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []string
	}{
		{name: "single page hidden", current: 1, total: 1, want: nil},
		{name: "no pages hidden", current: 1, total: 0, want: nil},
		{name: "two pages", current: 1, total: 2, want: []string{"[1]", "2"}},
		{name: "three pages middle", current: 2, total: 3, want: []string{"1", "[2]", "3"}},
		{name: "first of ten", current: 1, total: 10, want: []string{"[1]", "2", "...", "10"}},
		{name: "middle of ten", current: 5, total: 10, want: []string{"1", "...", "4", "[5]", "6", "...", "10"}},
		{name: "last of ten", current: 10, total: 10, want: []string{"1", "...", "9", "[10]"}},
		{name: "near start", current: 3, total: 10, want: []string{"1", "2", "[3]", "4", "...", "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := PageItems(tt.current, tt.total)
			if tt.want == nil {
				assert.Nil(t, items)
				return
			}
			assert.Equal(t, tt.want, numbers(items))
		})
	}
}

func TestNewPagination(t *testing.T) {
	assert.Nil(t, NewPagination("/blog/tag/go", 1, 1))

	p := NewPagination("/blog/tag/go", 1, 3)
	require.NotNil(t, p)
	assert.Empty(t, p.PrevURL)
	assert.Equal(t, "/blog/tag/go?page=2", p.NextURL)
	assert.Equal(t, "/blog/tag/go?page=3", p.Items[len(p.Items)-1].URL)

	last := NewPagination("/blog/tag/go", 3, 3)
	require.NotNil(t, last)
	assert.Equal(t, "/blog/tag/go?page=2", last.PrevURL)
	assert.Empty(t, last.NextURL)
}

func TestPostURL(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2020-02-29 20:00 UTC is already March in Tokyo.
	published := time.Date(2020, 2, 29, 20, 0, 0, 0, time.UTC)
	post := domain.Post{Slug: "old-post", PublishedAt: &published}

	assert.Equal(t, "/blog/2020/03/old-post", Links{Location: tokyo}.PostURL(post))
	assert.Equal(t, "/blog/2020/02/old-post", Links{}.PostURL(post))

	draft := domain.Post{Slug: "wip", CreatedAt: time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "/blog/2021/07/wip", Links{}.PostURL(draft))
}

func TestTermURL(t *testing.T) {
	assert.Equal(t, "/blog/category/tech", TermURL(domain.Term{Kind: domain.TermCategory, Slug: "tech"}))
	assert.Equal(t, "/blog/tag/go", TermURL(domain.Term{Kind: domain.TermTag, Slug: "go"}))
}

func TestMarkdownRender(t *testing.T) {
	md := NewMarkdown()

	out, err := md.Render("# Title\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n~~gone~~\n")
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `<h1 id="title">Title</h1>`)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<del>gone</del>")
}

func TestTemplatesExecute(t *testing.T) {
	tmpl, err := Templates(Links{}.FuncMap())
	require.NoError(t, err)

	published := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	excerpt := "short summary"
	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "term.html", map[string]any{
		"Title":      "Go",
		"Term":       domain.Term{Kind: domain.TermTag, Name: "Go", Slug: "go"},
		"Posts":      []domain.Post{{Title: "Hello", Slug: "hello", Excerpt: &excerpt, PublishedAt: &published}},
		"TotalCount": 11,
		"Pagination": NewPagination("/blog/tag/go", 1, 2),
	})
	require.NoError(t, err)

	page := buf.String()
	assert.Contains(t, page, "Tag: Go")
	assert.Contains(t, page, `href="/blog/2024/01/hello"`)
	assert.Contains(t, page, "short summary")
	assert.Contains(t, page, `href="/blog/tag/go?page=2"`)

	for _, name := range []string{"home.html", "blog.html", "post.html", "404.html", "error.html", "login.html",
		"admin_dashboard.html", "admin_posts.html", "admin_post_form.html", "admin_terms.html", "admin_term.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}
