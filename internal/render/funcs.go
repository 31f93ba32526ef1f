package render

import (
	"fmt"
	"html/template"
	"time"

	"github.com/polidog/web/internal/domain"
)

// Links builds public URLs. Year and month are taken from the
// publication date in the blog's time zone.
type Links struct {
	Location *time.Location
}

// PostURL returns /blog/{yyyy}/{mm}/{slug}. Posts without a
// publication date fall back to their creation time.
func (l Links) PostURL(p domain.Post) string {
	ts := p.CreatedAt
	if p.PublishedAt != nil {
		ts = *p.PublishedAt
	}
	return DatedPostPath(ts.In(l.loc()), p.Slug)
}

// DatedPostPath formats the canonical post path for t as given.
func DatedPostPath(t time.Time, slug string) string {
	return fmt.Sprintf("/blog/%04d/%02d/%s", t.Year(), int(t.Month()), slug)
}

// TermURL returns the public listing path of a category or tag.
func TermURL(t domain.Term) string {
	return fmt.Sprintf("/blog/%s/%s", t.Kind, t.Slug)
}

func (l Links) loc() *time.Location {
	if l.Location == nil {
		return time.UTC
	}
	return l.Location
}

// FuncMap returns the helpers available to every template.
func (l Links) FuncMap() template.FuncMap {
	return template.FuncMap{
		"postURL": l.PostURL,
		"termURL": TermURL,
		"date": func(t *time.Time) string {
			if t == nil {
				return "-"
			}
			return t.In(l.loc()).Format("2006-01-02")
		},
		"datetimeLocal": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.In(l.loc()).Format("2006-01-02T15:04")
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"plural": func(k domain.TermKind) string { return k.Plural() },
		"contains": func(ids []int64, id int64) bool {
			for _, v := range ids {
				if v == id {
					return true
				}
			}
			return false
		},
	}
}
