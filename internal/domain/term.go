package domain

import "time"

// TermKind selects which taxonomy a Term belongs to.
type TermKind string

const (
	TermCategory TermKind = "category"
	TermTag      TermKind = "tag"
)

// Term is a category or a tag. Both share the same shape and are
// attached to posts through their own join table.
type Term struct {
	ID        int64     `json:"id"`
	Kind      TermKind  `json:"kind"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Plural returns the URL segment used for the kind in admin routes.
func (k TermKind) Plural() string {
	switch k {
	case TermCategory:
		return "categories"
	case TermTag:
		return "tags"
	}
	return string(k) + "s"
}

// DedupeTermsBySlug drops terms whose slug was already seen, keeping
// the first occurrence.
func DedupeTermsBySlug(terms []Term) []Term {
	seen := make(map[string]struct{}, len(terms))
	out := make([]Term, 0, len(terms))
	for _, t := range terms {
		if _, ok := seen[t.Slug]; ok {
			continue
		}
		seen[t.Slug] = struct{}{}
		out = append(out, t)
	}
	return out
}

// DedupePostsBySlug drops posts whose slug was already seen, keeping
// the first occurrence.
func DedupePostsBySlug(posts []Post) []Post {
	seen := make(map[string]struct{}, len(posts))
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.Slug]; ok {
			continue
		}
		seen[p.Slug] = struct{}{}
		out = append(out, p)
	}
	return out
}
