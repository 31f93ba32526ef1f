// Package importer loads a tree of markdown files with front matter into
// posts, categories and tags.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/logger"
	"github.com/polidog/web/internal/metrics"
	"github.com/polidog/web/internal/repository"
	"github.com/polidog/web/internal/slug"
)

const (
	// ExcerptLength is the number of runes kept for the excerpt.
	ExcerptLength = 200

	defaultTitle = "Untitled"
)

var (
	ErrDirNotFound    = errors.New("import directory not found")
	ErrAuthorRequired = errors.New("author id is required")
)

// Outcome is the result of importing one file.
type Outcome string

const (
	OutcomeImported Outcome = "imported"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeFailed   Outcome = "failed"
)

// FileError records why a file could not be imported.
type FileError struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Result summarizes an import run.
type Result struct {
	Total    int         `json:"total"`
	Imported int         `json:"imported"`
	Skipped  int         `json:"skipped"`
	Failed   int         `json:"failed"`
	Errors   []FileError `json:"errors,omitempty"`
}

// Document is a parsed markdown file ready to be stored.
type Document struct {
	Slug        string
	Title       string
	Content     string
	Excerpt     string
	Draft       bool
	PublishedAt time.Time
	Categories  []string
	Tags        []string
}

// Importer writes Documents through a Store.
type Importer struct {
	store repository.Store
	loc   *time.Location
	out   io.Writer
	now   func() time.Time
}

// New creates an Importer. Progress lines go to out; loc is used for
// front matter dates without an offset.
func New(store repository.Store, loc *time.Location, out io.Writer) *Importer {
	if loc == nil {
		loc = time.UTC
	}
	if out == nil {
		out = io.Discard
	}
	return &Importer{store: store, loc: loc, out: out, now: time.Now}
}

// SlugFromPath derives the post slug from the file path relative to
// root: yyyy/mm/name.md becomes yyyy-mm-name, anything shallower is
// just the file name. A name with no ASCII equivalent gets a stable
// hashed slug instead.
func SlugFromPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	name := strings.TrimSuffix(parts[len(parts)-1], filepath.Ext(parts[len(parts)-1]))

	s := slug.OrHash(name, "post")
	if len(parts) >= 3 {
		if prefix := slug.Make(parts[0] + "-" + parts[1]); prefix != "" {
			return prefix + "-" + s
		}
	}
	return s
}

// Excerpt returns the first ExcerptLength runes of the trimmed body with
// newlines flattened, followed by "...".
func Excerpt(body string) string {
	body = strings.TrimSpace(body)
	if utf8.RuneCountInString(body) > ExcerptLength {
		body = string([]rune(body)[:ExcerptLength])
	}
	body = strings.ReplaceAll(body, "\r\n", " ")
	body = strings.ReplaceAll(body, "\n", " ")
	return body + "..."
}

// Parse turns the contents of path into a Document. A missing title
// becomes "Untitled" and a missing date becomes the current time.
func (im *Importer) Parse(root, path string, src []byte) (*Document, error) {
	fm, body, err := ParseFrontMatter(src, im.loc)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Slug:       SlugFromPath(root, path),
		Title:      fm.Title,
		Content:    body,
		Excerpt:    Excerpt(body),
		Draft:      fm.Draft,
		Categories: fm.Categories,
		Tags:       fm.Tags,
	}
	if doc.Slug == "" {
		return nil, fmt.Errorf("no usable slug in %s", filepath.Base(path))
	}
	if doc.Title == "" {
		doc.Title = defaultTitle
	}
	if fm.Date != nil {
		doc.PublishedAt = fm.Date.UTC()
	} else {
		doc.PublishedAt = im.now().UTC()
	}
	return doc, nil
}

// Store inserts doc unless a post with its slug exists. The post and
// its term links are written in one transaction.
func (im *Importer) Store(ctx context.Context, authorID string, doc *Document) (Outcome, error) {
	_, err := im.store.Posts().GetBySlug(ctx, doc.Slug)
	if err == nil {
		return OutcomeSkipped, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return OutcomeFailed, fmt.Errorf("look up slug: %w", err)
	}

	err = im.store.WithTransaction(ctx, func(tx repository.Store) error {
		publishedAt := doc.PublishedAt
		excerpt := doc.Excerpt
		post := &domain.Post{
			Title:     doc.Title,
			Slug:      doc.Slug,
			Content:   doc.Content,
			Excerpt:   &excerpt,
			Status:    domain.PostStatusPublished,
			AuthorID:  authorID,
			CreatedAt: publishedAt,
		}
		if doc.Draft {
			post.Status = domain.PostStatusDraft
		} else {
			post.PublishedAt = &publishedAt
		}
		if err := tx.Posts().Create(ctx, post); err != nil {
			return err
		}

		if err := attachTerms(ctx, tx, post.ID, domain.TermCategory, doc.Categories); err != nil {
			return err
		}
		return attachTerms(ctx, tx, post.ID, domain.TermTag, doc.Tags)
	})
	if errors.Is(err, domain.ErrDuplicateSlug) {
		return OutcomeSkipped, nil
	}
	if err != nil {
		return OutcomeFailed, err
	}
	return OutcomeImported, nil
}

// attachTerms get-or-creates each named term and links it to the post.
func attachTerms(ctx context.Context, tx repository.Store, postID int64, kind domain.TermKind, names []string) error {
	if len(names) == 0 {
		return nil
	}
	terms := tx.Terms(kind)
	seen := make(map[int64]struct{}, len(names))
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		term, err := terms.GetOrCreate(ctx, name, slug.ForTerm(name))
		if err != nil {
			return err
		}
		if _, ok := seen[term.ID]; ok {
			continue
		}
		seen[term.ID] = struct{}{}
		ids = append(ids, term.ID)
	}
	return tx.Posts().AddTerms(ctx, postID, kind, ids)
}

// ImportDir imports every *.md file below dir as authorID. Failures of
// single files are counted and reported in the Result; the returned
// error is reserved for unusable arguments.
func (im *Importer) ImportDir(ctx context.Context, authorID, dir string) (*Result, error) {
	if strings.TrimSpace(authorID) == "" {
		return nil, ErrAuthorRequired
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}
	if _, err := im.store.Users().GetByID(ctx, authorID); err != nil {
		return nil, fmt.Errorf("load author %s: %w", authorID, err)
	}

	files, err := markdownFiles(dir)
	if err != nil {
		return nil, err
	}

	result := &Result{Total: len(files)}
	fmt.Fprintf(im.out, "Found %d posts\n", len(files))

	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		outcome, slugOrReason := im.importFile(ctx, authorID, dir, path)
		metrics.ImportedPostsTotal.WithLabelValues(string(outcome)).Inc()
		switch outcome {
		case OutcomeImported:
			result.Imported++
		case OutcomeSkipped:
			result.Skipped++
		case OutcomeFailed:
			result.Failed++
			result.Errors = append(result.Errors, FileError{Path: path, Reason: slugOrReason})
		}
		fmt.Fprintf(im.out, "[%d/%d] %s: %s\n", i+1, len(files), outcome, slugOrReason)
	}

	logger.InfoContext(ctx, "Import completed",
		"dir", dir,
		"total", result.Total,
		"imported", result.Imported,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, nil
}

// importFile returns the outcome and the slug, or the failure reason.
func (im *Importer) importFile(ctx context.Context, authorID, root, path string) (Outcome, string) {
	src, err := os.ReadFile(path)
	if err != nil {
		return OutcomeFailed, err.Error()
	}
	doc, err := im.Parse(root, path, src)
	if err != nil {
		return OutcomeFailed, err.Error()
	}
	outcome, err := im.Store(ctx, authorID, doc)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to import file", "path", path, "error", err)
		return outcome, err.Error()
	}
	return outcome, doc.Slug
}

func markdownFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".md") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return files, nil
}
