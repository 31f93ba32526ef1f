package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/polidog/web/internal/domain"
)

// PostgresPostRepository implements PostRepository using PostgreSQL.
type PostgresPostRepository struct {
	q querier
}

// Create inserts a post and fills in its generated ID.
func (r *PostgresPostRepository) Create(ctx context.Context, post *domain.Post) error {
	stampTimes(&post.CreatedAt, &post.UpdatedAt)
	err := r.q.QueryRow(ctx, `
		INSERT INTO posts (title, slug, content, excerpt, status, author_id, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, post.Title, post.Slug, post.Content, post.Excerpt, string(post.Status), post.AuthorID,
		post.PublishedAt, post.CreatedAt, post.UpdatedAt).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("insert post: %w", translatePgError(err))
	}
	return nil
}

// Update overwrites every editable column of the post.
func (r *PostgresPostRepository) Update(ctx context.Context, post *domain.Post) error {
	post.UpdatedAt = time.Now()
	tag, err := r.q.Exec(ctx, `
		UPDATE posts
		SET title = $2, slug = $3, content = $4, excerpt = $5, status = $6,
			published_at = $7, updated_at = $8
		WHERE id = $1
	`, post.ID, post.Title, post.Slug, post.Content, post.Excerpt, string(post.Status),
		post.PublishedAt, post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update post: %w", translatePgError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresPostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	p, err := scanPost(r.q.QueryRow(ctx, `SELECT `+postColumns+` FROM posts p WHERE p.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

func (r *PostgresPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	p, err := scanPost(r.q.QueryRow(ctx, `SELECT `+postColumns+` FROM posts p WHERE p.slug = $1`, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post by slug: %w", err)
	}
	return p, nil
}

// Delete removes a post; its join rows go with it.
func (r *PostgresPostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresPostRepository) Publish(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE posts
		SET published_at = CASE
				WHEN status = 'draft' OR published_at IS NULL THEN $2
				ELSE published_at
			END,
			status = 'published',
			updated_at = $2
		WHERE id = $1
	`, id, at)
	if err != nil {
		return fmt.Errorf("publish post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresPostRepository) Unpublish(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE posts SET status = 'draft', published_at = NULL, updated_at = $2 WHERE id = $1
	`, id, time.Now())
	if err != nil {
		return fmt.Errorf("unpublish post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresPostRepository) ListPublished(ctx context.Context, limit int) ([]domain.Post, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+postColumns+` FROM posts p
		WHERE p.status = 'published'
		ORDER BY p.published_at DESC, p.id DESC`+limitClause(limit, 0))
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	return collectPosts(rows)
}

func (r *PostgresPostRepository) List(ctx context.Context, limit int) ([]domain.Post, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+postColumns+` FROM posts p
		ORDER BY p.created_at DESC, p.id DESC`+limitClause(limit, 0))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return collectPosts(rows)
}

func (r *PostgresPostRepository) Stats(ctx context.Context) (domain.PostStats, error) {
	var s domain.PostStats
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'published'),
			COUNT(*) FILTER (WHERE status = 'draft')
		FROM posts
	`).Scan(&s.Total, &s.Published, &s.Draft)
	if err != nil {
		return s, fmt.Errorf("count posts: %w", err)
	}
	return s, nil
}

// AddTerms attaches terms to the post. Existing pairs are left alone.
func (r *PostgresPostRepository) AddTerms(ctx context.Context, postID int64, kind domain.TermKind, termIDs []int64) error {
	ids := uniqueIDs(termIDs)
	if len(ids) == 0 {
		return nil
	}
	t := tablesFor(kind)
	_, err := r.q.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (post_id, %s)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`, t.join, t.column), postID, ids)
	if err != nil {
		return fmt.Errorf("attach %s: %w", t.table, err)
	}
	return nil
}

func (r *PostgresPostRepository) RemoveTerms(ctx context.Context, postID int64, kind domain.TermKind) error {
	t := tablesFor(kind)
	if _, err := r.q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE post_id = $1`, t.join), postID); err != nil {
		return fmt.Errorf("detach %s: %w", t.table, err)
	}
	return nil
}

func (r *PostgresPostRepository) TermIDs(ctx context.Context, postID int64, kind domain.TermKind) ([]int64, error) {
	t := tablesFor(kind)
	rows, err := r.q.Query(ctx, fmt.Sprintf(`SELECT %s FROM %s WHERE post_id = $1 ORDER BY %s`,
		t.column, t.join, t.column), postID)
	if err != nil {
		return nil, fmt.Errorf("list %s ids: %w", t.table, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan %s ids: %w", t.table, err)
	}
	return ids, nil
}

func (r *PostgresPostRepository) Terms(ctx context.Context, postID int64, kind domain.TermKind) ([]domain.Term, error) {
	t := tablesFor(kind)
	rows, err := r.q.Query(ctx, fmt.Sprintf(`
		SELECT t.id, t.name, t.slug, t.created_at, t.updated_at
		FROM %s t
		JOIN %s j ON j.%s = t.id
		WHERE j.post_id = $1
		ORDER BY t.name
	`, t.table, t.join, t.column), postID)
	if err != nil {
		return nil, fmt.Errorf("list post %s: %w", t.table, err)
	}
	return collectTerms(rows, kind)
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func stampTimes(created, updated *time.Time) {
	now := time.Now()
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = *created
	}
}
