package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/polidog/web/internal/domain"
)

// PostgresTermRepository implements TermRepository for one kind using
// PostgreSQL.
type PostgresTermRepository struct {
	q    querier
	kind domain.TermKind
	tbl  termTables
}

func (r *PostgresTermRepository) Kind() domain.TermKind { return r.kind }

func (r *PostgresTermRepository) scan(row pgx.Row) (*domain.Term, error) {
	t := domain.Term{Kind: r.kind}
	if err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func collectTerms(rows pgx.Rows, kind domain.TermKind) ([]domain.Term, error) {
	defer rows.Close()

	terms := make([]domain.Term, 0)
	for rows.Next() {
		t := domain.Term{Kind: kind}
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate terms: %w", err)
	}
	return terms, nil
}

// List returns all terms ordered by name.
func (r *PostgresTermRepository) List(ctx context.Context) ([]domain.Term, error) {
	rows, err := r.q.Query(ctx, fmt.Sprintf(
		`SELECT id, name, slug, created_at, updated_at FROM %s ORDER BY name, id`, r.tbl.table))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.tbl.table, err)
	}
	return collectTerms(rows, r.kind)
}

func (r *PostgresTermRepository) GetByID(ctx context.Context, id int64) (*domain.Term, error) {
	t, err := r.scan(r.q.QueryRow(ctx, fmt.Sprintf(
		`SELECT id, name, slug, created_at, updated_at FROM %s WHERE id = $1`, r.tbl.table), id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.kind, err)
	}
	return t, nil
}

func (r *PostgresTermRepository) GetBySlug(ctx context.Context, slug string) (*domain.Term, error) {
	t, err := r.scan(r.q.QueryRow(ctx, fmt.Sprintf(
		`SELECT id, name, slug, created_at, updated_at FROM %s WHERE slug = $1`, r.tbl.table), slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s by slug: %w", r.kind, err)
	}
	return t, nil
}

func (r *PostgresTermRepository) Create(ctx context.Context, term *domain.Term) error {
	term.Kind = r.kind
	stampTimes(&term.CreatedAt, &term.UpdatedAt)
	err := r.q.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s (name, slug, created_at, updated_at) VALUES ($1, $2, $3, $4)
		RETURNING id
	`, r.tbl.table), term.Name, term.Slug, term.CreatedAt, term.UpdatedAt).Scan(&term.ID)
	if err != nil {
		return fmt.Errorf("insert %s: %w", r.kind, translatePgError(err))
	}
	return nil
}

func (r *PostgresTermRepository) Update(ctx context.Context, term *domain.Term) error {
	term.Kind = r.kind
	term.UpdatedAt = time.Now()
	tag, err := r.q.Exec(ctx, fmt.Sprintf(
		`UPDATE %s SET name = $2, slug = $3, updated_at = $4 WHERE id = $1`, r.tbl.table),
		term.ID, term.Name, term.Slug, term.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.kind, translatePgError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the term row. Join rows must be detached first.
func (r *PostgresTermRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tbl.table), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.kind, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresTermRepository) GetOrCreate(ctx context.Context, name, slug string) (*domain.Term, error) {
	now := time.Now()
	_, err := r.q.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (name, slug, created_at, updated_at) VALUES ($1, $2, $3, $3)
		ON CONFLICT (slug) DO NOTHING
	`, r.tbl.table), name, slug, now)
	if err != nil {
		return nil, fmt.Errorf("upsert %s: %w", r.kind, err)
	}
	return r.GetBySlug(ctx, slug)
}

func (r *PostgresTermRepository) DetachAll(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, r.tbl.join, r.tbl.column), id)
	if err != nil {
		return fmt.Errorf("detach %s: %w", r.kind, err)
	}
	return nil
}

func (r *PostgresTermRepository) ListPosts(ctx context.Context, id int64, q PostQuery) ([]domain.Post, int, error) {
	where := fmt.Sprintf(`JOIN %s j ON j.post_id = p.id WHERE j.%s = $1`, r.tbl.join, r.tbl.column)
	order := ` ORDER BY p.created_at DESC, p.id DESC`
	if q.PublishedOnly {
		where += ` AND p.status = 'published'`
		order = ` ORDER BY p.published_at DESC, p.id DESC`
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM posts p `+where, id).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s posts: %w", r.kind, err)
	}

	rows, err := r.q.Query(ctx, `SELECT `+postColumns+` FROM posts p `+where+order+limitClause(q.Limit, q.Offset), id)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s posts: %w", r.kind, err)
	}
	posts, err := collectPosts(rows)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
