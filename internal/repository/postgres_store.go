package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polidog/web/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PostgresStore implements Store on a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
	q    querier
}

// NewPostgresStore creates a new PostgresStore. The pool is owned by
// the caller until Close is called.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool, q: pool}
}

func (s *PostgresStore) Users() UserRepository       { return &PostgresUserRepository{q: s.q} }
func (s *PostgresStore) Sessions() SessionRepository { return &PostgresSessionRepository{q: s.q} }
func (s *PostgresStore) Posts() PostRepository       { return &PostgresPostRepository{q: s.q} }

func (s *PostgresStore) Terms(kind domain.TermKind) TermRepository {
	return &PostgresTermRepository{q: s.q, kind: kind, tbl: tablesFor(kind)}
}

// WithTransaction runs fn in a transaction. Nested calls use savepoints.
func (s *PostgresStore) WithTransaction(ctx context.Context, fn func(tx Store) error) error {
	tx, err := s.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&PostgresStore{pool: s.pool, q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Pool exposes the underlying pool for metrics collection.
func (s *PostgresStore) Pool() *pgxpool.Pool {
	return s.pool
}

// termTables names the storage of one term kind.
type termTables struct {
	table  string
	join   string
	column string
}

func tablesFor(kind domain.TermKind) termTables {
	if kind == domain.TermTag {
		return termTables{table: "tags", join: "post_tags", column: "tag_id"}
	}
	return termTables{table: "categories", join: "post_categories", column: "category_id"}
}

// translatePgError maps unique violations to domain errors.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "email"):
			return domain.ErrDuplicateEmail
		case strings.Contains(pgErr.ConstraintName, "slug"):
			return domain.ErrDuplicateSlug
		}
	}
	return err
}

const postColumns = `p.id, p.title, p.slug, p.content, p.excerpt, p.status, p.author_id,
	p.published_at, p.created_at, p.updated_at`

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	var status string
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &status, &p.AuthorID,
		&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Status = domain.PostStatus(status)
	return &p, nil
}

func collectPosts(rows pgx.Rows) ([]domain.Post, error) {
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

// limitClause renders LIMIT/OFFSET; a zero limit means unbounded.
func limitClause(limit, offset int) string {
	var b strings.Builder
	if limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", limit)
	}
	if offset > 0 {
		fmt.Fprintf(&b, " OFFSET %d", offset)
	}
	return b.String()
}
