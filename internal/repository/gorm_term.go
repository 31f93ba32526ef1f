package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/polidog/web/internal/domain"
)

// GormTermRepository implements TermRepository for one kind using gorm.
type GormTermRepository struct {
	db   *gorm.DB
	kind domain.TermKind
	tbl  termTables
}

func (r *GormTermRepository) Kind() domain.TermKind { return r.kind }

func (r *GormTermRepository) table(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.tbl.table)
}

func (r *GormTermRepository) List(ctx context.Context) ([]domain.Term, error) {
	var rows []termRow
	if err := r.table(ctx).Order("name, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.tbl.table, err)
	}
	terms := make([]domain.Term, 0, len(rows))
	for _, row := range rows {
		terms = append(terms, termFromRow(row, r.kind))
	}
	return terms, nil
}

func (r *GormTermRepository) get(ctx context.Context, query string, arg any) (*domain.Term, error) {
	var row termRow
	err := r.table(ctx).Where(query, arg).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.kind, err)
	}
	t := termFromRow(row, r.kind)
	return &t, nil
}

func (r *GormTermRepository) GetByID(ctx context.Context, id int64) (*domain.Term, error) {
	return r.get(ctx, "id = ?", id)
}

func (r *GormTermRepository) GetBySlug(ctx context.Context, slug string) (*domain.Term, error) {
	return r.get(ctx, "slug = ?", slug)
}

func (r *GormTermRepository) Create(ctx context.Context, term *domain.Term) error {
	term.Kind = r.kind
	stampTimes(&term.CreatedAt, &term.UpdatedAt)
	row := termRow{
		Name:      term.Name,
		Slug:      term.Slug,
		CreatedAt: utc(term.CreatedAt),
		UpdatedAt: utc(term.UpdatedAt),
	}
	if err := r.table(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert %s: %w", r.kind, translateGormError(err, domain.ErrDuplicateSlug))
	}
	term.ID = row.ID
	return nil
}

func (r *GormTermRepository) Update(ctx context.Context, term *domain.Term) error {
	term.Kind = r.kind
	term.UpdatedAt = time.Now()
	res := r.table(ctx).Where("id = ?", term.ID).Updates(map[string]any{
		"name":       term.Name,
		"slug":       term.Slug,
		"updated_at": utc(term.UpdatedAt),
	})
	if res.Error != nil {
		return fmt.Errorf("update %s: %w", r.kind, translateGormError(res.Error, domain.ErrDuplicateSlug))
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormTermRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Exec("DELETE FROM "+r.tbl.table+" WHERE id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete %s: %w", r.kind, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormTermRepository) GetOrCreate(ctx context.Context, name, slug string) (*domain.Term, error) {
	now := utc(time.Now())
	row := termRow{Name: name, Slug: slug, CreatedAt: now, UpdatedAt: now}
	err := r.table(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "slug"}}, DoNothing: true}).
		Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("upsert %s: %w", r.kind, err)
	}
	return r.GetBySlug(ctx, slug)
}

func (r *GormTermRepository) DetachAll(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Exec("DELETE FROM "+r.tbl.join+" WHERE "+r.tbl.column+" = ?", id).Error
	if err != nil {
		return fmt.Errorf("detach %s: %w", r.kind, err)
	}
	return nil
}

func (r *GormTermRepository) ListPosts(ctx context.Context, id int64, q PostQuery) ([]domain.Post, int, error) {
	base := func() *gorm.DB {
		db := r.db.WithContext(ctx).Table("posts AS p").
			Joins("JOIN "+r.tbl.join+" j ON j.post_id = p.id").
			Where("j."+r.tbl.column+" = ?", id)
		if q.PublishedOnly {
			db = db.Where("p.status = ?", string(domain.PostStatusPublished))
		}
		return db
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count %s posts: %w", r.kind, err)
	}

	order := "p.created_at DESC, p.id DESC"
	if q.PublishedOnly {
		order = "p.published_at DESC, p.id DESC"
	}
	var ms []postModel
	err := paginate(base().Select("p.*").Order(order), q.Limit, q.Offset).Scan(&ms).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list %s posts: %w", r.kind, err)
	}
	return postsFromModels(ms), int(total), nil
}
