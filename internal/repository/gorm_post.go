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

// GormPostRepository implements PostRepository using gorm.
type GormPostRepository struct {
	db *gorm.DB
}

func (r *GormPostRepository) Create(ctx context.Context, post *domain.Post) error {
	stampTimes(&post.CreatedAt, &post.UpdatedAt)
	m := postModel{
		Title:       post.Title,
		Slug:        post.Slug,
		Content:     post.Content,
		Excerpt:     post.Excerpt,
		Status:      string(post.Status),
		AuthorID:    post.AuthorID,
		PublishedAt: utcPtr(post.PublishedAt),
		CreatedAt:   utc(post.CreatedAt),
		UpdatedAt:   utc(post.UpdatedAt),
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return fmt.Errorf("insert post: %w", translateGormError(err, domain.ErrDuplicateSlug))
	}
	post.ID = m.ID
	return nil
}

func (r *GormPostRepository) Update(ctx context.Context, post *domain.Post) error {
	post.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&postModel{}).Where("id = ?", post.ID).Updates(map[string]any{
		"title":        post.Title,
		"slug":         post.Slug,
		"content":      post.Content,
		"excerpt":      post.Excerpt,
		"status":       string(post.Status),
		"published_at": utcPtr(post.PublishedAt),
		"updated_at":   utc(post.UpdatedAt),
	})
	if res.Error != nil {
		return fmt.Errorf("update post: %w", translateGormError(res.Error, domain.ErrDuplicateSlug))
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormPostRepository) get(ctx context.Context, query string, arg any) (*domain.Post, error) {
	var m postModel
	err := r.db.WithContext(ctx).Where(query, arg).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	p := postFromModel(m)
	return &p, nil
}

func (r *GormPostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return r.get(ctx, "id = ?", id)
}

func (r *GormPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return r.get(ctx, "slug = ?", slug)
}

func (r *GormPostRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&postModel{})
	if res.Error != nil {
		return fmt.Errorf("delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormPostRepository) Publish(ctx context.Context, id int64, at time.Time) error {
	at = utc(at)
	res := r.db.WithContext(ctx).Model(&postModel{}).Where("id = ?", id).Updates(map[string]any{
		"published_at": gorm.Expr("CASE WHEN status = 'draft' OR published_at IS NULL THEN ? ELSE published_at END", at),
		"status":       string(domain.PostStatusPublished),
		"updated_at":   at,
	})
	if res.Error != nil {
		return fmt.Errorf("publish post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormPostRepository) Unpublish(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&postModel{}).Where("id = ?", id).Updates(map[string]any{
		"status":       string(domain.PostStatusDraft),
		"published_at": nil,
		"updated_at":   utc(time.Now()),
	})
	if res.Error != nil {
		return fmt.Errorf("unpublish post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormPostRepository) ListPublished(ctx context.Context, limit int) ([]domain.Post, error) {
	var ms []postModel
	q := r.db.WithContext(ctx).Where("status = ?", string(domain.PostStatusPublished)).
		Order("published_at DESC, id DESC")
	if err := paginate(q, limit, 0).Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	return postsFromModels(ms), nil
}

func (r *GormPostRepository) List(ctx context.Context, limit int) ([]domain.Post, error) {
	var ms []postModel
	q := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if err := paginate(q, limit, 0).Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return postsFromModels(ms), nil
}

func (r *GormPostRepository) Stats(ctx context.Context) (domain.PostStats, error) {
	var s domain.PostStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'published' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'draft' THEN 1 ELSE 0 END), 0)
		FROM posts
	`).Row().Scan(&s.Total, &s.Published, &s.Draft)
	if err != nil {
		return s, fmt.Errorf("count posts: %w", err)
	}
	return s, nil
}

func (r *GormPostRepository) AddTerms(ctx context.Context, postID int64, kind domain.TermKind, termIDs []int64) error {
	ids := uniqueIDs(termIDs)
	if len(ids) == 0 {
		return nil
	}
	t := tablesFor(kind)
	q := r.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true})

	var err error
	switch kind {
	case domain.TermTag:
		rows := make([]postTagModel, 0, len(ids))
		for _, id := range ids {
			rows = append(rows, postTagModel{PostID: postID, TagID: id})
		}
		err = q.Create(&rows).Error
	default:
		rows := make([]postCategoryModel, 0, len(ids))
		for _, id := range ids {
			rows = append(rows, postCategoryModel{PostID: postID, CategoryID: id})
		}
		err = q.Create(&rows).Error
	}
	if err != nil {
		return fmt.Errorf("attach %s: %w", t.table, err)
	}
	return nil
}

func (r *GormPostRepository) RemoveTerms(ctx context.Context, postID int64, kind domain.TermKind) error {
	t := tablesFor(kind)
	if err := r.db.WithContext(ctx).Exec("DELETE FROM "+t.join+" WHERE post_id = ?", postID).Error; err != nil {
		return fmt.Errorf("detach %s: %w", t.table, err)
	}
	return nil
}

func (r *GormPostRepository) TermIDs(ctx context.Context, postID int64, kind domain.TermKind) ([]int64, error) {
	t := tablesFor(kind)
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).Table(t.join).Where("post_id = ?", postID).
		Order(t.column).Pluck(t.column, &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list %s ids: %w", t.table, err)
	}
	return ids, nil
}

func (r *GormPostRepository) Terms(ctx context.Context, postID int64, kind domain.TermKind) ([]domain.Term, error) {
	t := tablesFor(kind)
	var rows []termRow
	err := r.db.WithContext(ctx).Table(t.table+" AS t").
		Select("t.id, t.name, t.slug, t.created_at, t.updated_at").
		Joins("JOIN "+t.join+" j ON j."+t.column+" = t.id").
		Where("j.post_id = ?", postID).
		Order("t.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list post %s: %w", t.table, err)
	}
	terms := make([]domain.Term, 0, len(rows))
	for _, row := range rows {
		terms = append(terms, termFromRow(row, kind))
	}
	return terms, nil
}
