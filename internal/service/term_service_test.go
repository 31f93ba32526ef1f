package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/service"
	"github.com/polidog/web/internal/testutil"
	"github.com/polidog/web/internal/validator"
)

func TestTermService_CRUD(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSQLiteStore(t)
	author := testutil.CreateUser(t, store, "author@example.com")
	rc := &recordingCache{}
	svc := service.NewTermService(domain.TermTag, store, validator.NewValidator(), rc)

	assert.Equal(t, domain.TermTag, svc.Kind())

	_, err := svc.Create(ctx, nil, validator.TermInput{Name: "Go", Slug: "go"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = svc.Create(ctx, author, validator.TermInput{Name: " ", Slug: "Bad Slug"})
	fe, ok := validator.AsFieldErrors(err)
	require.True(t, ok)
	assert.True(t, fe.Has("name"))
	assert.True(t, fe.Has("slug"))

	golang, err := svc.Create(ctx, author, validator.TermInput{Name: " Go ", Slug: "go"})
	require.NoError(t, err)
	assert.Equal(t, "Go", golang.Name)
	assert.True(t, rc.has("/admin/tags"))

	_, err = svc.Create(ctx, author, validator.TermInput{Name: "Golang", Slug: "go"})
	assert.ErrorIs(t, err, domain.ErrDuplicateSlug)

	_, err = svc.Create(ctx, author, validator.TermInput{Name: "Database", Slug: "db"})
	require.NoError(t, err)

	terms, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Database", "Go"}, termNames(terms))

	updated, err := svc.Update(ctx, author, golang.ID, validator.TermInput{Name: "Golang", Slug: "golang"})
	require.NoError(t, err)
	assert.Equal(t, "golang", updated.Slug)
	assert.True(t, rc.has(fmt.Sprintf("/admin/tags/%d", golang.ID)))

	got, err := svc.GetBySlug(ctx, "golang")
	require.NoError(t, err)
	assert.Equal(t, golang.ID, got.ID)

	_, err = svc.Update(ctx, author, 999, validator.TermInput{Name: "Ghost", Slug: "ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTermService_DeleteDetachesPosts(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSQLiteStore(t)
	author := testutil.CreateUser(t, store, "author@example.com")
	svc := service.NewTermService(domain.TermCategory, store, validator.NewValidator(), nil)

	term := testutil.CreateTerm(t, store, domain.TermCategory, "Go", "go")
	post := testutil.CreatePost(t, store, author.ID, "linked", testutil.Time(2024, 1, 2))
	require.NoError(t, store.Posts().AddTerms(ctx, post.ID, domain.TermCategory, []int64{term.ID}))

	require.NoError(t, svc.Delete(ctx, author, term.ID))

	_, err := svc.Get(ctx, term.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	ids, err := store.Posts().TermIDs(ctx, post.ID, domain.TermCategory)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = store.Posts().GetByID(ctx, post.ID)
	assert.NoError(t, err, "posts survive term deletion")

	assert.ErrorIs(t, svc.Delete(ctx, author, term.ID), domain.ErrNotFound)
}

func TestTermService_GetWithPosts(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSQLiteStore(t)
	author := testutil.CreateUser(t, store, "author@example.com")
	svc := service.NewTermService(domain.TermCategory, store, validator.NewValidator(), nil)
	term := testutil.CreateTerm(t, store, domain.TermCategory, "Go", "go")

	var ids []int64
	for i := 0; i < 7; i++ {
		var at = testutil.Time(2024, 1, i+1)
		if i%2 == 0 {
			at = nil
		}
		p := testutil.CreatePost(t, store, author.ID, fmt.Sprintf("post-%d", i), at)
		ids = append(ids, p.ID)
	}
	for _, id := range ids {
		require.NoError(t, store.Posts().AddTerms(ctx, id, domain.TermCategory, []int64{term.ID}))
	}

	page, err := svc.GetWithPosts(ctx, term.ID, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, page.TotalCount, "drafts count on the admin page")
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Posts, 3)
	assert.Equal(t, "Go", page.Term.Name)

	page, err = svc.GetWithPosts(ctx, term.ID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, service.DefaultTermPostsPerPage, page.PerPage)
	assert.Len(t, page.Posts, 7)
	assert.Equal(t, 1, page.TotalPages)

	_, err = svc.GetWithPosts(ctx, 999, 1, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
