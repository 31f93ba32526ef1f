package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/repository"
)

func TestGormStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) repository.Store {
		return SetupSQLiteStore(t)
	})
}

func TestPostgresStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	store := repository.NewPostgresStore(testDB.Pool)
	runStoreSuite(t, func(t *testing.T) repository.Store {
		testDB.TruncateTables(t, allTables...)
		return store
	})
}

func newUser(t *testing.T, ctx context.Context, store repository.Store, email string) *domain.User {
	t.Helper()
	u := &domain.User{ID: uuid.NewString(), Name: "Author", Email: email, EmailVerified: true}
	require.NoError(t, store.Users().Create(ctx, u))
	return u
}

func newPost(t *testing.T, ctx context.Context, store repository.Store, author, slug string, status domain.PostStatus, publishedAt *time.Time) *domain.Post {
	t.Helper()
	p := &domain.Post{
		Title:       "Title " + slug,
		Slug:        slug,
		Content:     "# " + slug,
		Status:      status,
		AuthorID:    author,
		PublishedAt: publishedAt,
	}
	require.NoError(t, store.Posts().Create(ctx, p))
	require.NotZero(t, p.ID)
	return p
}

func at(offset time.Duration) *time.Time {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC).Add(offset)
	return &ts
}

func runStoreSuite(t *testing.T, fresh func(t *testing.T) repository.Store) {
	ctx := context.Background()

	t.Run("users", func(t *testing.T) {
		store := fresh(t)
		u := newUser(t, ctx, store, "a@example.com")

		got, err := store.Users().GetByEmail(ctx, "a@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.True(t, got.EmailVerified)

		err = store.Users().Create(ctx, &domain.User{ID: uuid.NewString(), Name: "Dup", Email: "a@example.com"})
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

		_, err = store.Users().GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrNotFound)

		got.Name = "Renamed"
		require.NoError(t, store.Users().Update(ctx, got))
		reloaded, err := store.Users().GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", reloaded.Name)

		users, err := store.Users().List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)

		require.NoError(t, store.Users().Delete(ctx, u.ID))
		assert.ErrorIs(t, store.Users().Delete(ctx, u.ID), domain.ErrNotFound)
	})

	t.Run("sessions", func(t *testing.T) {
		store := fresh(t)
		u := newUser(t, ctx, store, "s@example.com")
		now := time.Now().UTC().Truncate(time.Second)

		live := &domain.Session{TokenHash: "live", UserID: u.ID, ExpiresAt: now.Add(time.Hour), CreatedAt: now}
		dead := &domain.Session{TokenHash: "dead", UserID: u.ID, ExpiresAt: now.Add(-time.Hour), CreatedAt: now}
		require.NoError(t, store.Sessions().Create(ctx, live))
		require.NoError(t, store.Sessions().Create(ctx, dead))

		n, err := store.Sessions().DeleteExpired(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		got, err := store.Sessions().GetByTokenHash(ctx, "live")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.UserID)
		assert.True(t, got.ExpiresAt.Equal(live.ExpiresAt))

		_, err = store.Sessions().GetByTokenHash(ctx, "dead")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		require.NoError(t, store.Sessions().Delete(ctx, "live"))
		_, err = store.Sessions().GetByTokenHash(ctx, "live")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("post slug is unique", func(t *testing.T) {
		store := fresh(t)
		u := newUser(t, ctx, store, "p@example.com")
		newPost(t, ctx, store, u.ID, "hello", domain.PostStatusDraft, nil)

		err := store.Posts().Create(ctx, &domain.Post{
			Title: "Again", Slug: "hello", Content: "x", Status: domain.PostStatusDraft, AuthorID: u.ID,
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateSlug)
	})

	t.Run("publish and unpublish", func(t *testing.T) {
		store := fresh(t)
		u := newUser(t, ctx, store, "pub@example.com")
		p := newPost(t, ctx, store, u.ID, "draft-post", domain.PostStatusDraft, nil)

		first := *at(0)
		require.NoError(t, store.Posts().Publish(ctx, p.ID, first))
		got, err := store.Posts().GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PostStatusPublished, got.Status)
		require.NotNil(t, got.PublishedAt)
		assert.True(t, got.PublishedAt.Equal(first))

		// Publishing an already published post keeps its date.
		require.NoError(t, store.Posts().Publish(ctx, p.ID, first.Add(time.Hour)))
		got, err = store.Posts().GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, got.PublishedAt.Equal(first))

		require.NoError(t, store.Posts().Unpublish(ctx, p.ID))
		got, err = store.Posts().GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PostStatusDraft, got.Status)
		assert.Nil(t, got.PublishedAt)

		assert.ErrorIs(t, store.Posts().Publish(ctx, p.ID+100, first), domain.ErrNotFound)
	})

	t.Run("listing order and stats", func(t *testing.T) {
		store := fresh(t)
		u := newUser(t, ctx, store, "list@example.com")
		newPost(t, ctx, store, u.ID, "old", domain.PostStatusPublished, at(-48*time.Hour))
		newPost(t, ctx, store, u.ID, "new", domain.PostStatusPublished, at(0))
		newPost(t, ctx, store, u.ID, "wip", domain.PostStatusDraft, nil)

		published, err := store.Posts().ListPublished(ctx, 10)
		require.NoError(t, err)
		require.Len(t, published, 2)
		assert.Equal(t, "new", published[0].Slug)
		assert.Equal(t, "old", published[1].Slug)

		limited, err := store.Posts().ListPublished(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)

		all, err := store.Posts().List(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		stats, err := store.Posts().Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.PostStats{Total: 3, Published: 2, Draft: 1}, stats)
	})

	t.Run("term links", func(t *testing.T) {
		store := fresh(t)
		u := newUser(t, ctx, store, "terms@example.com")
		p := newPost(t, ctx, store, u.ID, "tagged", domain.PostStatusPublished, at(0))
		d := newPost(t, ctx, store, u.ID, "tagged-draft", domain.PostStatusDraft, nil)

		tags := store.Terms(domain.TermTag)
		goTag := &domain.Term{Name: "Go", Slug: "go"}
		webTag := &domain.Term{Name: "Web", Slug: "web"}
		require.NoError(t, tags.Create(ctx, goTag))
		require.NoError(t, tags.Create(ctx, webTag))
		assert.Equal(t, domain.TermTag, goTag.Kind)
		assert.ErrorIs(t, tags.Create(ctx, &domain.Term{Name: "Go again", Slug: "go"}), domain.ErrDuplicateSlug)

		// Duplicates in the input and repeated calls are harmless.
		require.NoError(t, store.Posts().AddTerms(ctx, p.ID, domain.TermTag, []int64{webTag.ID, goTag.ID, goTag.ID}))
		require.NoError(t, store.Posts().AddTerms(ctx, p.ID, domain.TermTag, []int64{goTag.ID}))
		require.NoError(t, store.Posts().AddTerms(ctx, d.ID, domain.TermTag, []int64{goTag.ID}))

		ids, err := store.Posts().TermIDs(ctx, p.ID, domain.TermTag)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{goTag.ID, webTag.ID}, ids)

		attached, err := store.Posts().Terms(ctx, p.ID, domain.TermTag)
		require.NoError(t, err)
		require.Len(t, attached, 2)
		assert.Equal(t, "Go", attached[0].Name)

		cats, err := store.Posts().TermIDs(ctx, p.ID, domain.TermCategory)
		require.NoError(t, err)
		assert.Empty(t, cats)

		posts, total, err := tags.ListPosts(ctx, goTag.ID, repository.PostQuery{PublishedOnly: true, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, posts, 1)
		assert.Equal(t, "tagged", posts[0].Slug)

		_, total, err = tags.ListPosts(ctx, goTag.ID, repository.PostQuery{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, total)

		// Term rows cannot be deleted while posts still reference them.
		assert.Error(t, tags.Delete(ctx, goTag.ID))

		err = store.WithTransaction(ctx, func(tx repository.Store) error {
			if err := tx.Terms(domain.TermTag).DetachAll(ctx, goTag.ID); err != nil {
				return err
			}
			return tx.Terms(domain.TermTag).Delete(ctx, goTag.ID)
		})
		require.NoError(t, err)

		ids, err = store.Posts().TermIDs(ctx, p.ID, domain.TermTag)
		require.NoError(t, err)
		assert.Equal(t, []int64{webTag.ID}, ids)

		// Deleting a post drops its join rows.
		require.NoError(t, store.Posts().Delete(ctx, p.ID))
		_, total, err = tags.ListPosts(ctx, webTag.ID, repository.PostQuery{})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("get or create term", func(t *testing.T) {
		store := fresh(t)
		cats := store.Terms(domain.TermCategory)

		first, err := cats.GetOrCreate(ctx, "Tech", "tech")
		require.NoError(t, err)
		second, err := cats.GetOrCreate(ctx, "Technology", "tech")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Tech", second.Name)

		all, err := cats.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("transaction rolls back", func(t *testing.T) {
		store := fresh(t)
		boom := errors.New("boom")
		id := uuid.NewString()

		err := store.WithTransaction(ctx, func(tx repository.Store) error {
			if err := tx.Users().Create(ctx, &domain.User{ID: id, Name: "Tx", Email: "tx@example.com"}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = store.Users().GetByID(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
