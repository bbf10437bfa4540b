package posts

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloghub/pkg/database"
	"bloghub/pkg/models"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.MigrateFile(db, "../../docs/schema.sql"))
	return db
}

func seedPosts(t *testing.T, repo *Repo) {
	t.Helper()
	ctx := context.Background()

	fixtures := []models.Post{
		{
			Slug:        "getting-started",
			Title:       "Getting Started with Angular",
			Author:      "jane",
			Tags:        []string{"angular", "tutorial"},
			SeriesID:    "angular-basics",
			Part:        0,
			Description: "First steps",
			Date:        time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Slug:     "components-deep-dive",
			Title:    "Components Deep Dive",
			Author:   "jane",
			Tags:     []string{"angular"},
			SeriesID: "angular-basics",
			Part:     1,
			Date:     time.Date(2023, 5, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			Slug:   "standalone-note",
			Title:  "A Standalone Note",
			Author: "sam",
			Tags:   []string{"misc"},
			Date:   time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Slug:  "unfinished-draft",
			Title: "Unfinished Draft",
			Draft: true,
			Date:  time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, p := range fixtures {
		require.NoError(t, repo.Upsert(ctx, p))
	}
}

func TestGetBySlug(t *testing.T) {
	repo := NewRepo(testDB(t))
	seedPosts(t, repo)
	ctx := context.Background()

	p, err := repo.GetBySlug(ctx, "getting-started")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Getting Started with Angular", p.Title)
	assert.Equal(t, "angular-basics", p.SeriesID)
	assert.Equal(t, []string{"angular", "tutorial"}, p.Tags)
	assert.Equal(t, 0, p.Part)

	missing, err := repo.GetBySlug(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestList_ExcludesDrafts(t *testing.T) {
	repo := NewRepo(testDB(t))
	seedPosts(t, repo)
	ctx := context.Background()

	items, err := repo.List(ctx, ListQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.False(t, item.Draft)
	}

	withDrafts, err := repo.List(ctx, ListQuery{Limit: 10, Drafts: true})
	require.NoError(t, err)
	assert.Len(t, withDrafts, 4)
}

func TestList_Filters(t *testing.T) {
	repo := NewRepo(testDB(t))
	seedPosts(t, repo)
	ctx := context.Background()

	bySeries, err := repo.List(ctx, ListQuery{SeriesID: "angular-basics", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, bySeries, 2)

	byKeyword, err := repo.List(ctx, ListQuery{Q: "standalone", Limit: 10})
	require.NoError(t, err)
	require.Len(t, byKeyword, 1)
	assert.Equal(t, "standalone-note", byKeyword[0].Slug)

	byTag, err := repo.List(ctx, ListQuery{Tags: []string{"misc"}, Limit: 10})
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "standalone-note", byTag[0].Slug)
}

func TestCount(t *testing.T) {
	repo := NewRepo(testDB(t))
	seedPosts(t, repo)
	ctx := context.Background()

	total, err := repo.Count(ctx, ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	filtered, err := repo.Count(ctx, ListQuery{SeriesID: "angular-basics"})
	require.NoError(t, err)
	assert.Equal(t, 2, filtered)
}

func TestListAll_Ordering(t *testing.T) {
	repo := NewRepo(testDB(t))
	seedPosts(t, repo)
	ctx := context.Background()

	all, err := repo.ListAll(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// date ascending
	assert.Equal(t, "getting-started", all[0].Slug)
	assert.Equal(t, "components-deep-dive", all[1].Slug)
	assert.Equal(t, "standalone-note", all[2].Slug)
}

func TestUpsert_Overwrites(t *testing.T) {
	repo := NewRepo(testDB(t))
	seedPosts(t, repo)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.Post{
		Slug:  "standalone-note",
		Title: "A Renamed Note",
	}))

	p, err := repo.GetBySlug(ctx, "standalone-note")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "A Renamed Note", p.Title)

	total, err := repo.Count(ctx, ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}
