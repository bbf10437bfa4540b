package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloghub/pkg/models"
)

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "galactic-archives", normalizeKey("Galactic Archives"))
	assert.Equal(t, "part-2-setup", normalizeKey("  Part 2: Setup!  "))
	assert.Equal(t, "abc", normalizeKey("abc"))
	assert.Equal(t, "", normalizeKey("---"))
}

func TestMergePost(t *testing.T) {
	early := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	base := models.Post{
		Slug:      "intro",
		Title:     "Intro",
		Tags:      []string{"angular"},
		Body:      "short",
		Date:      late,
		SourceIDs: map[string]string{"content_dir": "posts/intro.md"},
	}
	incoming := models.Post{
		Slug:        "intro",
		Title:       "Other Title",
		Author:      "jane",
		Tags:        []string{"angular", "rxjs"},
		SeriesID:    "galactic-archives",
		Part:        2,
		Description: "a longer summary",
		Body:        "a much longer body",
		Date:        early,
		SourceIDs:   map[string]string{"feed": "intro"},
	}

	merged := mergePost(base, incoming)

	assert.Equal(t, "Intro", merged.Title, "base title is canonical")
	assert.Equal(t, "jane", merged.Author)
	assert.Equal(t, "galactic-archives", merged.SeriesID)
	assert.Equal(t, 2, merged.Part)
	assert.Equal(t, []string{"angular", "rxjs"}, merged.Tags)
	assert.Equal(t, "a longer summary", merged.Description)
	assert.Equal(t, "a much longer body", merged.Body)
	assert.Equal(t, early, merged.Date, "earliest date wins")
	assert.Equal(t, "posts/intro.md", merged.SourceIDs["content_dir"])
	assert.Equal(t, "intro", merged.SourceIDs["feed"])
}

func TestMergePost_DraftWins(t *testing.T) {
	merged := mergePost(models.Post{Slug: "x"}, models.Post{Slug: "x", Draft: true})
	assert.True(t, merged.Draft)

	merged = mergePost(models.Post{Slug: "x", Draft: true}, models.Post{Slug: "x"})
	assert.True(t, merged.Draft)
}

type fakeSource struct {
	name  string
	items []models.Post
	err   error
}

func (f fakeSource) Name() string { return f.name }
func (f fakeSource) FetchAll(ctx context.Context) ([]models.Post, error) {
	return f.items, f.err
}

func TestAggregator_MergesAcrossSources(t *testing.T) {
	a := NewAggregator(
		fakeSource{name: "dir", items: []models.Post{
			{Slug: "intro", Title: "Intro", Body: "local body"},
			{Slug: "local-only", Title: "Local Only"},
		}},
		fakeSource{name: "feed", items: []models.Post{
			{Slug: "Intro", Title: "Intro (feed)", SeriesID: "s", Part: 1},
			{Slug: "feed-only", Title: "Feed Only"},
		}},
	)

	posts, err := a.FetchAndMerge(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)

	// first-seen order is kept
	assert.Equal(t, "intro", posts[0].Slug)
	assert.Equal(t, "Intro", posts[0].Title)
	assert.Equal(t, "s", posts[0].SeriesID)
	assert.Equal(t, 1, posts[0].Part)
	assert.Equal(t, "local-only", posts[1].Slug)
	assert.Equal(t, "feed-only", posts[2].Slug)
}

func TestAggregator_BrokenSourceDoesNotAbort(t *testing.T) {
	a := NewAggregator(
		fakeSource{name: "broken", err: errors.New("boom")},
		fakeSource{name: "ok", items: []models.Post{{Slug: "intro", Title: "Intro"}}},
	)

	posts, err := a.FetchAndMerge(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "intro", posts[0].Slug)
}

func TestSplitFrontMatter(t *testing.T) {
	fm, body, err := splitFrontMatter("---\ntitle: Hello\nseries: s\npart: 3\ndraft: true\n---\n\nBody text.\n")
	require.NoError(t, err)
	assert.Equal(t, "Hello", fm.Title)
	assert.Equal(t, "s", fm.Series)
	assert.Equal(t, 3, fm.Part)
	assert.True(t, fm.Draft)
	assert.Equal(t, "\nBody text.\n", body)
}

func TestSplitFrontMatter_NoHeader(t *testing.T) {
	fm, body, err := splitFrontMatter("plain body\n")
	require.NoError(t, err)
	assert.Equal(t, frontMatter{}, fm)
	assert.Equal(t, "plain body\n", body)
}

func TestSplitFrontMatter_BadYAML(t *testing.T) {
	_, _, err := splitFrontMatter("---\n\t: broken\n---\nbody\n")
	assert.Error(t, err)
}

func TestDirSource_FetchAll(t *testing.T) {
	src := NewDirSource("testdata/posts")

	posts, err := src.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 4)

	bySlug := make(map[string]models.Post, len(posts))
	for _, p := range posts {
		bySlug[p.Slug] = p
	}

	intro, ok := bySlug["intro"]
	require.True(t, ok)
	assert.Equal(t, "Galactic Archives - Introduction", intro.Title)
	assert.Equal(t, "galactic-archives", intro.SeriesID)
	assert.Equal(t, 0, intro.Part)
	assert.Equal(t, []string{"angular", "tutorial"}, intro.Tags)
	assert.Equal(t, "intro.md", intro.SourceIDs["content_dir"])
	assert.Contains(t, intro.Body, "Welcome to the series")

	setup := bySlug["setup"]
	assert.Equal(t, 1, setup.Part)

	overview := bySlug["overview"]
	assert.True(t, overview.HasTag("series"))
	assert.Equal(t, 0, overview.Part)

	// file without front matter falls back to filename-derived fields
	plain, ok := bySlug["plain-note"]
	require.True(t, ok)
	assert.Equal(t, "plain-note", plain.Title)
	assert.Contains(t, plain.Body, "no front matter")
}
