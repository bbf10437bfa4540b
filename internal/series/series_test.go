package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloghub/pkg/models"
)

func post(slug, seriesID string, part int, tags ...string) models.Post {
	return models.Post{Slug: slug, Title: slug, SeriesID: seriesID, Part: part, Tags: tags}
}

func archivePosts() []models.Post {
	return []models.Post{
		post("intro", "galactic-archives", 0),
		post("setup", "galactic-archives", 1),
		post("overview", "galactic-archives", 0, "series"),
	}
}

func TestBuildGroups_ExcludesOverviewPages(t *testing.T) {
	groups := BuildGroups(archivePosts())

	require.Len(t, groups, 1)
	g := groups["galactic-archives"]
	require.Len(t, g, 2)
	assert.Equal(t, "intro", g[0].Slug)
	assert.Equal(t, "setup", g[1].Slug)
	for _, m := range g {
		assert.False(t, m.HasTag(OverviewTag))
	}
}

func TestBuildGroups_SkipsPostsWithoutSeries(t *testing.T) {
	groups := BuildGroups([]models.Post{
		post("standalone", "", 0, "angular"),
		post("part-one", "rxjs-basics", 1),
	})

	require.Len(t, groups, 1)
	assert.Len(t, groups["rxjs-basics"], 1)
}

func TestBuildGroups_SortsByPart(t *testing.T) {
	groups := BuildGroups([]models.Post{
		post("c", "s", 3),
		post("a", "s", 1),
		post("b", "s", 2),
		post("zero", "s", 0),
	})

	g := groups["s"]
	require.Len(t, g, 4)
	for i := 1; i < len(g); i++ {
		assert.LessOrEqual(t, g[i-1].Part, g[i].Part)
	}
	assert.Equal(t, "zero", g[0].Slug)
}

func TestBuildGroups_MissingPartSortsAsZero(t *testing.T) {
	// a post without an explicit part lands at 0, next to any real part 0
	groups := BuildGroups([]models.Post{
		post("two", "s", 2),
		{Slug: "no-part", SeriesID: "s"},
	})

	g := groups["s"]
	require.Len(t, g, 2)
	assert.Equal(t, "no-part", g[0].Slug)
	assert.Equal(t, 0, g[0].Part)
}

func TestBuildGroups_DuplicatePartsKeepInputOrder(t *testing.T) {
	// duplicate parts are tolerated; stable sort keeps supplied order
	groups := BuildGroups([]models.Post{
		post("first-dup", "s", 1),
		post("second-dup", "s", 1),
		post("zero", "s", 0),
	})

	g := groups["s"]
	require.Len(t, g, 3)
	assert.Equal(t, "zero", g[0].Slug)
	assert.Equal(t, "first-dup", g[1].Slug)
	assert.Equal(t, "second-dup", g[2].Slug)
}

func TestBuildGroups_EmptyInput(t *testing.T) {
	assert.Empty(t, BuildGroups(nil))
	assert.Empty(t, BuildGroups([]models.Post{}))
}

func TestBuildGroups_Idempotent(t *testing.T) {
	in := archivePosts()
	assert.Equal(t, BuildGroups(in), BuildGroups(in))
}

func TestNext(t *testing.T) {
	groups := BuildGroups(archivePosts())

	next := Next(0, "galactic-archives", groups)
	require.NotNil(t, next)
	assert.Equal(t, "setup", next.Slug)

	assert.Nil(t, Next(1, "galactic-archives", groups))
	assert.Nil(t, Next(5, "unknown-series", groups))
}

func TestPrevious(t *testing.T) {
	groups := BuildGroups(archivePosts())

	prev := Previous(1, "galactic-archives", groups)
	require.NotNil(t, prev)
	assert.Equal(t, "intro", prev.Slug)

	// no part -1 exists
	assert.Nil(t, Previous(0, "galactic-archives", groups))
	assert.Nil(t, Previous(1, "unknown-series", groups))
}

func TestOverview(t *testing.T) {
	overviews := Overviews(archivePosts())
	require.Len(t, overviews, 1)

	ov := Overview("galactic-archives", overviews)
	require.NotNil(t, ov)
	assert.Equal(t, "overview", ov.Slug)

	assert.Nil(t, Overview("unknown-series", overviews))
}

func TestOverview_FirstMatchWins(t *testing.T) {
	overviews := []models.Post{
		post("landing-a", "s", 0, "series"),
		post("landing-b", "s", 0, "series"),
	}

	ov := Overview("s", overviews)
	require.NotNil(t, ov)
	assert.Equal(t, "landing-a", ov.Slug)
}

func TestSummaries(t *testing.T) {
	items := append(archivePosts(),
		post("alpha-1", "alpha", 1),
	)
	groups := BuildGroups(items)
	s := Summaries(groups, Overviews(items))

	require.Len(t, s, 2)
	// sorted by series id
	assert.Equal(t, "alpha", s[0].SeriesID)
	assert.Equal(t, "galactic-archives", s[1].SeriesID)
	assert.Equal(t, 2, s[1].Parts)
	assert.Equal(t, "overview", s[1].Title)
	require.NotNil(t, s[1].Latest)
	assert.Equal(t, "setup", s[1].Latest.Slug)
}

func TestSnapshotNavFor(t *testing.T) {
	snap := BuildSnapshot(archivePosts())

	nav, ok := snap.NavFor("intro")
	require.True(t, ok)
	assert.Equal(t, "galactic-archives", nav.SeriesID)
	assert.Nil(t, nav.Previous)
	require.NotNil(t, nav.Next)
	assert.Equal(t, "setup", nav.Next.Slug)
	require.NotNil(t, nav.Overview)
	assert.Equal(t, "overview", nav.Overview.Slug)

	nav, ok = snap.NavFor("setup")
	require.True(t, ok)
	require.NotNil(t, nav.Previous)
	assert.Equal(t, "intro", nav.Previous.Slug)
	assert.Nil(t, nav.Next)

	_, ok = snap.NavFor("missing")
	assert.False(t, ok)
}

func TestSnapshotNavFor_PostOutsideSeries(t *testing.T) {
	snap := BuildSnapshot([]models.Post{post("loner", "", 0)})

	nav, ok := snap.NavFor("loner")
	require.True(t, ok)
	assert.Empty(t, nav.SeriesID)
	assert.Nil(t, nav.Previous)
	assert.Nil(t, nav.Next)
	assert.Nil(t, nav.Overview)
}
