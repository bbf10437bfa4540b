package series

import (
	"sort"

	"bloghub/pkg/models"
)

// OverviewTag marks a post as a series landing page. Overview pages introduce
// a series but are not numbered members of it.
const OverviewTag = "series"

// Groups maps a series id to its members, sorted ascending by part.
type Groups map[string][]models.Post

// BuildGroups partitions posts into per-series ordered sequences.
//
// Only posts with a series id participate; posts tagged "series" are the
// landing pages and are excluded from the member lists. Within a group the
// sort is stable and ascending by part. A post without an explicit part sits
// at part 0 alongside any post that declares part 0; duplicate parts are kept
// in input order. Neither case is validated here.
func BuildGroups(posts []models.Post) Groups {
	groups := make(Groups)
	for _, p := range posts {
		if p.SeriesID == "" || p.HasTag(OverviewTag) {
			continue
		}
		groups[p.SeriesID] = append(groups[p.SeriesID], p)
	}
	for id := range groups {
		g := groups[id]
		sort.SliceStable(g, func(i, j int) bool {
			return g[i].Part < g[j].Part
		})
	}
	return groups
}

// Overviews returns the posts tagged as series landing pages, in input order.
func Overviews(posts []models.Post) []models.Post {
	var out []models.Post
	for _, p := range posts {
		if p.HasTag(OverviewTag) {
			out = append(out, p)
		}
	}
	return out
}

// Overview returns the first overview post for the given series id, or nil.
func Overview(seriesID string, overviews []models.Post) *models.Post {
	for i := range overviews {
		if overviews[i].SeriesID == seriesID {
			return &overviews[i]
		}
	}
	return nil
}

// Previous returns the member of groups[seriesID] with part == part-1, or nil
// when no such member exists (including when the series is unknown).
func Previous(part int, seriesID string, groups Groups) *models.Post {
	return memberAt(part-1, seriesID, groups)
}

// Next returns the member of groups[seriesID] with part == part+1, or nil.
func Next(part int, seriesID string, groups Groups) *models.Post {
	return memberAt(part+1, seriesID, groups)
}

func memberAt(part int, seriesID string, groups Groups) *models.Post {
	g, ok := groups[seriesID]
	if !ok {
		return nil
	}
	for i := range g {
		if g[i].Part == part {
			return &g[i]
		}
	}
	return nil
}

// Summary describes one series for listing pages.
type Summary struct {
	SeriesID string       `json:"series_id"`
	Title    string       `json:"title,omitempty"` // overview title when present
	Parts    int          `json:"parts"`
	First    *models.Post `json:"first,omitempty"`
	Latest   *models.Post `json:"latest,omitempty"`
}

// Summaries flattens groups into sorted listing entries. Title comes from the
// matching overview page when one exists.
func Summaries(groups Groups, overviews []models.Post) []Summary {
	out := make([]Summary, 0, len(groups))
	for id, g := range groups {
		s := Summary{SeriesID: id, Parts: len(g)}
		if len(g) > 0 {
			first := g[0]
			latest := g[len(g)-1]
			s.First = &first
			s.Latest = &latest
		}
		if ov := Overview(id, overviews); ov != nil {
			s.Title = ov.Title
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SeriesID < out[j].SeriesID
	})
	return out
}
