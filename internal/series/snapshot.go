package series

import (
	"time"

	"bloghub/pkg/models"
)

// Snapshot is an immutable view of the content set, built in one pass and
// never mutated afterwards. Consumers thread it through queries explicitly;
// a fresh build replaces the whole snapshot.
type Snapshot struct {
	Groups        Groups
	OverviewPages []models.Post
	BySlug        map[string]models.Post
	BuiltAt       time.Time
}

// BuildSnapshot derives the full series view from the given posts.
// Calling it twice on the same input yields structurally equal output.
func BuildSnapshot(posts []models.Post) *Snapshot {
	bySlug := make(map[string]models.Post, len(posts))
	for _, p := range posts {
		bySlug[p.Slug] = p
	}
	return &Snapshot{
		Groups:        BuildGroups(posts),
		OverviewPages: Overviews(posts),
		BySlug:        bySlug,
		BuiltAt:       time.Now().UTC(),
	}
}

// Nav is the series navigation context for one post.
type Nav struct {
	SeriesID string       `json:"series_id,omitempty"`
	Part     int          `json:"part"`
	Overview *models.Post `json:"overview,omitempty"`
	Previous *models.Post `json:"previous,omitempty"`
	Next     *models.Post `json:"next,omitempty"`
}

// NavFor answers the previous/next/overview queries for the post with the
// given slug. The second return is false when the slug is unknown. A post
// outside any series yields an empty Nav; callers render nothing for absent
// links.
func (s *Snapshot) NavFor(slug string) (Nav, bool) {
	p, ok := s.BySlug[slug]
	if !ok {
		return Nav{}, false
	}
	if p.SeriesID == "" {
		return Nav{}, true
	}
	return Nav{
		SeriesID: p.SeriesID,
		Part:     p.Part,
		Overview: Overview(p.SeriesID, s.OverviewPages),
		Previous: Previous(p.Part, p.SeriesID, s.Groups),
		Next:     Next(p.Part, p.SeriesID, s.Groups),
	}, true
}
