package content

import (
	"context"
	"log"
	"strings"
	"unicode"

	"bloghub/pkg/models"
)

// Source is implemented by each content origin (local directory, remote feed).
// Each source is responsible for reading its own format and mapping it into
// the canonical Post shape.
type Source interface {
	Name() string
	FetchAll(ctx context.Context) ([]models.Post, error)
}

// Aggregator coordinates calls to multiple sources and merges them into a
// single canonical set of posts.
type Aggregator struct {
	Sources []Source
}

// NewAggregator creates a new Aggregator with the given sources.
func NewAggregator(sources ...Source) *Aggregator {
	return &Aggregator{Sources: sources}
}

// FetchAndMerge fetches posts from all sources and merges entries that
// describe the same document, using deterministic conflict resolution rules.
func (a *Aggregator) FetchAndMerge(ctx context.Context) ([]models.Post, error) {
	byKey := make(map[string]models.Post)
	var order []string

	for _, src := range a.Sources {
		log.Printf("[content] fetching from %s", src.Name())
		items, err := src.FetchAll(ctx)
		if err != nil {
			log.Printf("[content] source %s error: %v", src.Name(), err)
			// keep going: one broken source should not kill the whole build
			continue
		}

		for _, p := range items {
			key := canonicalKey(p)
			if key == "" {
				continue
			}

			if existing, ok := byKey[key]; ok {
				byKey[key] = mergePost(existing, p)
			} else {
				byKey[key] = p
				order = append(order, key)
			}
		}
	}

	result := make([]models.Post, 0, len(byKey))
	for _, key := range order {
		result = append(result, byKey[key])
	}
	return result, nil
}

// canonicalKey defines how we group entries that represent the same document
// across sources. The slug already is the canonical ID; normalizing it guards
// against case or punctuation drift between sources.
func canonicalKey(p models.Post) string {
	return normalizeKey(p.Slug)
}

// normalizeKey converts a string to a canonical form: lowercase, collapse
// non-letter/digit runs to single hyphens.
func normalizeKey(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))

	prevSep := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevSep = false
			continue
		}
		if !prevSep {
			b.WriteRune('-')
			prevSep = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// mergePost defines our conflict resolution rules when two sources describe
// the same document:
//
// - Keep base.Title; fill it from incoming only when empty.
// - Fill missing author, series, description from incoming.
// - Merge tags (set union).
// - Part: a non-zero part wins over zero (a feed that knows the ordinal
//   beats one that does not).
// - Body and description: keep whichever is longer.
// - Date: keep the earliest non-zero date.
// - Draft: true from either side keeps the post hidden.
// - Merge SourceIDs.
func mergePost(base, incoming models.Post) models.Post {
	if base.Title == "" {
		base.Title = incoming.Title
	}
	if base.Author == "" {
		base.Author = incoming.Author
	}
	if base.SeriesID == "" {
		base.SeriesID = incoming.SeriesID
	}
	if base.Part == 0 && incoming.Part != 0 {
		base.Part = incoming.Part
	}

	base.Tags = mergeStringSlices(base.Tags, incoming.Tags)

	if len(incoming.Description) > len(base.Description) {
		base.Description = incoming.Description
	}
	if len(incoming.Body) > len(base.Body) {
		base.Body = incoming.Body
	}

	if base.Date.IsZero() || (!incoming.Date.IsZero() && incoming.Date.Before(base.Date)) {
		base.Date = incoming.Date
	}

	base.Draft = base.Draft || incoming.Draft

	if base.SourceIDs == nil {
		base.SourceIDs = make(map[string]string)
	}
	for k, v := range incoming.SourceIDs {
		base.SourceIDs[k] = v
	}

	return base
}

func appendIfMissing(slice []string, v string) []string {
	for _, x := range slice {
		if x == v {
			return slice
		}
	}
	return append(slice, v)
}

func mergeStringSlices(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	for _, v := range b {
		out = appendIfMissing(out, v)
	}
	return out
}
