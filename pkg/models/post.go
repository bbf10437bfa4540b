package models

import "time"

// Post is the normalized, internal form of a content item
// used by the content pipeline and database layer.
//
// All sources (content directory, remote feed) are mapped into this
// structure first, then we write to the DB from this representation.
type Post struct {
	Slug        string            `json:"slug"`                  // our canonical ID (slug)
	Title       string            `json:"title"`                 // page title
	Author      string            `json:"author,omitempty"`      // author name
	Tags        []string          `json:"tags"`                  // front-matter tags; "series" marks an overview page
	SeriesID    string            `json:"series_id,omitempty"`   // empty means the post is not part of a series
	Part        int               `json:"part"`                  // ordinal within the series; absent in front matter means 0
	Description string            `json:"description,omitempty"` // summary / excerpt
	Body        string            `json:"body,omitempty"`        // markdown body, opaque to the index
	Date        time.Time         `json:"date,omitempty"`        // publication date
	Draft       bool              `json:"draft"`                 // drafts are hidden from public routes
	SourceIDs   map[string]string `json:"source_ids,omitempty"`  // e.g. {"content_dir": "posts/intro.md"}
}

// HasTag reports whether the post carries the given tag.
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
