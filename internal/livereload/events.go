package livereload

import "time"

const (
	EventReindexed     = "content.reindexed"
	EventPostPublished = "post.published"
	EventReadingUpdate = "reading.update"
	EventReadingDelete = "reading.delete"
)

// ContentEvent announces a rebuild or a newly published post.
type ContentEvent struct {
	Type     string    `json:"type"`
	Posts    int       `json:"posts,omitempty"`
	Series   int       `json:"series,omitempty"`
	Slug     string    `json:"slug,omitempty"`
	SeriesID string    `json:"series_id,omitempty"`
	Part     int       `json:"part,omitempty"`
	At       time.Time `json:"at"`
}

// ReadingEvent mirrors changes to a user's reading list so other devices can
// follow along.
type ReadingEvent struct {
	Type        string    `json:"type"`
	UserID      string    `json:"user_id"`
	SeriesID    string    `json:"series_id"`
	CurrentPart int       `json:"current_part,omitempty"`
	Status      string    `json:"status,omitempty"`
	At          time.Time `json:"at"`
}
