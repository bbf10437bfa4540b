package models

import "time"

type PostDB struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Tags        []string  `json:"tags"`
	SeriesID    string    `json:"series_id,omitempty"`
	Part        int       `json:"part"`
	Description string    `json:"description,omitempty"`
	Body        string    `json:"body,omitempty"`
	Date        time.Time `json:"date,omitempty"`
	Draft       bool      `json:"draft"`
}

// AsPost converts the stored row back into the canonical form.
func (p PostDB) AsPost() Post {
	return Post{
		Slug:        p.Slug,
		Title:       p.Title,
		Author:      p.Author,
		Tags:        p.Tags,
		SeriesID:    p.SeriesID,
		Part:        p.Part,
		Description: p.Description,
		Body:        p.Body,
		Date:        p.Date,
		Draft:       p.Draft,
	}
}
