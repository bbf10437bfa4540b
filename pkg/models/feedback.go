package models

import "time"

type Feedback struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	PostSlug  string    `json:"post_slug"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
