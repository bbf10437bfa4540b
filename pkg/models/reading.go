package models

import "time"

type ReadingItem struct {
	UserID      string    `json:"user_id"`
	SeriesID    string    `json:"series_id"`
	CurrentPart int       `json:"current_part"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updated_at"`
}
