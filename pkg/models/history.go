package models

import "time"

type ReadingHistory struct {
	UserID   string    `json:"user_id"`
	SeriesID string    `json:"series_id"`
	Part     int       `json:"part"`
	At       time.Time `json:"at"`
}
