package progress

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bloghub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Add(ctx context.Context, entry models.ReadingHistory) error {
	if entry.At.IsZero() {
		entry.At = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO reading_history (user_id, series_id, part, at)
		VALUES (?, ?, ?, ?)
	`, entry.UserID, entry.SeriesID, entry.Part, entry.At)
	if err != nil {
		return fmt.Errorf("insert reading history: %w", err)
	}
	return nil
}

func (r *Repo) List(ctx context.Context, userID, seriesID string, limit, offset int) ([]models.ReadingHistory, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM reading_history
		WHERE user_id = ? AND series_id = ?
	`, userID, seriesID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reading history: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT user_id, series_id, part, at
		FROM reading_history
		WHERE user_id = ? AND series_id = ?
		ORDER BY at DESC
		LIMIT ? OFFSET ?
	`, userID, seriesID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list reading history: %w", err)
	}
	defer rows.Close()

	out := make([]models.ReadingHistory, 0, limit)
	for rows.Next() {
		var entry models.ReadingHistory
		var at time.Time

		if err := rows.Scan(&entry.UserID, &entry.SeriesID, &entry.Part, &at); err != nil {
			return nil, 0, fmt.Errorf("scan reading history: %w", err)
		}
		entry.At = at
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows reading history: %w", err)
	}

	return out, total, nil
}
