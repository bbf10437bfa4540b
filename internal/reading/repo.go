package reading

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

// Upsert inserts or updates a user's reading-list entry for a series.
func (r *Repo) Upsert(ctx context.Context, item models.ReadingItem) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO reading_list (user_id, series_id, current_part, status, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, series_id) DO UPDATE SET
			current_part = excluded.current_part,
			status = excluded.status,
			updated_at = CURRENT_TIMESTAMP
	`, item.UserID, item.SeriesID, item.CurrentPart, item.Status)
	if err != nil {
		return fmt.Errorf("upsert reading item: %w", err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, seriesID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM reading_list
		WHERE user_id = ? AND series_id = ?
	`, userID, seriesID)
	if err != nil {
		return false, fmt.Errorf("delete reading item: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *Repo) List(ctx context.Context, userID string, status string, limit, offset int) ([]models.ReadingItem, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	// count
	var total int
	var countErr error
	if status == "" {
		countErr = r.DB.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM reading_list WHERE user_id = ?
		`, userID).Scan(&total)
	} else {
		countErr = r.DB.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM reading_list WHERE user_id = ? AND status = ?
		`, userID, status).Scan(&total)
	}
	if countErr != nil {
		return nil, 0, fmt.Errorf("count reading list: %w", countErr)
	}

	// list
	var rows *sql.Rows
	var err error

	if status == "" {
		rows, err = r.DB.QueryContext(ctx, `
			SELECT user_id, series_id, current_part, status, updated_at
			FROM reading_list
			WHERE user_id = ?
			ORDER BY updated_at DESC
			LIMIT ? OFFSET ?
		`, userID, limit, offset)
	} else {
		rows, err = r.DB.QueryContext(ctx, `
			SELECT user_id, series_id, current_part, status, updated_at
			FROM reading_list
			WHERE user_id = ? AND status = ?
			ORDER BY updated_at DESC
			LIMIT ? OFFSET ?
		`, userID, status, limit, offset)
	}

	if err != nil {
		return nil, 0, fmt.Errorf("list reading list: %w", err)
	}
	defer rows.Close()

	out := make([]models.ReadingItem, 0, limit)
	for rows.Next() {
		var it models.ReadingItem
		var updated time.Time

		if err := rows.Scan(&it.UserID, &it.SeriesID, &it.CurrentPart, &it.Status, &updated); err != nil {
			return nil, 0, fmt.Errorf("scan reading row: %w", err)
		}
		it.UpdatedAt = updated
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows err: %w", err)
	}

	return out, total, nil
}

func (r *Repo) Get(ctx context.Context, userID, seriesID string) (*models.ReadingItem, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT user_id, series_id, current_part, status, updated_at
		FROM reading_list
		WHERE user_id = ? AND series_id = ?
	`, userID, seriesID)

	var it models.ReadingItem
	var updated time.Time
	if err := row.Scan(&it.UserID, &it.SeriesID, &it.CurrentPart, &it.Status, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get reading item: %w", err)
	}
	it.UpdatedAt = updated
	return &it, nil
}
