package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"bloghub/pkg/models"
)

// SaveToDatabase upserts the given posts into the `posts` table in one
// transaction, so readers never observe a half-written content set.
func SaveToDatabase(ctx context.Context, db *sql.DB, posts []models.Post) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO posts (slug, title, author, tags, series_id, part, description, body, date, draft)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
		  title = excluded.title,
		  author = excluded.author,
		  tags = excluded.tags,
		  series_id = excluded.series_id,
		  part = excluded.part,
		  description = excluded.description,
		  body = excluded.body,
		  date = excluded.date,
		  draft = excluded.draft
	`)
	if err != nil {
		return fmt.Errorf("prepare stmt: %w", err)
	}
	defer stmt.Close()

	for _, p := range posts {
		tagsJSON, err := json.Marshal(p.Tags)
		if err != nil {
			return fmt.Errorf("marshal tags for %s: %w", p.Slug, err)
		}

		var date any
		if !p.Date.IsZero() {
			date = p.Date.UTC().Format(time.RFC3339)
		}

		if _, err := stmt.ExecContext(
			ctx,
			p.Slug,
			p.Title,
			p.Author,
			string(tagsJSON),
			p.SeriesID,
			p.Part,
			p.Description,
			p.Body,
			date,
			p.Draft,
		); err != nil {
			return fmt.Errorf("exec upsert for %s: %w", p.Slug, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
