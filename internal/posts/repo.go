package posts

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bloghub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

type ListQuery struct {
	Q        string   // keyword search in title/author/description
	Tags     []string // any-match
	SeriesID string
	Drafts   bool // include drafts (protected callers only)
	Limit    int
	Offset   int
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (*models.PostDB, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT slug, title, author, tags, series_id, part, description, body, date, draft
		FROM posts
		WHERE slug = ?
	`, slug)

	p, err := scanPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan getBySlug: %w", err)
	}
	return p, nil
}

func (r *Repo) Count(ctx context.Context, q ListQuery) (int, error) {
	sqlStr, args := buildListSQL(q, true)
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	var total int
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("count scan: %w", err)
	}
	return total, nil
}

func (r *Repo) List(ctx context.Context, q ListQuery) ([]models.PostDB, error) {
	sqlStr, args := buildListSQL(q, false)

	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list query: %w", err)
	}
	defer rows.Close()

	out := make([]models.PostDB, 0, q.Limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("list scan: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// ListAll returns every stored post, drafts included when asked. The series
// snapshot and the exporters are built from this.
func (r *Repo) ListAll(ctx context.Context, includeDrafts bool) ([]models.Post, error) {
	sqlStr := `
		SELECT slug, title, author, tags, series_id, part, description, body, date, draft
		FROM posts
	`
	if !includeDrafts {
		sqlStr += " WHERE draft = 0"
	}
	sqlStr += " ORDER BY date ASC, slug ASC"

	rows, err := r.DB.QueryContext(ctx, sqlStr)
	if err != nil {
		return nil, fmt.Errorf("list all query: %w", err)
	}
	defer rows.Close()

	var out []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("list all scan: %w", err)
		}
		out = append(out, p.AsPost())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.PostDB, error) {
	var (
		p           models.PostDB
		author      sql.NullString
		tagsJSON    sql.NullString
		seriesID    sql.NullString
		description sql.NullString
		body        sql.NullString
		date        sql.NullTime
	)

	if err := row.Scan(
		&p.Slug, &p.Title, &author, &tagsJSON, &seriesID, &p.Part, &description, &body, &date, &p.Draft,
	); err != nil {
		return nil, err
	}

	p.Author = author.String
	p.SeriesID = seriesID.String
	p.Description = description.String
	p.Body = body.String
	if date.Valid {
		p.Date = date.Time.UTC()
	}
	if tagsJSON.Valid {
		_ = json.Unmarshal([]byte(tagsJSON.String), &p.Tags)
	}
	return &p, nil
}

// buildListSQL builds either COUNT(*) or SELECT list.
// tags filter is "any-match" by doing LIKE searches inside stored JSON text.
func buildListSQL(q ListQuery, countOnly bool) (string, []any) {
	baseSelect := `
		SELECT slug, title, author, tags, series_id, part, description, body, date, draft
		FROM posts
	`
	if countOnly {
		baseSelect = `SELECT COUNT(*) FROM posts`
	}

	var where []string
	var args []any

	if !q.Drafts {
		where = append(where, "draft = 0")
	}

	if strings.TrimSpace(q.Q) != "" {
		where = append(where, "(LOWER(title) LIKE ? OR LOWER(author) LIKE ? OR LOWER(description) LIKE ?)")
		kw := "%" + strings.ToLower(strings.TrimSpace(q.Q)) + "%"
		args = append(args, kw, kw, kw)
	}

	if strings.TrimSpace(q.SeriesID) != "" {
		where = append(where, "series_id = ?")
		args = append(args, strings.TrimSpace(q.SeriesID))
	}

	// any-match tag filter against JSON string
	if len(q.Tags) > 0 {
		var tagOr []string
		for _, t := range q.Tags {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			tagOr = append(tagOr, "LOWER(tags) LIKE ?")
			args = append(args, `%`+strings.ToLower(t)+`%`)
		}
		if len(tagOr) > 0 {
			where = append(where, "("+strings.Join(tagOr, " OR ")+")")
		}
	}

	sqlStr := baseSelect
	if len(where) > 0 {
		sqlStr += " WHERE " + strings.Join(where, " AND ")
	}

	if !countOnly {
		sqlStr += " ORDER BY date DESC, slug ASC"
		sqlStr += " LIMIT ? OFFSET ?"
		limit := q.Limit
		if limit <= 0 || limit > 100 {
			limit = 20
		}
		offset := q.Offset
		if offset < 0 {
			offset = 0
		}
		args = append(args, limit, offset)
	}

	return sqlStr, args
}

// Upsert writes one post row; used by the importer and tests. Bulk writes go
// through content.SaveToDatabase.
func (r *Repo) Upsert(ctx context.Context, p models.Post) error {
	tagsJSON, err := json.Marshal(p.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags for %s: %w", p.Slug, err)
	}

	var date any
	if !p.Date.IsZero() {
		date = p.Date.UTC().Format(time.RFC3339)
	}

	_, err = r.DB.ExecContext(ctx, `
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
	`, p.Slug, p.Title, p.Author, string(tagsJSON), p.SeriesID, p.Part, p.Description, p.Body, date, p.Draft)
	if err != nil {
		return fmt.Errorf("upsert post %s: %w", p.Slug, err)
	}
	return nil
}
