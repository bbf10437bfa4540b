package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"bloghub/pkg/database"
)

func main() {
	var (
		postsIn   = flag.String("posts", "data/posts.csv", "input CSV path for posts")
		readingIn = flag.String("reading", "data/reading_list.csv", "input CSV path for reading lists")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if err := importPosts(ctx, db, *postsIn); err != nil {
		log.Fatalf("import posts failed: %v", err)
	}
	if err := importReadingList(ctx, db, *readingIn); err != nil {
		log.Fatalf("import reading lists failed: %v", err)
	}

	log.Printf("✅ imported posts from %s and reading lists from %s", *postsIn, *readingIn)
}

func importPosts(ctx context.Context, db *sql.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := readHeader(r)
	if err != nil {
		return err
	}

	stmt, err := db.PrepareContext(ctx, `
		INSERT INTO posts (slug, title, author, tags, series_id, part, description, date, draft)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
		  title = excluded.title,
		  author = excluded.author,
		  tags = excluded.tags,
		  series_id = excluded.series_id,
		  part = excluded.part,
		  description = excluded.description,
		  date = excluded.date,
		  draft = excluded.draft
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if len(row) == 0 {
			continue
		}

		slug := valueAt(header, row, "slug")
		title := valueAt(header, row, "title")
		if slug == "" || title == "" {
			continue
		}

		part, err := parseIntOrZero(valueAt(header, row, "part"))
		if err != nil {
			return fmt.Errorf("parse part for %s: %w", slug, err)
		}

		date, err := parseTime(valueAt(header, row, "date"))
		if err != nil {
			return fmt.Errorf("parse date for %s: %w", slug, err)
		}

		draft := strings.EqualFold(valueAt(header, row, "draft"), "true")

		if _, err := stmt.ExecContext(
			ctx,
			slug,
			title,
			nullString(valueAt(header, row, "author")),
			tagsJSON(valueAt(header, row, "tags")),
			nullString(valueAt(header, row, "series_id")),
			part,
			nullString(valueAt(header, row, "description")),
			date,
			draft,
		); err != nil {
			return err
		}
	}

	return nil
}

func importReadingList(ctx context.Context, db *sql.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := readHeader(r)
	if err != nil {
		return err
	}

	stmt, err := db.PrepareContext(ctx, `
		INSERT INTO reading_list (user_id, series_id, current_part, status, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, series_id) DO UPDATE SET
			current_part = excluded.current_part,
			status = excluded.status,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if len(row) == 0 {
			continue
		}

		userID := valueAt(header, row, "user_id")
		seriesID := valueAt(header, row, "series_id")
		if userID == "" || seriesID == "" {
			continue
		}

		currentPart, err := parseIntOrZero(valueAt(header, row, "current_part"))
		if err != nil {
			return fmt.Errorf("parse current_part for %s/%s: %w", userID, seriesID, err)
		}

		updatedAt, err := parseTime(valueAt(header, row, "updated_at"))
		if err != nil {
			return fmt.Errorf("parse updated_at for %s/%s: %w", userID, seriesID, err)
		}

		if _, err := stmt.ExecContext(
			ctx,
			userID,
			seriesID,
			currentPart,
			nullString(valueAt(header, row, "status")),
			updatedAt,
		); err != nil {
			return err
		}
	}

	return nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		header[strings.TrimSpace(strings.ToLower(name))] = idx
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, key string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseIntOrZero(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func parseTime(raw string) (sql.NullTime, error) {
	if raw == "" {
		return sql.NullTime{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return sql.NullTime{}, err
	}
	return sql.NullTime{Time: t, Valid: true}, nil
}

func nullString(raw string) sql.NullString {
	if raw == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: raw, Valid: true}
}

// tagsJSON accepts either a JSON array or a comma-separated list and stores
// the canonical JSON array form.
func tagsJSON(raw string) string {
	if raw == "" {
		return "[]"
	}
	if strings.HasPrefix(raw, "[") {
		var tags []string
		if err := json.Unmarshal([]byte(raw), &tags); err == nil {
			b, _ := json.Marshal(tags)
			return string(b)
		}
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	if tags == nil {
		return "[]"
	}
	b, _ := json.Marshal(tags)
	return string(b)
}
