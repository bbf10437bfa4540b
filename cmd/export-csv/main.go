package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"bloghub/pkg/database"
)

func main() {
	var (
		postsOut   = flag.String("posts", "data/posts.csv", "output CSV path for posts")
		readingOut = flag.String("reading", "data/reading_list.csv", "output CSV path for reading lists")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if err := exportPosts(ctx, db, *postsOut); err != nil {
		log.Fatalf("export posts failed: %v", err)
	}
	if err := exportReadingList(ctx, db, *readingOut); err != nil {
		log.Fatalf("export reading lists failed: %v", err)
	}

	log.Printf("✅ exported posts to %s and reading lists to %s", *postsOut, *readingOut)
}

func exportPosts(ctx context.Context, db *sql.DB, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"slug", "title", "author", "tags", "series_id", "part", "description", "date", "draft"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT slug, title, author, tags, series_id, part, description, date, draft
        FROM posts
        ORDER BY date DESC, slug ASC
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			slug        string
			title       string
			author      sql.NullString
			tags        sql.NullString
			seriesID    sql.NullString
			part        int
			description sql.NullString
			date        sql.NullTime
			draft       bool
		)

		if err := rows.Scan(&slug, &title, &author, &tags, &seriesID, &part, &description, &date, &draft); err != nil {
			return err
		}

		published := ""
		if date.Valid {
			published = date.Time.UTC().Format(time.RFC3339)
		}

		if err := w.Write([]string{
			slug,
			title,
			author.String,
			tags.String,
			seriesID.String,
			strconv.Itoa(part),
			description.String,
			published,
			strconv.FormatBool(draft),
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func exportReadingList(ctx context.Context, db *sql.DB, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"user_id", "series_id", "current_part", "status", "updated_at"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT user_id, series_id, current_part, status, updated_at
        FROM reading_list
        ORDER BY updated_at DESC
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			userID      string
			seriesID    string
			currentPart sql.NullInt64
			status      sql.NullString
			updatedAt   sql.NullTime
		)

		if err := rows.Scan(&userID, &seriesID, &currentPart, &status, &updatedAt); err != nil {
			return err
		}

		part := ""
		if currentPart.Valid {
			part = strconv.FormatInt(currentPart.Int64, 10)
		}

		updated := ""
		if updatedAt.Valid {
			updated = updatedAt.Time.Format(time.RFC3339)
		}

		if err := w.Write([]string{
			userID,
			seriesID,
			part,
			status.String,
			updated,
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}
