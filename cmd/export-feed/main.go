package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"bloghub/pkg/database"
)

// FeedEntry is the external feed shape consumed by FeedSource on the other
// end. Field names intentionally differ from the internal model.
type FeedEntry struct {
	Path      string   `json:"path"`
	Headline  string   `json:"headline"`
	Writer    string   `json:"writer"`
	Labels    []string `json:"labels"`
	Series    string   `json:"series,omitempty"`
	Chapter   int      `json:"chapter,omitempty"`
	Summary   string   `json:"summary,omitempty"`
	Content   string   `json:"content,omitempty"`
	Published string   `json:"published,omitempty"`
	Draft     bool     `json:"draft,omitempty"`
}

func main() {
	var (
		outPath = flag.String("out", "data/feed.json", "output JSON path")
		limit   = flag.Int("limit", 200, "how many posts to export")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT slug, title, author, tags, series_id, part, description, body, date, draft
		FROM posts
		WHERE draft = 0
		ORDER BY date DESC, slug ASC
		LIMIT ?
	`, *limit)
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}
	defer rows.Close()

	var out []FeedEntry
	for rows.Next() {
		var (
			slug     string
			title    string
			author   sql.NullString
			tagsJSON sql.NullString
			seriesID sql.NullString
			part     int
			desc     sql.NullString
			body     sql.NullString
			date     sql.NullTime
			draft    bool
		)

		if err := rows.Scan(&slug, &title, &author, &tagsJSON, &seriesID, &part, &desc, &body, &date, &draft); err != nil {
			log.Fatalf("scan failed: %v", err)
		}

		var tags []string
		if tagsJSON.Valid {
			_ = json.Unmarshal([]byte(tagsJSON.String), &tags)
		}
		if tags == nil {
			tags = []string{}
		}

		published := ""
		if date.Valid {
			published = date.Time.UTC().Format(time.RFC3339)
		}

		out = append(out, FeedEntry{
			Path:      slug,
			Headline:  title,
			Writer:    author.String,
			Labels:    tags,
			Series:    seriesID.String,
			Chapter:   part,
			Summary:   desc.String,
			Content:   body.String,
			Published: published,
			Draft:     draft,
		})
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("rows error: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatalf("mkdir failed: %v", err)
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("marshal failed: %v", err)
	}

	if err := os.WriteFile(*outPath, b, 0o644); err != nil {
		log.Fatalf("write failed: %v", err)
	}

	log.Printf("✅ exported %d posts to %s", len(out), *outPath)
}
