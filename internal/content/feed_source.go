package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bloghub/pkg/models"
)

// FeedSource pulls posts from a remote JSON feed with its own field shape,
// e.g. a mirror of an older deployment or a second authoring system.
//
// Expected response format:
//
//	GET {BaseURL}/feed.json
//	[
//	  {
//	    "path": "getting-started",
//	    "headline": "Getting Started",
//	    "writer": "jane",
//	    "labels": ["angular", "tutorial"],
//	    "series": "galactic-archives",
//	    "chapter": 1,
//	    "summary": "...",
//	    "content": "...",
//	    "published": "2023-05-01T00:00:00Z",
//	    "draft": false
//	  },
//	  ...
//	]
type FeedSource struct {
	BaseURL string
	Client  *http.Client
}

func NewFeedSource(baseURL string) *FeedSource {
	return &FeedSource{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *FeedSource) Name() string { return "feed" }

type feedEntry struct {
	Path      string   `json:"path"`
	Headline  string   `json:"headline"`
	Writer    string   `json:"writer"`
	Labels    []string `json:"labels"`
	Series    string   `json:"series"`
	Chapter   int      `json:"chapter"`
	Summary   string   `json:"summary"`
	Content   string   `json:"content"`
	Published string   `json:"published"`
	Draft     bool     `json:"draft"`
}

func (s *FeedSource) FetchAll(ctx context.Context) ([]models.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/feed.json", nil)
	if err != nil {
		return nil, fmt.Errorf("feed: build request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed: request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed: status %d: %s", resp.StatusCode, string(body))
	}

	var entries []feedEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("feed: decode: %w", err)
	}

	out := make([]models.Post, 0, len(entries))
	for _, e := range entries {
		if e.Path == "" || e.Headline == "" {
			continue
		}

		var date time.Time
		if e.Published != "" {
			if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
				date = t.UTC()
			}
		}

		out = append(out, models.Post{
			Slug:        normalizeKey(e.Path),
			Title:       e.Headline,
			Author:      e.Writer,
			Tags:        e.Labels,
			SeriesID:    e.Series,
			Part:        e.Chapter,
			Description: e.Summary,
			Body:        e.Content,
			Date:        date,
			Draft:       e.Draft,
			SourceIDs:   map[string]string{s.Name(): e.Path},
		})
	}
	return out, nil
}
