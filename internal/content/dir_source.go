package content

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"bloghub/pkg/models"
)

// DirSource reads markdown files with YAML front matter from a content
// directory. This is the canonical source: when it conflicts with a remote
// feed, the local file wins.
type DirSource struct {
	Root string
}

func NewDirSource(root string) *DirSource {
	return &DirSource{Root: root}
}

func (s *DirSource) Name() string { return "content_dir" }

// frontMatter mirrors the YAML header of a post file. An absent part stays 0;
// that collides with an explicit `part: 0` on purpose, matching how the
// navigation treats unnumbered posts.
type frontMatter struct {
	Slug        string    `yaml:"slug"`
	Title       string    `yaml:"title"`
	Author      string    `yaml:"author"`
	Tags        []string  `yaml:"tags"`
	Series      string    `yaml:"series"`
	Part        int       `yaml:"part"`
	Description string    `yaml:"description"`
	Date        time.Time `yaml:"date"`
	Draft       bool      `yaml:"draft"`
}

func (s *DirSource) FetchAll(ctx context.Context) ([]models.Post, error) {
	var out []models.Post

	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		p, err := s.loadFile(path)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", s.Root, err)
	}

	return out, nil
}

func (s *DirSource) loadFile(path string) (models.Post, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return models.Post{}, err
	}

	fm, body, err := splitFrontMatter(string(b))
	if err != nil {
		return models.Post{}, err
	}

	rel, err := filepath.Rel(s.Root, path)
	if err != nil {
		rel = path
	}

	slug := fm.Slug
	if slug == "" {
		slug = normalizeKey(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}

	title := fm.Title
	if title == "" {
		title = slug
	}

	return models.Post{
		Slug:        slug,
		Title:       title,
		Author:      fm.Author,
		Tags:        fm.Tags,
		SeriesID:    fm.Series,
		Part:        fm.Part,
		Description: fm.Description,
		Body:        body,
		Date:        fm.Date,
		Draft:       fm.Draft,
		SourceIDs:   map[string]string{s.Name(): filepath.ToSlash(rel)},
	}, nil
}

const frontMatterDelim = "---"

// splitFrontMatter separates the YAML header from the markdown body. A file
// without a header is all body; the caller falls back to filename-derived
// fields.
func splitFrontMatter(content string) (frontMatter, string, error) {
	var fm frontMatter

	rest, ok := strings.CutPrefix(content, frontMatterDelim+"\n")
	if !ok {
		return fm, content, nil
	}

	end := strings.Index(rest, "\n"+frontMatterDelim)
	if end < 0 {
		return fm, content, nil
	}

	header := rest[:end]
	body := rest[end+len("\n"+frontMatterDelim):]
	body = strings.TrimPrefix(body, "\n")

	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return fm, "", fmt.Errorf("front matter: %w", err)
	}
	return fm, body, nil
}
