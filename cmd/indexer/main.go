package main

import (
	"context"
	"database/sql"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"bloghub/internal/content"
	"bloghub/internal/notify"
	"bloghub/internal/series"
	"bloghub/pkg/database"
	"bloghub/pkg/models"
	"bloghub/pkg/utils"
)

func main() {
	watch := flag.Bool("watch", false, "watch the content directory and reindex on changes")
	contentDir := flag.String("content", "", "content directory (overrides site.yaml)")
	feedURL := flag.String("feed", "", "remote feed base URL (overrides site.yaml)")
	flag.Parse()

	siteCfg, err := utils.LoadSiteConfig("site.yaml")
	if err != nil {
		log.Fatalf("site config: %v", err)
	}
	if *contentDir != "" {
		siteCfg.ContentDir = *contentDir
	}
	if *feedURL != "" {
		siteCfg.FeedURL = *feedURL
	}

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	// Ensure schema exists
	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	sources := []content.Source{content.NewDirSource(siteCfg.ContentDir)}
	if siteCfg.FeedURL != "" {
		sources = append(sources, content.NewFeedSource(siteCfg.FeedURL))
	}
	agg := content.NewAggregator(sources...)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	all, err := index(ctx, db, agg)
	cancel()
	if err != nil {
		log.Fatalf("index failed: %v", err)
	}
	log.Println("✅ database populated")

	if !*watch {
		return
	}

	runWatch(db, agg, siteCfg, series.BuildSnapshot(all))
}

// index fetches from all sources, merges, and persists the result.
func index(ctx context.Context, db *sql.DB, agg *content.Aggregator) ([]models.Post, error) {
	posts, err := agg.FetchAndMerge(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("[indexer] merged posts: %d", len(posts))

	if err := content.SaveToDatabase(ctx, db, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func runWatch(db *sql.DB, agg *content.Aggregator, siteCfg utils.SiteConfig, snap *series.Snapshot) {
	registry := notify.NewRegistry()
	notifySrv := notify.NewServer(siteCfg.UDPAddr, registry, log.Default())
	go func() {
		if err := notifySrv.Run(); err != nil {
			log.Printf("[indexer] notify server stopped: %v", err)
		}
	}()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("watcher: %v", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, siteCfg.ContentDir); err != nil {
		log.Fatalf("watch %s: %v", siteCfg.ContentDir, err)
	}
	log.Printf("[indexer] watching %s", siteCfg.ContentDir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Editors fire bursts of events per save; a short timer collapses them
	// into one reindex.
	var debounce *time.Timer
	reindexCh := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(500*time.Millisecond, func() {
				select {
				case reindexCh <- struct{}{}:
				default:
				}
			})

		case <-reindexCh:
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			all, err := index(ctx, db, agg)
			cancel()
			if err != nil {
				log.Printf("[indexer] reindex failed: %v", err)
				continue
			}

			next := series.BuildSnapshot(all)
			for _, p := range newParts(snap, next) {
				log.Printf("[indexer] new part: %s (%s part %d)", p.Slug, p.SeriesID, p.Part)
				notifySrv.BroadcastNewPart(p.SeriesID, p.Part, p.Slug)
			}
			snap = next
			log.Printf("[indexer] reindexed: %d posts, %d series", len(next.BySlug), len(next.Groups))

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[indexer] watch error: %v", err)

		case sig := <-sigCh:
			log.Printf("[indexer] shutdown signal received: %s", sig)
			return
		}
	}
}

func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// newParts lists series members present in next but absent from prev.
func newParts(prev, next *series.Snapshot) []models.Post {
	var out []models.Post
	for _, members := range next.Groups {
		for _, p := range members {
			if _, seen := prev.BySlug[p.Slug]; !seen {
				out = append(out, p)
			}
		}
	}
	return out
}
