package series

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"bloghub/internal/posts"
)

// Handler serves the series listing and navigation queries. It holds the
// current Snapshot; queries always read one coherent snapshot, and Reindex
// swaps in a fresh one wholesale.
type Handler struct {
	Repo *posts.Repo
	snap atomic.Pointer[Snapshot]
}

func NewHandler(repo *posts.Repo) *Handler {
	h := &Handler{Repo: repo}
	h.snap.Store(BuildSnapshot(nil))
	return h
}

// Reindex rebuilds the snapshot from every published post. Drafts never make
// it into series navigation.
func (h *Handler) Reindex(ctx context.Context) error {
	all, err := h.Repo.ListAll(ctx, false)
	if err != nil {
		return fmt.Errorf("load posts for index: %w", err)
	}
	h.snap.Store(BuildSnapshot(all))
	return nil
}

func (h *Handler) Snapshot() *Snapshot {
	return h.snap.Load()
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)       // GET /series
	rg.GET("/:id", h.getOne) // GET /series/:id
}

// RegisterNavRoute hangs the navigation query off the posts tree, so a
// renderer fetches /posts/:slug and /posts/:slug/nav side by side.
func (h *Handler) RegisterNavRoute(rg *gin.RouterGroup) {
	rg.GET("/:slug/nav", h.nav)
}

// RegisterAdminRoutes exposes reindexing to authenticated authors.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/reindex", h.reindex)
}

func (h *Handler) list(c *gin.Context) {
	snap := h.Snapshot()
	summaries := Summaries(snap.Groups, snap.OverviewPages)
	c.JSON(http.StatusOK, gin.H{
		"total":    len(summaries),
		"built_at": snap.BuiltAt,
		"items":    summaries,
	})
}

func (h *Handler) getOne(c *gin.Context) {
	id := c.Param("id")
	snap := h.Snapshot()

	members, ok := snap.Groups[id]
	overview := Overview(id, snap.OverviewPages)
	if !ok && overview == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"series_id": id,
		"overview":  overview,
		"parts":     len(members),
		"members":   members,
	})
}

func (h *Handler) nav(c *gin.Context) {
	slug := c.Param("slug")
	nav, ok := h.Snapshot().NavFor(slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, nav)
}

func (h *Handler) reindex(c *gin.Context) {
	if err := h.Reindex(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reindex failed"})
		return
	}
	snap := h.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":   "reindexed",
		"series":   len(snap.Groups),
		"posts":    len(snap.BySlug),
		"built_at": snap.BuiltAt,
	})
}
