package reading

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bloghub/internal/auth"
	"bloghub/internal/livereload"
	"bloghub/internal/series"
	"bloghub/pkg/models"
)

type Handler struct {
	Repo   *Repo
	Hub    *livereload.Hub
	Series *series.Handler
}

func NewHandler(repo *Repo, hub *livereload.Hub, seriesHandler *series.Handler) *Handler {
	return &Handler{Repo: repo, Hub: hub, Series: seriesHandler}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reading", h.list)
	rg.POST("/reading", h.addOrUpdate)
	rg.PUT("/reading/:series_id", h.addOrUpdate)
	rg.DELETE("/reading/:series_id", h.remove)
	rg.GET("/reading/:series_id", h.getOne)
	rg.GET("/reading/:series_id/continue", h.continueReading)
}

type upsertReq struct {
	SeriesID    string `json:"series_id"` // required for POST
	CurrentPart int    `json:"current_part"`
	Status      string `json:"status"`
}

func (h *Handler) addOrUpdate(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req upsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	seriesID := strings.TrimSpace(req.SeriesID)
	if seriesID == "" {
		seriesID = strings.TrimSpace(c.Param("series_id"))
	}
	if seriesID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "series_id required"})
		return
	}

	status := normalizeStatus(req.Status)
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "status must be one of: reading, completed, queued, muted",
		})
		return
	}

	if req.CurrentPart < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current_part must be >= 0"})
		return
	}

	if status == "muted" && req.CurrentPart != 0 {
		req.CurrentPart = 0
	}

	item := models.ReadingItem{
		UserID:      claims.UserID,
		SeriesID:    seriesID,
		CurrentPart: req.CurrentPart,
		Status:      status,
	}
	if err := h.Repo.Upsert(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	// Return canonical stored row including updated_at
	saved, err := h.Repo.Get(c.Request.Context(), claims.UserID, seriesID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fetch saved failed"})
		return
	}
	if saved == nil {
		// should not happen, but safe
		saved = &item
		saved.UpdatedAt = time.Now().UTC()
	}

	if h.Hub != nil {
		ev := livereload.ReadingEvent{
			Type:        livereload.EventReadingUpdate,
			UserID:      claims.UserID,
			SeriesID:    seriesID,
			CurrentPart: saved.CurrentPart,
			Status:      saved.Status,
			At:          time.Now().UTC(),
		}
		go h.Hub.BroadcastJSON(ev)
	}

	c.JSON(http.StatusOK, saved)
}

func (h *Handler) list(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	status := strings.TrimSpace(c.Query("status"))
	if status != "" {
		status = normalizeStatus(status)
		if status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
	}

	limit := parseInt(c.Query("limit"), 20)
	offset := parseInt(c.Query("offset"), 0)

	items, total, err := h.Repo.List(c.Request.Context(), claims.UserID, status, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"items":  items,
	})
}

func (h *Handler) remove(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	seriesID := strings.TrimSpace(c.Param("series_id"))
	if seriesID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "series_id required"})
		return
	}

	ok, err := h.Repo.Delete(c.Request.Context(), claims.UserID, seriesID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if h.Hub != nil {
		ev := livereload.ReadingEvent{
			Type:     livereload.EventReadingDelete,
			UserID:   claims.UserID,
			SeriesID: seriesID,
			At:       time.Now().UTC(),
		}
		go h.Hub.BroadcastJSON(ev)
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *Handler) getOne(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	seriesID := strings.TrimSpace(c.Param("series_id"))
	if seriesID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "series_id required"})
		return
	}

	it, err := h.Repo.Get(c.Request.Context(), claims.UserID, seriesID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if it == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, it)
}

// continueReading answers "what do I read next" by combining the stored
// current part with the series index. No next part means the user is caught
// up; that is a normal answer, not an error.
func (h *Handler) continueReading(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	seriesID := strings.TrimSpace(c.Param("series_id"))
	if seriesID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "series_id required"})
		return
	}

	it, err := h.Repo.Get(c.Request.Context(), claims.UserID, seriesID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if it == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	snap := h.Series.Snapshot()
	next := series.Next(it.CurrentPart, seriesID, snap.Groups)

	c.JSON(http.StatusOK, gin.H{
		"series_id":    seriesID,
		"current_part": it.CurrentPart,
		"caught_up":    next == nil,
		"next":         next,
	})
}

func normalizeStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reading":
		return "reading"
	case "completed":
		return "completed"
	case "queued", "queue", "to_read", "to read":
		return "queued"
	case "muted", "mute":
		return "muted"
	default:
		return ""
	}
}

func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
