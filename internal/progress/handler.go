package progress

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bloghub/internal/auth"
	"bloghub/pkg/models"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/progress", h.list)
	rg.POST("/progress", h.add)
}

type addReq struct {
	SeriesID string `json:"series_id"`
	Part     int    `json:"part"`
}

func (h *Handler) add(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	seriesID := strings.TrimSpace(req.SeriesID)
	if seriesID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "series_id required"})
		return
	}
	if req.Part < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "part must be >= 0"})
		return
	}

	entry := models.ReadingHistory{
		UserID:   claims.UserID,
		SeriesID: seriesID,
		Part:     req.Part,
		At:       time.Now().UTC(),
	}

	if err := h.Repo.Add(c.Request.Context(), entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *Handler) list(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	seriesID := strings.TrimSpace(c.Query("series_id"))
	if seriesID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "series_id required"})
		return
	}

	limit := parseInt(c.Query("limit"), 50)
	offset := parseInt(c.Query("offset"), 0)

	items, total, err := h.Repo.List(c.Request.Context(), claims.UserID, seriesID, limit, offset)
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
