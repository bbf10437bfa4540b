package posts

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)         // GET /posts
	rg.GET("/:slug", h.getOne) // GET /posts/:slug
}

// RegisterProtectedRoutes exposes drafts to authenticated authors.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/drafts", h.listDrafts)
}

func (h *Handler) list(c *gin.Context) {
	q := h.queryFrom(c)
	h.respondList(c, q)
}

func (h *Handler) listDrafts(c *gin.Context) {
	q := h.queryFrom(c)
	q.Drafts = true
	h.respondList(c, q)
}

func (h *Handler) queryFrom(c *gin.Context) ListQuery {
	q := ListQuery{
		Q:        c.Query("q"),
		SeriesID: c.Query("series"),
		Limit:    parseInt(c.Query("limit"), 20),
		Offset:   parseInt(c.Query("offset"), 0),
	}

	// tags=angular,rxjs OR tags=angular&tags=rxjs
	tags := c.QueryArray("tags")
	if len(tags) == 0 {
		if s := c.Query("tags"); s != "" {
			tags = strings.Split(s, ",")
		}
	}
	q.Tags = tags
	return q
}

func (h *Handler) respondList(c *gin.Context, q ListQuery) {
	total, err := h.Repo.Count(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count failed"})
		return
	}

	items, err := h.Repo.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"limit":  q.Limit,
		"offset": q.Offset,
		"items":  items,
	})
}

func (h *Handler) getOne(c *gin.Context) {
	slug := c.Param("slug")
	p, err := h.Repo.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if p == nil || p.Draft {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
