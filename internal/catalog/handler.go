package catalog

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store *Store

	// Designer names hidden from the facet response.
	ExcludeDesigners []string

	// Reload re-fetches the feed and swaps the catalog; wired by main.
	// nil disables POST /reload.
	Reload func(ctx context.Context) (*Snapshot, error)
}

func NewHandler(store *Store, excludeDesigners []string) *Handler {
	return &Handler{Store: store, ExcludeDesigners: excludeDesigners}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/games", h.list)        // GET /games?players=3&time=60&categories=Strategy
	r.GET("/games/:id", h.getByID) // GET /games/item-12
	r.GET("/facets", h.facets)     // GET /facets
	r.POST("/reload", h.reload)    // POST /reload
}

func (h *Handler) list(c *gin.Context) {
	crit := criteriaFromQuery(c)

	snap, _ := h.Store.Current()
	items := Filter(snap.Games, crit)

	c.JSON(http.StatusOK, gin.H{
		"total":   len(items),
		"load_id": snap.LoadID,
		"items":   items,
	})
}

func (h *Handler) getByID(c *gin.Context) {
	id := c.Param("id")
	snap, _ := h.Store.Current()
	for _, g := range snap.Games {
		if g.ID == id {
			c.JSON(http.StatusOK, g)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func (h *Handler) facets(c *gin.Context) {
	snap, _ := h.Store.Current()
	c.JSON(http.StatusOK, Extract(snap.Games, h.ExcludeDesigners))
}

func (h *Handler) reload(c *gin.Context) {
	if h.Reload == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reload not available"})
		return
	}

	snap, err := h.Reload(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"load_id":   snap.LoadID,
		"loaded_at": snap.LoadedAt,
		"stats":     snap.Stats,
	})
}

// criteriaFromQuery maps query parameters onto a Criteria value. Absent or
// unparsable parameters stay at their inactive zero value.
func criteriaFromQuery(c *gin.Context) Criteria {
	return Criteria{
		Search:            c.Query("q"),
		Players:           parseIntParam(c.Query("players"), 0),
		Time:              parseIntParam(c.Query("time"), 0),
		Weight:            c.Query("weight"),
		MaxAge:            parseIntParam(c.Query("maxAge"), 0),
		TopRanked:         parseBoolParam(c.Query("top100")),
		Sold:              parseBoolParam(c.Query("sold")),
		CuratorPicks:      parseBoolParam(c.Query("curatorPicks")),
		RegionalDesigners: parseBoolParam(c.Query("regional")),
		Categories:        multiParam(c, "categories"),
		Mechanisms:        multiParam(c, "mechanisms"),
		Designers:         multiParam(c, "designers"),
		Artists:           multiParam(c, "artists"),
		Publishers:        multiParam(c, "publishers"),
		Year:              parseIntParam(c.Query("year"), 0),
	}
}

// multiParam accepts both ?k=A&k=B and ?k=A,B.
func multiParam(c *gin.Context, key string) []string {
	values := c.QueryArray(key)
	if len(values) == 1 && strings.Contains(values[0], ",") {
		values = strings.Split(values[0], ",")
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseIntParam(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseBoolParam(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
