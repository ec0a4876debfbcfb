package generations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"resume-latex/internal/shared/server/respond"
	"resume-latex/resume/model"
)

// Handler exposes read access to the audit log.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/generations", h.list)
	rg.GET("/generations/:id", h.get)
}

type generationResponse struct {
	ID            string       `json:"id"`
	RequestID     string       `json:"requestId,omitempty"`
	ContentSHA256 string       `json:"contentSha256"`
	SizeBytes     int          `json:"sizeBytes"`
	Counts        model.Counts `json:"counts"`
	DurationMs    float64      `json:"durationMs"`
	CreatedAt     time.Time    `json:"createdAt"`
}

func toResponse(gen Generation) generationResponse {
	return generationResponse{
		ID:            gen.ID,
		RequestID:     gen.RequestID,
		ContentSHA256: gen.ContentSHA256,
		SizeBytes:     gen.SizeBytes,
		Counts:        gen.Counts,
		DurationMs:    float64(gen.Duration.Microseconds()) / 1000.0,
		CreatedAt:     gen.CreatedAt,
	}
}

func (h *Handler) list(c *gin.Context) {
	limit := queryInt(c, "limit", defaultListLimit)
	offset := queryInt(c, "offset", 0)
	limit, offset = normalizePage(limit, offset)

	gens, err := h.Repo.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list generations", nil)
		return
	}

	items := make([]generationResponse, 0, len(gens))
	for _, gen := range gens {
		items = append(items, toResponse(gen))
	}
	respond.OK(c, gin.H{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *Handler) get(c *gin.Context) {
	gen, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "generation not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load generation", nil)
		return
	}
	respond.OK(c, toResponse(gen))
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
