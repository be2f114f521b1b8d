package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nlfmt/huepick/internal/entities"
	"github.com/nlfmt/huepick/internal/historystore"
)

type HistoryController struct {
	store *historystore.Store
}

func NewHistoryController(store *historystore.Store) *HistoryController {
	return &HistoryController{store: store}
}

// List returns recorded colors, most recent first. ?limit= caps the
// returned count without touching stored data.
func (c *HistoryController) List(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	entries, err := c.store.List(limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"history": entries, "count": len(entries)})
}

type addHistoryRequest struct {
	Color  string `json:"color" binding:"required"`
	Source string `json:"source"`
}

// Add records a manually entered color (e.g. from the color dialog).
func (c *HistoryController) Add(ctx *gin.Context) {
	var req addHistoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "color is required"})
		return
	}

	source := req.Source
	if source == "" {
		source = entities.CaptureSourceManual
	}

	id, err := c.store.Add(req.Color, time.Now(), source)
	if errors.Is(err, historystore.ErrNotRecorded) {
		ctx.JSON(http.StatusOK, gin.H{"recorded": false})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"recorded": true, "id": id})
}

func (c *HistoryController) Clear(ctx *gin.Context) {
	if err := c.store.Clear(); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "history cleared"})
}
