package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nlfmt/huepick/internal/entities"
	"github.com/nlfmt/huepick/internal/windowstate"
)

type WindowController struct {
	store    *windowstate.Store
	saver    *windowstate.Saver
	displays []windowstate.Display
}

func NewWindowController(store *windowstate.Store, saver *windowstate.Saver, displays []windowstate.Display) *WindowController {
	return &WindowController{store: store, saver: saver, displays: displays}
}

// Get returns the persisted geometry, clamped to the known displays.
func (c *WindowController) Get(ctx *gin.Context) {
	state, err := c.store.Load(c.displays)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, state)
}

type putWindowRequest struct {
	X           int  `json:"x"`
	Y           int  `json:"y"`
	Width       int  `json:"width" binding:"required,gt=0"`
	Height      int  `json:"height" binding:"required,gt=0"`
	AlwaysOnTop bool `json:"always_on_top"`
}

// Put schedules the geometry for persistence. Writes are debounced, so
// the UI may call this on every move event.
func (c *WindowController) Put(ctx *gin.Context) {
	var req putWindowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "width and height must be positive"})
		return
	}

	c.saver.Save(entities.WindowState{
		X:           req.X,
		Y:           req.Y,
		Width:       req.Width,
		Height:      req.Height,
		AlwaysOnTop: req.AlwaysOnTop,
	})
	ctx.JSON(http.StatusAccepted, gin.H{"message": "window state scheduled"})
}
