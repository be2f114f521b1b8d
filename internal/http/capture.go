package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nlfmt/huepick/internal/capture"
	"github.com/nlfmt/huepick/internal/utils"
)

type CaptureController struct {
	trigger *capture.Trigger
}

func NewCaptureController(trigger *capture.Trigger) *CaptureController {
	return &CaptureController{trigger: trigger}
}

// Arm puts the trigger into the armed state. Arming while already armed
// is reported but not an error; only one capture is ever in flight.
func (c *CaptureController) Arm(ctx *gin.Context) {
	armed := c.trigger.Arm()
	ctx.JSON(http.StatusOK, gin.H{"armed": armed, "state": c.trigger.State().String()})
}

type confirmCaptureRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Confirm reads the pixel under the reported cursor position.
func (c *CaptureController) Confirm(ctx *gin.Context) {
	var req confirmCaptureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "x and y are required"})
		return
	}

	color, err := c.trigger.Confirm(req.X, req.Y)
	switch {
	case errors.Is(err, capture.ErrNotArmed):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, capture.ErrCaptureUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"color": utils.FormatHexColor(color.R, color.G, color.B),
		"rgba":  gin.H{"r": color.R, "g": color.G, "b": color.B, "a": color.A},
	})
}

// Cancel returns the trigger to idle without reading anything.
func (c *CaptureController) Cancel(ctx *gin.Context) {
	cancelled := c.trigger.Cancel()
	ctx.JSON(http.StatusOK, gin.H{"cancelled": cancelled, "state": c.trigger.State().String()})
}

// State reports whether a capture is in flight.
func (c *CaptureController) State(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"state": c.trigger.State().String()})
}
