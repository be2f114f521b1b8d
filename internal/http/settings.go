package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nlfmt/huepick/internal/settingsstore"
)

type SettingsController struct {
	store *settingsstore.Store
}

func NewSettingsController(store *settingsstore.Store) *SettingsController {
	return &SettingsController{store: store}
}

type settingResponse struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Default string `json:"default"`
}

// List returns the effective value of every recognized setting.
func (c *SettingsController) List(ctx *gin.Context) {
	values := c.store.All()

	settings := make([]settingResponse, 0, len(values))
	for _, key := range settingsstore.Keys() {
		def, _ := settingsstore.Lookup(key)
		settings = append(settings, settingResponse{
			Key:     key,
			Value:   values[key],
			Default: def.Default,
		})
	}
	ctx.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (c *SettingsController) Get(ctx *gin.Context) {
	key := ctx.Param("key")

	value, err := c.store.Get(key)
	if err != nil {
		respondSettingsError(ctx, err)
		return
	}

	def, _ := settingsstore.Lookup(key)
	ctx.JSON(http.StatusOK, settingResponse{Key: key, Value: value, Default: def.Default})
}

type setSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

func (c *SettingsController) Set(ctx *gin.Context) {
	key := ctx.Param("key")

	var req setSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "value is required"})
		return
	}

	if err := c.store.Set(key, req.Value); err != nil {
		respondSettingsError(ctx, err)
		return
	}

	value, _ := c.store.Get(key)
	ctx.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

func (c *SettingsController) Reset(ctx *gin.Context) {
	if err := c.store.ResetToDefaults(); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "settings reset to defaults"})
}

func respondSettingsError(ctx *gin.Context, err error) {
	var verr *settingsstore.ValidationError
	switch {
	case errors.Is(err, settingsstore.ErrUnknownKey):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &verr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
