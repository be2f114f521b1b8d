package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlfmt/huepick/internal/entities"
)

func seedHistory(t *testing.T, env *testEnv, colors ...string) {
	t.Helper()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, color := range colors {
		_, err := env.history.Add(color, base.Add(time.Duration(i)*time.Second), entities.CaptureSourceScreenPicker)
		require.NoError(t, err)
	}
}

func TestHistoryController_List(t *testing.T) {
	env, cleanup := setupRouter(t)
	defer cleanup()

	seedHistory(t, env, "#FF0000", "#00FF00", "#0000FF")

	w := env.do(t, "GET", "/api/history", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	payload := decode(t, w)
	assert.EqualValues(t, 3, payload["count"])

	entries := payload["history"].([]any)
	first := entries[0].(map[string]any)
	assert.Equal(t, "#0000FF", first["color"])
}

func TestHistoryController_List_Limit(t *testing.T) {
	env, cleanup := setupRouter(t)
	defer cleanup()

	seedHistory(t, env, "#FF0000", "#00FF00", "#0000FF")

	w := env.do(t, "GET", "/api/history?limit=2", nil)

	payload := decode(t, w)
	assert.EqualValues(t, 2, payload["count"])
}

func TestHistoryController_List_BadLimit(t *testing.T) {
	env, cleanup := setupRouter(t)
	defer cleanup()

	w := env.do(t, "GET", "/api/history?limit=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistoryController_Add(t *testing.T) {
	env, cleanup := setupRouter(t)
	defer cleanup()

	w := env.do(t, "POST", "/api/history", map[string]string{"color": "ff8800"})

	assert.Equal(t, http.StatusCreated, w.Code)
	payload := decode(t, w)
	assert.Equal(t, true, payload["recorded"])

	entries, err := env.history.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "#FF8800", entries[0].Color)
	assert.Equal(t, entities.CaptureSourceManual, entries[0].Source)
}

func TestHistoryController_Add_RecordingDisabled(t *testing.T) {
	env, cleanup := setupRouter(t)
	defer cleanup()

	require.NoError(t, env.settings.Set(entities.SettingKeySaveHistory, "false"))

	w := env.do(t, "POST", "/api/history", map[string]string{"color": "#FF0000"})

	assert.Equal(t, http.StatusOK, w.Code)
	payload := decode(t, w)
	assert.Equal(t, false, payload["recorded"])
}

func TestHistoryController_Add_InvalidColor(t *testing.T) {
	env, cleanup := setupRouter(t)
	defer cleanup()

	w := env.do(t, "POST", "/api/history", map[string]string{"color": "chartreuse"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistoryController_Clear(t *testing.T) {
	env, cleanup := setupRouter(t)
	defer cleanup()

	seedHistory(t, env, "#FF0000", "#00FF00")

	w := env.do(t, "DELETE", "/api/history", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	entries, err := env.history.List(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
