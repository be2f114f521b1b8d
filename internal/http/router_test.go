package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/nlfmt/huepick/internal/capture"
	"github.com/nlfmt/huepick/internal/database"
	historyrepo "github.com/nlfmt/huepick/internal/database/history"
	settingsrepo "github.com/nlfmt/huepick/internal/database/settings"
	windowrepo "github.com/nlfmt/huepick/internal/database/window"
	"github.com/nlfmt/huepick/internal/historystore"
	"github.com/nlfmt/huepick/internal/settingsstore"
	"github.com/nlfmt/huepick/internal/windowstate"
)

type stubProvider struct {
	color capture.RGBA
	err   error
}

func (p *stubProvider) PixelAt(x, y int) (capture.RGBA, error) {
	if p.err != nil {
		return capture.RGBA{}, p.err
	}
	return p.color, nil
}

type testEnv struct {
	router   *gin.Engine
	db       *database.Database
	settings *settingsstore.Store
	history  *historystore.Store
	trigger  *capture.Trigger
	provider *stubProvider
	saver    *windowstate.Saver
}

func setupRouter(t *testing.T) (*testEnv, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	settingsStore := settingsstore.New(settingsrepo.NewRepository(db.DB))
	historyStore := historystore.New(historyrepo.NewRepository(db.DB), settingsStore)
	windowStore := windowstate.NewStore(windowrepo.NewRepository(db.DB))
	saver := windowstate.NewSaver(windowStore, 5*time.Millisecond)
	provider := &stubProvider{color: capture.RGBA{R: 255, G: 136, B: 0, A: 255}}
	trigger := capture.NewTrigger(provider)

	env := &testEnv{
		db:       db,
		settings: settingsStore,
		history:  historyStore,
		trigger:  trigger,
		provider: provider,
		saver:    saver,
	}
	env.router = NewRouter(RouterConfig{
		Database:    db,
		Settings:    settingsStore,
		History:     historyStore,
		WindowStore: windowStore,
		WindowSaver: saver,
		Trigger:     trigger,
		Displays:    []windowstate.Display{{X: 0, Y: 0, Width: 1920, Height: 1080}},
		Version:     "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return env, cleanup
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}
