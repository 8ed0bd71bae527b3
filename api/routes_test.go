package api

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nxterminal/protocol-wars/core"
	"github.com/nxterminal/protocol-wars/engine"
	"github.com/nxterminal/protocol-wars/storage"
)

const testWallet = "0xAbCd111122223333444455556666777788889999"

func newTestAPI(t *testing.T) (*gin.Engine, *storage.Store, *engine.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	eng := engine.New(store, nil, rand.New(rand.NewSource(1)), zap.NewNop().Sugar())
	return NewRouter(store, eng), store, eng
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDevEndpoints(t *testing.T) {
	router, _, eng := newTestAPI(t)
	dev, err := eng.MintDev(0, testWallet, "CLOSED_AI")
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodGet, "/api/devs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var devs []core.Dev
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &devs))
	require.Len(t, devs, 1)
	assert.Equal(t, dev.Name, devs[0].Name)

	w = doJSON(t, router, http.MethodGet, "/api/devs/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/devs/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/devs?owner=not-a-wallet", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/devs?owner="+testWallet, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &devs))
	assert.Len(t, devs, 1, "owner filter is case-insensitive on the address")
}

func TestPromptEndpointOwnershipAndBackpressure(t *testing.T) {
	router, _, eng := newTestAPI(t)
	_, err := eng.MintDev(1, testWallet, "Y_AI")
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/api/prompts", gin.H{
		"player_address": "nope", "dev_id": 1, "prompt_text": "build something"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/prompts", gin.H{
		"player_address": "0x0000000000000000000000000000000000000bad",
		"dev_id":         1, "prompt_text": "build something"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/prompts", gin.H{
		"player_address": testWallet, "dev_id": 99, "prompt_text": "build something"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/prompts", gin.H{
		"player_address": testWallet, "dev_id": 1, "prompt_text": "build me a defi protocol"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "queued", resp["status"])

	// One pending prompt per dev.
	w = doJSON(t, router, http.MethodPost, "/api/prompts", gin.H{
		"player_address": testWallet, "dev_id": 1, "prompt_text": "and an nft too"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestMintWebhook(t *testing.T) {
	router, store, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/internal/mint", gin.H{
		"owner_address": testWallet, "corporation": "ZUCK_LABS"})
	require.Equal(t, http.StatusOK, w.Code)

	var dev core.Dev
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dev))
	assert.Equal(t, int64(1), dev.TokenID)

	stored, err := store.GetDev(1)
	require.NoError(t, err)
	assert.Equal(t, dev.Name, stored.Name)

	w = doJSON(t, router, http.MethodPost, "/internal/mint", gin.H{
		"owner_address": testWallet})
	assert.Equal(t, http.StatusBadRequest, w.Code, "corporation is required")
}

func TestStatusAndLeaderboard(t *testing.T) {
	router, _, eng := newTestAPI(t)
	for i := 0; i < 3; i++ {
		_, err := eng.MintDev(0, testWallet, "FED_RESERVE")
		require.NoError(t, err)
	}

	w := doJSON(t, router, http.MethodGet, "/api/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	stats := status["stats"].(map[string]any)
	assert.Equal(t, float64(3), stats["total_devs"])

	w = doJSON(t, router, http.MethodGet, "/api/leaderboard?by=reputation", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/leaderboard?by=vibes", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWorldEventEndpoint(t *testing.T) {
	router, store, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/events", gin.H{"duration_hours": 2})
	require.Equal(t, http.StatusOK, w.Code)

	events, err := store.ListWorldEvents(10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].IsActive)

	w = doJSON(t, router, http.MethodGet, "/api/events", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
