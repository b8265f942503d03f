package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sushichat/models"
	"sushichat/services/chat"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRecipeService struct{}

func (stubRecipeService) Lookup(_ context.Context, dishName, _ string) string {
	return "Ingredientes de " + dishName
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := chat.LoadCatalog("../data/intents.json")
	require.NoError(t, err)

	engine := chat.NewDefaultChatEngine(catalog, stubRecipeService{}, "", zap.NewNop())
	engine.Pick = func(int) int { return 0 }

	router := gin.New()
	router.POST("/chat", NewChatHandler(engine))
	router.GET("/intents", NewIntentsHandler(catalog))
	return router
}

func postChat(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatHandlerMissingMessage(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []string{`{}`, `{"message": ""}`, `not json`} {
		w := postChat(t, router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Mensagem não fornecida", resp["error"])
	}
}

func TestChatHandlerTurn(t *testing.T) {
	router := newTestRouter(t)

	w := postChat(t, router, `{"message": "Oi"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cumprimento", resp.Intent)
	assert.Equal(t, 30.0, resp.Probability)
	assert.Equal(t, 1, resp.SentencesProcessed)
	assert.False(t, resp.MultipleSentences)
	assert.False(t, resp.AwaitingDishSelection)
	assert.NotEmpty(t, resp.Response)
}

func TestChatHandlerSelectionRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	// First turn opens the sub-dialogue.
	w := postChat(t, router, `{"message": "Quais os ingredientes do yakissoba?"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var first models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	require.True(t, first.AwaitingDishSelection)

	// The caller round-trips the selection with a credential.
	w = postChat(t, router, `{"message": "1", "pending_selection": "1", "credential": "test-key"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var second models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.False(t, second.AwaitingDishSelection)
	assert.Contains(t, second.Response, "Lasanha:\nIngredientes de lasanha")
}

func TestIntentsHandler(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/intents", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var catalog models.IntentCatalog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalog))
	assert.NotEmpty(t, catalog.Intents)
}
