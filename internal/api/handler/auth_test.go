package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return NewHandler(nil, nil, nil, "test-secret")
}

func TestTokenRoundTrip(t *testing.T) {
	h := newTestHandler()

	token, err := h.generateToken("anon-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	anonID, err := h.validateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "anon-123", anonID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	minted := NewHandler(nil, nil, nil, "secret-a")
	verifier := NewHandler(nil, nil, nil, "secret-b")

	token, err := minted.generateToken("anon-123")
	require.NoError(t, err)

	_, err = verifier.validateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	h := newTestHandler()

	_, err := h.validateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestGetAnonIDMintsUsableToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandler()

	router := gin.New()
	router.GET("/anonid", h.GetAnonID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/anonid", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Token  string `json:"token"`
		AnonID string `json:"anon_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	require.NotEmpty(t, body.AnonID)

	anonID, err := h.validateToken(body.Token)
	require.NoError(t, err)
	assert.Equal(t, body.AnonID, anonID)
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandler()

	router := gin.New()
	router.GET("/healthz", h.Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestWebSocketUpgradeRequiresToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandler()

	router := gin.New()
	router.GET("/ws", h.ServeWebSocket)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws?token=bogus", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
