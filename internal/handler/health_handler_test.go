package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/polidog/web/internal/mocks"
)

func newHealthRouter(db Pinger) *gin.Engine {
	router := gin.New()
	NewHealthHandler(db, "test").RegisterRoutes(router)
	return router
}

func TestHealthHandler_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		db := mocks.NewMockPinger(t)
		db.EXPECT().Ping(mock.Anything).Return(nil)

		w := doRequest(newHealthRouter(db), http.MethodGet, "/health", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		var res HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "healthy", res.Status)
		assert.Equal(t, "test", res.Version)
		assert.Equal(t, "healthy", res.Services["database"])
	})

	t.Run("database down", func(t *testing.T) {
		db := mocks.NewMockPinger(t)
		db.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused"))

		w := doRequest(newHealthRouter(db), http.MethodGet, "/health", nil, nil)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var res HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "unhealthy", res.Services["database"])
	})
}

func TestHealthHandler_Ready(t *testing.T) {
	db := mocks.NewMockPinger(t)
	db.EXPECT().Ping(mock.Anything).Return(errors.New("down")).Once()
	db.EXPECT().Ping(mock.Anything).Return(nil).Once()
	router := newHealthRouter(db)

	assert.Equal(t, http.StatusServiceUnavailable, doRequest(router, http.MethodGet, "/ready", nil, nil).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/ready", nil, nil).Code)
}

func TestHealthHandler_Live(t *testing.T) {
	db := mocks.NewMockPinger(t)

	w := doRequest(newHealthRouter(db), http.MethodGet, "/live", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alive")
}
