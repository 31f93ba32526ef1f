package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/mocks"
	"github.com/polidog/web/internal/validator"
)

func newUsersRouter(svc *mocks.MockUserServiceInterface) *gin.Engine {
	router := gin.New()
	NewUserAPIHandler(svc).RegisterRoutes(router)
	return router
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeUsersResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var res map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestUserAPIHandler_List(t *testing.T) {
	t.Run("returns users", func(t *testing.T) {
		svc := mocks.NewMockUserServiceInterface(t)
		svc.EXPECT().List(mock.Anything).Return([]domain.User{{ID: "u1", Email: "a@example.com"}}, nil)

		w := doRequest(newUsersRouter(svc), http.MethodGet, "/api/users", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		res := decodeUsersResponse(t, w)
		assert.Equal(t, true, res["success"])
		assert.Len(t, res["data"], 1)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		svc := mocks.NewMockUserServiceInterface(t)
		svc.EXPECT().List(mock.Anything).Return(nil, nil)

		w := doRequest(newUsersRouter(svc), http.MethodGet, "/api/users", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := mocks.NewMockUserServiceInterface(t)
		svc.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

		w := doRequest(newUsersRouter(svc), http.MethodGet, "/api/users", nil, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		res := decodeUsersResponse(t, w)
		assert.Equal(t, false, res["success"])
		assert.Equal(t, "failed to fetch users", res["error"])
	})
}

func TestUserAPIHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		callsSvc   bool
		wantStatus int
	}{
		{name: "created", body: `{"name":"Jane","email":"jane@example.com"}`, callsSvc: true, wantStatus: http.StatusCreated},
		{name: "malformed body", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "invalid input", body: `{"name":"Jane"}`, callsSvc: true, serviceErr: (&validator.FieldErrors{}).Add("email", "email_required"), wantStatus: http.StatusBadRequest},
		{name: "duplicate", body: `{"name":"Jane","email":"jane@example.com"}`, callsSvc: true, serviceErr: domain.ErrDuplicateEmail, wantStatus: http.StatusConflict},
		{name: "not allowed", body: `{"name":"Eve","email":"eve@example.com"}`, callsSvc: true, serviceErr: domain.ErrEmailNotAllowed, wantStatus: http.StatusForbidden},
		{name: "store failure", body: `{"name":"Jane","email":"jane@example.com"}`, callsSvc: true, serviceErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockUserServiceInterface(t)
			if tt.callsSvc {
				var user *domain.User
				if tt.serviceErr == nil {
					user = &domain.User{ID: "u1", Name: "Jane", Email: "jane@example.com"}
				}
				svc.EXPECT().Create(mock.Anything, mock.AnythingOfType("validator.UserInput"), false).Return(user, tt.serviceErr)
			}

			w := postJSON(newUsersRouter(svc), tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			res := decodeUsersResponse(t, w)
			assert.Equal(t, tt.serviceErr == nil && tt.wantStatus == http.StatusCreated, res["success"])
		})
	}
}

func TestUserAPIHandler_Delete(t *testing.T) {
	const (
		userID  = "5b0b5c1e-8f2a-4c3d-9e41-2f6a7d8c9b10"
		ghostID = "00000000-0000-4000-8000-000000000000"
	)

	t.Run("requires id", func(t *testing.T) {
		svc := mocks.NewMockUserServiceInterface(t)

		w := doRequest(newUsersRouter(svc), http.MethodDelete, "/api/users", nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := mocks.NewMockUserServiceInterface(t)

		w := doRequest(newUsersRouter(svc), http.MethodDelete, "/api/users?id=not-a-uuid", nil, nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		res := decodeUsersResponse(t, w)
		assert.Equal(t, false, res["success"])
		assert.Equal(t, "id must be a UUID", res["error"])
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := mocks.NewMockUserServiceInterface(t)
		svc.EXPECT().Delete(mock.Anything, ghostID).Return(domain.ErrNotFound)

		w := doRequest(newUsersRouter(svc), http.MethodDelete, "/api/users?id="+ghostID, nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("deleted", func(t *testing.T) {
		svc := mocks.NewMockUserServiceInterface(t)
		svc.EXPECT().Delete(mock.Anything, userID).Return(nil)

		w := doRequest(newUsersRouter(svc), http.MethodDelete, "/api/users?id="+userID, nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		res := decodeUsersResponse(t, w)
		assert.Equal(t, true, res["success"])
		assert.Equal(t, "User deleted", res["message"])
	})

	t.Run("store failure", func(t *testing.T) {
		svc := mocks.NewMockUserServiceInterface(t)
		svc.EXPECT().Delete(mock.Anything, userID).Return(errors.New("db down"))

		w := doRequest(newUsersRouter(svc), http.MethodDelete, "/api/users?id="+userID, nil, nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
