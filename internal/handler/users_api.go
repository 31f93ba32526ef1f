package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/logger"
	"github.com/polidog/web/internal/service"
	"github.com/polidog/web/internal/validator"
)

// UserAPIHandler serves the /api/users collection.
type UserAPIHandler struct {
	users service.UserServiceInterface
}

// NewUserAPIHandler creates a new UserAPIHandler.
func NewUserAPIHandler(users service.UserServiceInterface) *UserAPIHandler {
	return &UserAPIHandler{users: users}
}

// UserAPIResponse is the envelope of every /api/users answer.
type UserAPIResponse struct {
	Success bool                   `json:"success"`
	Data    interface{}            `json:"data,omitempty"`
	Message string                 `json:"message,omitempty"`
	Error   string                 `json:"error,omitempty"`
	Errors  []validator.FieldError `json:"errors,omitempty"`
}

// RegisterRoutes mounts the collection on r.
func (h *UserAPIHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/users", h.List)
	r.POST("/api/users", h.Create)
	r.DELETE("/api/users", h.Delete)
}

// List handles GET /api/users
func (h *UserAPIHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		logger.ErrorContext(c.Request.Context(), "Failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, UserAPIResponse{Error: "failed to fetch users"})
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	c.JSON(http.StatusOK, UserAPIResponse{Success: true, Data: users})
}

// Create handles POST /api/users
func (h *UserAPIHandler) Create(c *gin.Context) {
	var in validator.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, UserAPIResponse{Error: "request body must be JSON with name and email"})
		return
	}

	user, err := h.users.Create(c.Request.Context(), in, false)
	if err != nil {
		if fe, ok := validator.AsFieldErrors(err); ok {
			c.JSON(http.StatusBadRequest, UserAPIResponse{Error: fe.Error(), Errors: fe.Errors})
			return
		}
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, UserAPIResponse{Error: "email already in use"})
		case errors.Is(err, domain.ErrEmailNotAllowed):
			c.JSON(http.StatusForbidden, UserAPIResponse{Error: "email address is not allowed"})
		default:
			logger.ErrorContext(c.Request.Context(), "Failed to create user", "error", err)
			c.JSON(http.StatusInternalServerError, UserAPIResponse{Error: "failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, UserAPIResponse{Success: true, Data: user})
}

// Delete handles DELETE /api/users?id=
func (h *UserAPIHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, UserAPIResponse{Error: "id is required"})
		return
	}
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, UserAPIResponse{Error: "id must be a UUID"})
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, UserAPIResponse{Error: "user not found"})
			return
		}
		logger.ErrorContext(c.Request.Context(), "Failed to delete user", "user_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, UserAPIResponse{Error: "failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, UserAPIResponse{Success: true, Message: "User deleted"})
}
