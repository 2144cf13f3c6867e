//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"deskbook/internal/domain/user"
	"deskbook/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenValidator struct {
	userID uuid.UUID
	role   user.Role
	err    error
}

func (s *stubTokenValidator) ValidateToken(string) (uuid.UUID, user.Role, error) {
	return s.userID, s.role, s.err
}

func newAuthRouter(validator *stubTokenValidator, minRole user.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := middleware.NewAuthMiddleware(validator)

	router := gin.New()
	group := router.Group("/", auth.RequireAuth())
	group.GET("/me", func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})
	group.GET("/admin", auth.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func performAuthRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	t.Run("valid bearer token passes and sets the user context", func(t *testing.T) {
		router := newAuthRouter(&stubTokenValidator{userID: userID, role: user.RoleEmployee}, user.RoleAdmin)

		w := performAuthRequest(router, "/me", "Bearer token")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		router := newAuthRouter(&stubTokenValidator{userID: userID, role: user.RoleEmployee}, user.RoleAdmin)

		w := performAuthRequest(router, "/me", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		router := newAuthRouter(&stubTokenValidator{userID: userID, role: user.RoleEmployee}, user.RoleAdmin)

		w := performAuthRequest(router, "/me", "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		router := newAuthRouter(&stubTokenValidator{err: errors.New("expired")}, user.RoleAdmin)

		w := performAuthRequest(router, "/me", "Bearer bad-token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	t.Run("admin passes the admin gate", func(t *testing.T) {
		router := newAuthRouter(&stubTokenValidator{userID: uuid.New(), role: user.RoleAdmin}, user.RoleAdmin)

		w := performAuthRequest(router, "/admin", "Bearer token")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("employee is blocked from the admin gate", func(t *testing.T) {
		router := newAuthRouter(&stubTokenValidator{userID: uuid.New(), role: user.RoleEmployee}, user.RoleAdmin)

		w := performAuthRequest(router, "/admin", "Bearer token")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("employee passes an employee gate", func(t *testing.T) {
		router := newAuthRouter(&stubTokenValidator{userID: uuid.New(), role: user.RoleEmployee}, user.RoleEmployee)

		w := performAuthRequest(router, "/admin", "Bearer token")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
