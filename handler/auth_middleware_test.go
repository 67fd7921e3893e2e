// handler/auth_middleware_test.go
package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Sifundo-B/BankApi/config"
	"github.com/Sifundo-B/BankApi/logger"
	"github.com/Sifundo-B/BankApi/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init()
	config.AppConfig.JWT.SecretKey = "test-secret"
	os.Exit(m.Run())
}

func signTestToken(t *testing.T, userID int, role model.Role, lifetime time.Duration) string {
	t.Helper()
	claims := &model.AppClaims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWT.SecretKey))
	assert.NoError(t, err)
	return tokenString
}

func TestAuthMiddleware(t *testing.T) {
	var gotUserID int
	var gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value(UserIDKey).(int)
		gotRole, _ = r.Context().Value(UserRoleKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/accounts", nil)
		rr := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Authorization header is required")
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/accounts", nil)
		req.Header.Set("Authorization", "Token abc")
		rr := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid authorization header format")
	})

	t.Run("expired token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/accounts", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, 1, model.RoleAdmin, -time.Minute))
		rr := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid or expired token")
	})

	t.Run("valid token populates the context", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/accounts", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, 42, model.RoleBanker, time.Hour))
		rr := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 42, gotUserID)
		assert.Equal(t, "Banker", gotRole)
	})
}

func TestRequireRoles(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := AuthMiddleware(RequireRoles(model.RoleAdmin, model.RoleAuditor)(next))

	t.Run("allowed role passes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/audit/by-date", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, 1, model.RoleAuditor, time.Hour))
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/audit/by-date", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, 2, model.RoleCustomer, time.Hour))
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "Access denied. Insufficient privileges.")
	})

	t.Run("missing role in context is forbidden", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/audit/by-date", nil)
		rr := httptest.NewRecorder()

		RequireRoles(model.RoleAdmin)(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
