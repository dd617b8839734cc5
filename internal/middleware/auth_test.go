package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"lexconnect/internal/config"
	"lexconnect/internal/domain"
	"lexconnect/internal/middleware"
	"lexconnect/internal/service"
	"lexconnect/mocks"
)

func newTestAuth(t *testing.T, role domain.UserRole) (service.AuthService, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &domain.User{
		ID:           "USR001",
		Name:         "Juan Pérez",
		Email:        "juan@test.com",
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}

	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "juan@test.com").Return(user, nil)

	svc := service.NewAuthService(repo, config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  time.Minute,
		RefreshTokenExpiry: time.Hour,
		Issuer:             "lexconnect-test",
	})

	tokens, _, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "juan@test.com",
		Password: "secret123",
	})
	assert.NoError(t, err)

	return svc, tokens.AccessToken
}

func protectedRouter(authSvc service.AuthService, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{middleware.AuthMiddleware(authSvc)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		ident, err := middleware.GetIdentity(c)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": ident.Name, "role": string(ident.Role)})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware_ValidTokenInjectsIdentity(t *testing.T) {
	authSvc, token := newTestAuth(t, domain.RoleClient)
	r := protectedRouter(authSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Juan Pérez")
	assert.Contains(t, w.Body.String(), string(domain.RoleClient))
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	authSvc, _ := newTestAuth(t, domain.RoleClient)
	r := protectedRouter(authSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	authSvc, _ := newTestAuth(t, domain.RoleClient)
	r := protectedRouter(authSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RefreshTokenRejectedOnAccessRoute(t *testing.T) {
	authSvc, _ := newTestAuth(t, domain.RoleClient)
	r := protectedRouter(authSvc)

	// Log in again to get the refresh token for the same user.
	tokens, _, err := authSvc.Login(context.Background(), service.LoginInput{
		Email:    "juan@test.com",
		Password: "secret123",
	})
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.RefreshToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	authSvc, token := newTestAuth(t, domain.RoleAdmin)
	r := protectedRouter(authSvc, middleware.RequireRole(domain.RoleAdmin))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_RejectsOtherRoles(t *testing.T) {
	authSvc, token := newTestAuth(t, domain.RoleAttorney)
	r := protectedRouter(authSvc, middleware.RequireRole(domain.RoleAdmin))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
