package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"calltrack/internal/auth"
	"calltrack/internal/middleware"
	"calltrack/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(tm *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protected := r.Group("/")
	protected.Use(middleware.SessionRequired(tm))

	protected.GET("/profile", func(c *gin.Context) {
		identity := middleware.CallerIdentity(c)
		c.JSON(http.StatusOK, identity)
	})
	protected.POST("/tags", middleware.RequireOperation(middleware.OpTagsCreate), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})

	return r
}

func sessionToken(t *testing.T, tm *auth.TokenManager, role string) string {
	t.Helper()
	token, err := tm.Generate(&model.User{ID: 7, Username: "u1", Role: role})
	assert.NoError(t, err)
	return token
}

func TestSessionRequired_ValidCookie(t *testing.T) {
	tm := auth.NewTokenManager("test-secret-key", time.Hour)
	router := setupRouter(tm)

	req, _ := http.NewRequest("GET", "/profile", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: sessionToken(t, tm, model.RoleUser)})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"username":"u1"`)
	assert.Contains(t, resp.Body.String(), `"role":"user"`)
}

func TestSessionRequired_BearerFallback(t *testing.T) {
	tm := auth.NewTokenManager("test-secret-key", time.Hour)
	router := setupRouter(tm)

	req, _ := http.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, tm, model.RoleUser))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestSessionRequired_NoSession(t *testing.T) {
	tm := auth.NewTokenManager("test-secret-key", time.Hour)
	router := setupRouter(tm)

	req, _ := http.NewRequest("GET", "/profile", nil)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Authentication required")
}

func TestSessionRequired_InvalidToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret-key", time.Hour)
	router := setupRouter(tm)

	req, _ := http.NewRequest("GET", "/profile", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "garbage"})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid or expired token")
}

func TestSessionRequired_ExpiredToken(t *testing.T) {
	expired := auth.NewTokenManager("test-secret-key", -time.Hour)
	tm := auth.NewTokenManager("test-secret-key", time.Hour)
	router := setupRouter(tm)

	req, _ := http.NewRequest("GET", "/profile", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: sessionToken(t, expired, model.RoleUser)})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestRequireOperation_AdminAllowed(t *testing.T) {
	tm := auth.NewTokenManager("test-secret-key", time.Hour)
	router := setupRouter(tm)

	req, _ := http.NewRequest("POST", "/tags", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: sessionToken(t, tm, model.RoleAdmin)})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestRequireOperation_UserForbidden(t *testing.T) {
	tm := auth.NewTokenManager("test-secret-key", time.Hour)
	router := setupRouter(tm)

	req, _ := http.NewRequest("POST", "/tags", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: sessionToken(t, tm, model.RoleUser)})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Contains(t, resp.Body.String(), "Insufficient permissions")
}
