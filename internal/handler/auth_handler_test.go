package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"calltrack/internal/auth"
	"calltrack/internal/handler"
	"calltrack/internal/middleware"
	"calltrack/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthTest() (*gin.Engine, *MockUserStore, *auth.TokenManager) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mockUsers := new(MockUserStore)
	tm := auth.NewTokenManager("test-secret", time.Hour)
	authHandler := handler.NewAuthHandler(mockUsers, tm, 3600, false)

	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/logout", authHandler.Logout)
	r.POST("/auth/register", authHandler.Register)
	r.GET("/auth/profile", middleware.SessionRequired(tm), authHandler.Profile)

	return r, mockUsers, tm
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestLogin_Success(t *testing.T) {
	router, mockUsers, _ := setupAuthTest()

	user := &model.User{ID: 1, Username: "u1", PasswordHash: hashPassword(t, "pw"), Role: model.RoleUser}
	mockUsers.On("FindByUsername", mock.Anything, "u1").Return(user, nil)

	resp := postJSON(router, "/auth/login", handler.LoginRequest{Username: "u1", Password: "pw"})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"success":true`)

	// Session token delivered as an http-only cookie
	cookies := resp.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, auth.SessionCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)

	mockUsers.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, mockUsers, _ := setupAuthTest()

	user := &model.User{ID: 1, Username: "u1", PasswordHash: hashPassword(t, "pw"), Role: model.RoleUser}
	mockUsers.On("FindByUsername", mock.Anything, "u1").Return(user, nil)

	resp := postJSON(router, "/auth/login", handler.LoginRequest{Username: "u1", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid credentials")
}

func TestLogin_UnknownUser_SameResponseAsWrongPassword(t *testing.T) {
	router, mockUsers, _ := setupAuthTest()

	mockUsers.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)

	resp := postJSON(router, "/auth/login", handler.LoginRequest{Username: "ghost", Password: "pw"})

	// Must not reveal whether the username exists
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid credentials")
}

func TestLogin_SessionUsableForProtectedRoute(t *testing.T) {
	router, mockUsers, _ := setupAuthTest()

	user := &model.User{ID: 1, Username: "u1", PasswordHash: hashPassword(t, "pw"), Role: model.RoleUser}
	mockUsers.On("FindByUsername", mock.Anything, "u1").Return(user, nil)

	loginResp := postJSON(router, "/auth/login", handler.LoginRequest{Username: "u1", Password: "pw"})
	assert.Equal(t, http.StatusOK, loginResp.Code)

	req, _ := http.NewRequest("GET", "/auth/profile", nil)
	for _, cookie := range loginResp.Result().Cookies() {
		req.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"username":"u1"`)
	assert.Contains(t, resp.Body.String(), `"role":"user"`)
}

func TestLogout_ClearsCookie(t *testing.T) {
	router, _, _ := setupAuthTest()

	resp := postJSON(router, "/auth/logout", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	cookies := resp.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, auth.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestRegister_Success(t *testing.T) {
	router, mockUsers, _ := setupAuthTest()

	mockUsers.On("FindByUsername", mock.Anything, "newuser").Return(nil, nil)
	mockUsers.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	resp := postJSON(router, "/auth/register", handler.RegisterRequest{Username: "newuser", Password: "password123"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"username":"newuser"`)
	assert.Contains(t, resp.Body.String(), `"role":"user"`)

	mockUsers.AssertExpectations(t)
}

func TestRegister_UsernameTaken(t *testing.T) {
	router, mockUsers, _ := setupAuthTest()

	existing := &model.User{ID: 1, Username: "taken", PasswordHash: "x", Role: model.RoleUser}
	mockUsers.On("FindByUsername", mock.Anything, "taken").Return(existing, nil)

	resp := postJSON(router, "/auth/register", handler.RegisterRequest{Username: "taken", Password: "password123"})

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), "Username already exists")
}

func TestProfile_NoSession(t *testing.T) {
	router, _, _ := setupAuthTest()

	req, _ := http.NewRequest("GET", "/auth/profile", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
