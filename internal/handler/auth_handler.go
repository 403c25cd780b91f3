package handler

import (
	"net/http"
	"strings"

	"calltrack/internal/auth"
	"calltrack/internal/middleware"
	"calltrack/internal/model"
	"calltrack/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	users        repository.UserStore
	tokens       *auth.TokenManager
	cookieMaxAge int
	cookieSecure bool
}

func NewAuthHandler(users repository.UserStore, tokens *auth.TokenManager, cookieMaxAge int, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		users:        users,
		tokens:       tokens,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login verifies credentials and delivers the session token as an
// http-only cookie. Unknown username and wrong password produce the same
// response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": []string{"username and password are required"}})
		return
	}

	user, err := h.users.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	h.setSessionCookie(c, token, h.cookieMaxAge)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Register creates a new account with the "user" role.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": []string{"username (2-50 chars) and password (min 6 chars) are required"}})
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	existing, err := h.users.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Username already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}

// Profile returns the identity asserted by the session token.
func (h *AuthHandler) Profile(c *gin.Context) {
	identity := middleware.CallerIdentity(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, identity)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   h.cookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
