package auth

import (
	"errors"
	"time"

	"calltrack/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "auth-token"

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid claims")
)

// Identity is the authenticated caller extracted from a session token.
type Identity struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TokenManager signs and verifies session tokens. Constructed once at
// startup and passed to whatever needs it.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Generate issues a signed token carrying the user's id, username and role.
func (m *TokenManager) Generate(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates signature and expiry and returns the caller's identity.
func (m *TokenManager) Parse(tokenStr string) (*Identity, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidClaims
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidClaims
	}
	username, ok := claims["username"].(string)
	if !ok {
		return nil, ErrInvalidClaims
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidClaims
	}

	return &Identity{
		UserID:   uint(userID),
		Username: username,
		Role:     role,
	}, nil
}
