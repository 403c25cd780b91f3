package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"calltrack/internal/auth"
	"calltrack/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// authedJSON performs a request carrying a freshly issued session cookie
// for a caller with the given role.
func authedJSON(t *testing.T, router *gin.Engine, method, path string, body any, tm *auth.TokenManager, role string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewBuffer(jsonBody)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	token, err := tm.Generate(&model.User{ID: 1, Username: "tester", Role: role})
	assert.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}
