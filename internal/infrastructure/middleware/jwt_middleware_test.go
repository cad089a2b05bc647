package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"friend_profile_server/internal/infrastructure/logger"
	"friend_profile_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	tokenID string
	err     error
}

func (f fakeValidator) ValidateTokenID(ctx context.Context, userID int64, tokenID string) (bool, error) {
	return tokenID == f.tokenID, f.err
}

func init() {
	gin.SetMode(gin.TestMode)
	jwt.Init("test-secret-test-secret-test-secret", 15, 24)
}

func newEngine(v TokenValidator) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/me", JWTAuth(v), func(c *gin.Context) {
		c.String(http.StatusOK, strconv.FormatInt(c.GetInt64(ContextUserIDKey), 10)+"|"+c.GetString(logger.RequestIDKey))
	})
	return r
}

func get(r http.Handler, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_Accepts(t *testing.T) {
	token, err := jwt.GenerateAccessToken(42, "tok")
	require.NoError(t, err)

	w := get(newEngine(fakeValidator{tokenID: "tok"}), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42|")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestJWTAuth_Rejects(t *testing.T) {
	access, err := jwt.GenerateAccessToken(42, "tok")
	require.NoError(t, err)
	refresh, refreshID, err := jwt.GenerateRefreshToken(42)
	require.NoError(t, err)

	cases := map[string]struct {
		header    string
		validator fakeValidator
	}{
		"missing":       {header: "", validator: fakeValidator{tokenID: "tok"}},
		"not bearer":    {header: "Token " + access, validator: fakeValidator{tokenID: "tok"}},
		"garbage":       {header: "Bearer abc.def.ghi", validator: fakeValidator{tokenID: "tok"}},
		"refresh token": {header: "Bearer " + refresh, validator: fakeValidator{tokenID: refreshID}},
		"stale session": {header: "Bearer " + access, validator: fakeValidator{tokenID: "other"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := get(newEngine(tc.validator), tc.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestJWTAuth_ValidatorError(t *testing.T) {
	token, err := jwt.GenerateAccessToken(42, "tok")
	require.NoError(t, err)

	w := get(newEngine(fakeValidator{tokenID: "tok", err: errors.New("redis down")}), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":1005`)
}

func TestRequestID_KeepsClientHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(logger.RequestIDKey)) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
