package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusnav/campusnav/internal/app/models"
	"github.com/campusnav/campusnav/internal/pkg/auth"
)

func setupProtectedRouter(t *testing.T, jwtService *auth.JWTService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewAuthMiddleware(jwtService).JWTAuth())
	router.GET("/protected", func(c *gin.Context) {
		userID, ok := UserIDFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return router
}

func TestJWTAuth(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campusnav.test",
	})
	router := setupProtectedRouter(t, jwtService)

	request := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token passes through", func(t *testing.T) {
		token, err := jwtService.GenerateToken(&models.User{ID: 5, Email: "student@go.minnstate.edu"})
		require.NoError(t, err)

		w := request("Bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":5`)
	})

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("").Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("Basic abc").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("Bearer garbage").Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := auth.NewJWTService(auth.JWTConfig{
			SecretKey: "test-secret",
			TokenExp:  -time.Minute,
		})
		token, err := expired.GenerateToken(&models.User{ID: 5, Email: "student@go.minnstate.edu"})
		require.NoError(t, err)

		w := request("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("all failures share the same body", func(t *testing.T) {
		missing := request("")
		garbage := request("Bearer garbage")
		assert.JSONEq(t, stripTimestamp(t, missing.Body.Bytes()), stripTimestamp(t, garbage.Body.Bytes()))
	})
}

func stripTimestamp(t *testing.T, body []byte) string {
	t.Helper()
	// The envelope carries a timestamp; compare everything else.
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m))
	delete(m, "timestamp")
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return string(out)
}
