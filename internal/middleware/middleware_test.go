package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret-key-32-characters")

func newProtectedRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("userID"),
			"role":    c.GetString("userRole"),
		})
	})
	return router
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	router := newProtectedRouter(testSecret)

	token := signToken(t, jwt.MapClaims{
		"uid":  "user-1",
		"role": "customer",
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})

	w := doRequest(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)
	assert.Contains(t, w.Body.String(), `"role":"customer"`)
}

func TestJWTAuthMissingHeaderPointsToLogin(t *testing.T) {
	router := newProtectedRouter(testSecret)

	w := doRequest(router, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/auth/login")
}

func TestJWTAuthRejectsBadTokens(t *testing.T) {
	router := newProtectedRouter(testSecret)

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"expired", jwt.MapClaims{
			"uid": "user-1", "role": "customer",
			"exp": time.Now().Add(-time.Hour).Unix(),
		}},
		{"missing uid", jwt.MapClaims{
			"role": "customer",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}},
		{"missing role", jwt.MapClaims{
			"uid": "user-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		}},
		{"unknown role", jwt.MapClaims{
			"uid": "user-1", "role": "superuser",
			"exp": time.Now().Add(time.Hour).Unix(),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, "Bearer "+signToken(t, tt.claims))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	router := newProtectedRouter([]byte("a-different-secret-entirely-here"))

	token := signToken(t, jwt.MapClaims{
		"uid":  "user-1",
		"role": "customer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsNonBearerScheme(t *testing.T) {
	router := newProtectedRouter(testSecret)

	w := doRequest(router, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(role string) *gin.Engine {
		router := gin.New()
		router.GET("/staff",
			func(c *gin.Context) {
				c.Set("userID", "user-1")
				c.Set("userRole", role)
				c.Next()
			},
			RequireRole("staff", "admin"),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		return router
	}

	for role, want := range map[string]int{
		"staff":    http.StatusOK,
		"admin":    http.StatusOK,
		"customer": http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		w := httptest.NewRecorder()
		newRouter(role).ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, "role %s", role)
	}
}
