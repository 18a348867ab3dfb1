package middleware

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(role string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "user-1",
		"email": "hr@example.com",
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func authRouter() *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(testSecret, nil, nil))
	r.GET("/search", RequireRoles(domain.RoleCompany, domain.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(string(domain.KeyUserID)))
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims("company")), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "u", "role": "company", "exp": time.Now().Add(-time.Hour).Unix()}), http.StatusUnauthorized},
		{"no expiry", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "u", "role": "company"}), http.StatusUnauthorized},
		{"wrong algorithm", "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims("company")), http.StatusUnauthorized},
		{"candidate role", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("candidate")), http.StatusForbidden},
		{"no role", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("")), http.StatusUnauthorized},
		{"company role", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("company")), http.StatusOK},
		{"admin role upper case", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("ADMIN")), http.StatusOK},
	}

	r := authRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/search", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAuthMiddlewareCookieAndMetadataRole(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":          "user-9",
		"role":         "authenticated",
		"app_metadata": map[string]interface{}{"role": "company"},
		"exp":          time.Now().Add(time.Hour).Unix(),
	}
	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)})

	w := httptest.NewRecorder()
	authRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-9", w.Body.String())
}

func TestAuthMiddlewareJWKS(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(auth.JWKS{Keys: []auth.JSONWebKey{{
			Kid: "k1",
			Kty: "RSA",
			N:   base64.RawURLEncoding.EncodeToString(priv.PublicKey.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(priv.PublicKey.E)).Bytes()),
		}}})
	}))
	defer srv.Close()

	r := gin.New()
	r.Use(AuthMiddleware(testSecret, auth.NewProvider(srv.URL), nil))
	r.GET("/search", RequireRoles(domain.RoleCompany), func(c *gin.Context) { c.Status(http.StatusOK) })

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, validClaims("company"))
	token.Header["kid"] = "k1"
	signed, err := token.SignedString(priv)
	require.NoError(t, err)

	for _, header := range []string{
		"Bearer " + signed,
		"Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("company")),
	} {
		req := httptest.NewRequest(http.MethodGet, "/search", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// RS256 is rejected when no key set is configured
	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	authRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { response.Success(c, http.StatusOK, "ok", nil) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, decode(t, w).RequestID)

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
}

func errorRouter(debug bool, err error) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler(debug, nil))
	r.GET("/", func(c *gin.Context) { _ = c.Error(err) })
	return r
}

func TestErrorHandler(t *testing.T) {
	t.Run("app error keeps code and message", func(t *testing.T) {
		w := httptest.NewRecorder()
		errorRouter(false, apperror.NotFound("Talent not found")).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decode(t, w)
		assert.False(t, body.Success)
		assert.Equal(t, "Talent not found", body.Message)
		assert.Nil(t, body.Error)
	})

	t.Run("internal detail hidden in production", func(t *testing.T) {
		w := httptest.NewRecorder()
		errorRouter(false, apperror.Internal(errors.New("pq: relation missing"))).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Nil(t, decode(t, w).Error)
	})

	t.Run("internal detail shown in debug", func(t *testing.T) {
		w := httptest.NewRecorder()
		errorRouter(true, apperror.Internal(errors.New("pq: relation missing"))).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "pq: relation missing", decode(t, w).Error)
	})

	t.Run("plain error becomes generic 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		errorRouter(false, errors.New("boom")).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decode(t, w)
		assert.Equal(t, "An unexpected error occurred. Please try again later.", body.Message)
		assert.Nil(t, body.Error)
	})
}

type failingLimiter struct{}

func (failingLimiter) Hit(context.Context, string) (int, time.Time, error) {
	return 0, time.Time{}, errors.New("redis down")
}

func limitedRouter(store Limiter) *gin.Engine {
	r := gin.New()
	r.Use(RateLimitMiddleware(SearchRateLimitConfig(2, time.Minute, store, nil)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimitMiddleware(t *testing.T) {
	for name, store := range map[string]Limiter{"memory only": nil, "failing store falls back": failingLimiter{}} {
		t.Run(name, func(t *testing.T) {
			r := limitedRouter(store)
			codes := make([]int, 0, 3)
			for i := 0; i < 3; i++ {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
				codes = append(codes, w.Code)
				if i == 2 {
					assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
					assert.NotEmpty(t, w.Header().Get("Retry-After"))
				}
			}
			assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
		})
	}
}

func TestMemoryLimiterWindow(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(time.Minute)
	l.now = func() time.Time { return now }

	count, resetAt, err := l.Hit(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, now.Add(time.Minute), resetAt)

	count, _, _ = l.Hit(context.Background(), "k")
	assert.Equal(t, 2, count)
	count, _, _ = l.Hit(context.Background(), "other")
	assert.Equal(t, 1, count)

	now = now.Add(time.Minute)
	count, _, _ = l.Hit(context.Background(), "k")
	assert.Equal(t, 1, count, "window expired")
	assert.Len(t, l.entries, 1, "expired entries are swept")
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://talent.example.com/"}, true))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://talent.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://talent.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "dev origins are rejected in production")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	for _, prod := range []bool{false, true} {
		r := gin.New()
		r.Use(SecurityHeadersMiddleware(prod))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		assert.Equal(t, prod, w.Header().Get("Strict-Transport-Security") != "")
	}
}
