package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates a bearer token (header or auth_token cookie) and stores
// the subject, email and role on the context. HS256 tokens are checked against
// secret; RS256 tokens against jwks when it is set.
func AuthMiddleware(secret string, jwks *auth.Provider, log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}

	methods := []string{jwt.SigningMethodHS256.Alg()}
	if jwks != nil {
		methods = append(methods, jwt.SigningMethodRS256.Alg())
	}
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
			return jwks.KeyFunc(token)
		}
		if secret == "" {
			return nil, fmt.Errorf("JWT_SECRET is not configured")
		}
		return []byte(secret), nil
	}

	return func(c *gin.Context) {
		var tokenString string

		// 1. Try to get token from Header
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		} else if cookie, err := c.Cookie("auth_token"); err == nil && cookie != "" {
			// 2. Try to get token from Cookie
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, keyFunc, jwt.WithValidMethods(methods), jwt.WithExpirationRequired())

		if err != nil || !token.Valid {
			log.Debug("token validation failed", "error", err)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}
		email, _ := claims["email"].(string)

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), roleFromClaims(claims))

		c.Next()
	}
}

// roleFromClaims reads "role", falling back to app_metadata.role
func roleFromClaims(claims jwt.MapClaims) string {
	if role, _ := claims["role"].(string); role != "" && role != "authenticated" {
		return strings.ToLower(role)
	}
	if meta, ok := claims["app_metadata"].(map[string]interface{}); ok {
		if role, _ := meta["role"].(string); role != "" {
			return strings.ToLower(role)
		}
	}
	return ""
}

// RequireRoles allows the request when the authenticated role is one of roles
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "Role not determined", nil)
			c.Abort()
			return
		}
		if !allowed[role] {
			response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
