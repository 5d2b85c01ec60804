package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"tablebook/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminMiddleware guards the management surface (venue setup, table
// expansion). Guest-facing booking endpoints stay open.
type AdminMiddleware struct {
	secret []byte
}

const ctxAdminSubjectKey = "admin_subject"

func NewAdminMiddleware(cfg config.AuthConfig) *AdminMiddleware {
	return &AdminMiddleware{secret: []byte(cfg.AdminSecret)}
}

func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Admin token required",
			})
			c.Abort()
			return
		}

		subject, err := m.validate(token)
		if err != nil {
			slog.Warn("Admin token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminSubjectKey, subject)
		c.Next()
	}
}

func (m *AdminMiddleware) validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetAdminSubject(c *gin.Context) (string, bool) {
	subject, exists := c.Get(ctxAdminSubjectKey)
	if !exists {
		return "", false
	}

	s, ok := subject.(string)
	return s, ok
}
