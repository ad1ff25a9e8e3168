package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"festival/config"
	"festival/models"
	"festival/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims is the JWT payload issued at login
type AdminClaims struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a JWT for an authenticated admin
func GenerateToken(admin *models.Admin, rememberMe bool) (string, error) {
	expiry := 24 * time.Hour
	if rememberMe {
		expiry = 30 * 24 * time.Hour
	}

	claims := AdminClaims{
		Username: admin.Username,
		Name:     admin.Name,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// extractToken reads the token from the auth_token cookie, falling back
// to the Authorization header
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("auth_token"); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func parseToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// AuthMiddleware rejects requests that do not carry a valid admin token
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("admin_claims", claims)
		c.Next()
	}
}

// GetAdminFromRequest returns the admin record matching the token claims
// set by AuthMiddleware
func GetAdminFromRequest(c *gin.Context) (*models.Admin, error) {
	value, exists := c.Get("admin_claims")
	if !exists {
		return nil, fmt.Errorf("no authenticated admin in request")
	}
	claims, ok := value.(*AdminClaims)
	if !ok {
		return nil, fmt.Errorf("no authenticated admin in request")
	}

	admins, err := storage.Store.GetAdmins(c.Request.Context())
	if err != nil {
		return nil, err
	}
	for i := range admins {
		if admins[i].Username == claims.Username {
			return &admins[i], nil
		}
	}
	return nil, fmt.Errorf("admin not found")
}
