package middleware

import (
	"strings"

	"picboard/config"
	"picboard/helper"
	"picboard/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = &helper.HTTPHelper{}

var jwtKey = config.JWTSecret

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

func parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

func setIdentity(c *gin.Context, claims *Claims) {
	c.Set("user_id", claims.UserID)
	c.Set("username", claims.Username)
	c.Set("is_admin", claims.IsAdmin)
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid token: "+err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the caller identity when a bearer token is
// present and lets the request through as anonymous otherwise. A token that
// is present but invalid is still rejected.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Next()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid token: "+err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists {
			HTTPHelper.SendUnauthorizedError(c, "User identity not found", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		if admin, ok := isAdmin.(bool); !ok || !admin {
			HTTPHelper.SendForbiddenError(c, "Admin access required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Next()
	}
}

// Identity reads the authenticated caller from the request context. It
// returns nil for anonymous requests.
func Identity(c *gin.Context) *models.Identity {
	userID, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	id, ok := userID.(uint)
	if !ok {
		return nil
	}
	isAdmin, _ := c.Get("is_admin")
	admin, _ := isAdmin.(bool)
	return &models.Identity{ID: id, IsAdmin: admin}
}
