package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// JWTClaims représente les claims du JWT
type JWTClaims struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuth crée le middleware d'authentification JWT
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":      "Authorization header required",
				"request_id": c.GetString("request_id"),
			})
			c.Abort()
			return
		}

		// Format attendu: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":      "Invalid authorization header format",
				"request_id": c.GetString("request_id"),
			})
			c.Abort()
			return
		}

		claims, err := validateJWT(parts[1], secret)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"error":      err.Error(),
				"ip":         c.ClientIP(),
				"path":       c.Request.URL.Path,
				"request_id": c.GetString("request_id"),
			}).Warn("JWT validation failed")

			c.JSON(http.StatusUnauthorized, gin.H{
				"error":      "Invalid or expired token",
				"request_id": c.GetString("request_id"),
			})
			c.Abort()
			return
		}

		if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":      "Token expired",
				"request_id": c.GetString("request_id"),
			})
			c.Abort()
			return
		}

		c.Set("player_id", claims.PlayerID)
		c.Set("username", claims.Username)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// PlayerID récupère l'identifiant du joueur authentifié depuis le contexte
func PlayerID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("player_id")
	if raw == "" {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// validateJWT valide et parse un token JWT
func validateJWT(tokenString, secret string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.PlayerID == "" {
		return nil, fmt.Errorf("missing player_id in token")
	}
	if _, err := uuid.Parse(claims.PlayerID); err != nil {
		return nil, fmt.Errorf("invalid player_id format")
	}

	return claims, nil
}
