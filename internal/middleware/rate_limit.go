package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"creatures/internal/config"
)

// MemoryRateLimiter implémentation en mémoire du rate limiter, un token
// bucket par clé cliente
type MemoryRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
	cleanup  time.Duration
}

// NewMemoryRateLimiter crée un nouveau rate limiter en mémoire
func NewMemoryRateLimiter(requestsPerMinute int, burst int) *MemoryRateLimiter {
	rl := &MemoryRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerMinute) / 60, // Convertir en requêtes par seconde
		burst:    burst,
		cleanup:  5 * time.Minute,
	}

	go rl.cleanupRoutine()

	return rl
}

// Allow vérifie si une requête est autorisée
func (rl *MemoryRateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// getLimiter récupère ou crée un limiter pour une clé
func (rl *MemoryRateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[key]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		// Double-check après acquisition du lock exclusif
		if limiter, exists = rl.limiters[key]; !exists {
			limiter = rate.NewLimiter(rl.rate, rl.burst)
			rl.limiters[key] = limiter
		}
		rl.mu.Unlock()
	}

	return limiter
}

// cleanupRoutine nettoie périodiquement les limiters inactifs
func (rl *MemoryRateLimiter) cleanupRoutine() {
	ticker := time.NewTicker(rl.cleanup)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for key, limiter := range rl.limiters {
			if limiter.Tokens() >= float64(rl.burst) {
				delete(rl.limiters, key)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit middleware de rate limiting global
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	limiter := NewMemoryRateLimiter(cfg.RequestsPerMinute, cfg.BurstSize)

	return func(c *gin.Context) {
		key := getClientKey(c)

		if !limiter.Allow(key) {
			logrus.WithFields(logrus.Fields{
				"client_key": key,
				"client_ip":  c.ClientIP(),
				"path":       c.Request.URL.Path,
				"method":     c.Request.Method,
				"request_id": c.GetString("request_id"),
			}).Warn("Rate limit exceeded")

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":      "Rate limit exceeded",
				"request_id": c.GetString("request_id"),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ActionRateLimit rate limiting par joueur pour les actions de combat
func ActionRateLimit(actionsPerMinute, burst int) gin.HandlerFunc {
	limiter := NewMemoryRateLimiter(actionsPerMinute, burst)

	return func(c *gin.Context) {
		playerID := c.GetString("player_id")
		if playerID == "" {
			playerID = c.ClientIP()
		}

		key := fmt.Sprintf("action:%s", playerID)

		if !limiter.Allow(key) {
			logrus.WithFields(logrus.Fields{
				"player_id":  playerID,
				"path":       c.Request.URL.Path,
				"request_id": c.GetString("request_id"),
			}).Warn("Battle action rate limit exceeded")

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":      "Too many battle actions",
				"message":    "Please wait before performing another action",
				"request_id": c.GetString("request_id"),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// getClientKey génère une clé unique pour identifier le client
func getClientKey(c *gin.Context) string {
	if playerID := c.GetString("player_id"); playerID != "" {
		return fmt.Sprintf("player:%s", playerID)
	}
	return fmt.Sprintf("ip:%s", c.ClientIP())
}
