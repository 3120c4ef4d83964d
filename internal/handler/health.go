package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"creatures/internal/database"
)

// HealthHandler gère les endpoints de santé
type HealthHandler struct {
	db        *database.DB
	startedAt time.Time
}

// NewHealthHandler crée une nouvelle instance du handler health
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startedAt: time.Now(),
	}
}

// HealthCheck endpoint de vérification de santé
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK

	dbStatus := "up"
	if err := h.db.HealthCheck(); err != nil {
		status = "degraded"
		dbStatus = "down"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":         status,
		"service":        "creatures",
		"database":       dbStatus,
		"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
		"timestamp":      time.Now().Unix(),
	})
}

// ReadinessCheck vérifie que le service peut accepter du trafic
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	if err := h.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// LivenessCheck vérifie que le processus répond
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
