package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creatures/internal/middleware"
	"creatures/internal/models"
	"creatures/internal/service"
)

// FusionHandler gère les endpoints de fusion
type FusionHandler struct {
	fusionService service.FusionServiceInterface
}

// NewFusionHandler crée une nouvelle instance du handler fusion
func NewFusionHandler(fusionService service.FusionServiceInterface) *FusionHandler {
	return &FusionHandler{
		fusionService: fusionService,
	}
}

// Preview construit la signature de fusion sans persister.
// POST /api/v1/fusion/preview
func (h *FusionHandler) Preview(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":      "Player ID not found in token",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	var req models.FusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	signature, err := h.fusionService.Preview(playerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"signature":  signature,
		"request_id": c.GetString("request_id"),
	})
}

// Fuse exécute une fusion complète.
// POST /api/v1/fusion
func (h *FusionHandler) Fuse(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":      "Player ID not found in token",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	var req models.FusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.fusionService.Fuse(playerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"creature":   result.Creature,
		"signature":  result.Signature,
		"request_id": c.GetString("request_id"),
	})
}
