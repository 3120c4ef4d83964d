package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creatures/internal/middleware"
	"creatures/internal/models"
	"creatures/internal/service"
)

// BattleHandler gère les endpoints de combat
type BattleHandler struct {
	battleService service.BattleServiceInterface
}

// NewBattleHandler crée une nouvelle instance du handler combat
func NewBattleHandler(battleService service.BattleServiceInterface) *BattleHandler {
	return &BattleHandler{
		battleService: battleService,
	}
}

// Create démarre un nouveau combat entre deux rosters.
// POST /api/v1/battles
func (h *BattleHandler) Create(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":      "Player ID not found in token",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	var req models.CreateBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	battle, err := h.battleService.CreateBattle(playerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"battle":     battle,
		"request_id": c.GetString("request_id"),
	})
}

// Get récupère l'état complet d'un combat.
// GET /api/v1/battles/:id
func (h *BattleHandler) Get(c *gin.Context) {
	battleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid battle ID",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	battle, err := h.battleService.GetBattle(battleID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"battle":     battle,
		"request_id": c.GetString("request_id"),
	})
}

// GetLog récupère le journal append-only d'un combat.
// GET /api/v1/battles/:id/log
func (h *BattleHandler) GetLog(c *gin.Context) {
	battleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid battle ID",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	log, err := h.battleService.GetBattleLog(battleID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"log":        log,
		"total":      len(log),
		"request_id": c.GetString("request_id"),
	})
}

// SubmitAction soumet l'action du joueur pour l'acteur courant.
// POST /api/v1/battles/:id/action
func (h *BattleHandler) SubmitAction(c *gin.Context) {
	battleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid battle ID",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	var req models.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	response, err := h.battleService.SubmitAction(battleID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results":    response.Results,
		"battle":     response.Battle,
		"completed":  response.Completed,
		"request_id": c.GetString("request_id"),
	})
}
