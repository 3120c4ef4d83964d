package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"creatures/internal/middleware"
	"creatures/internal/models"
	"creatures/internal/repository"
	"creatures/internal/rules"
)

// CreatureHandler gère les endpoints de consultation des créatures
type CreatureHandler struct {
	creatureRepo repository.CreatureRepositoryInterface
}

// NewCreatureHandler crée une nouvelle instance du handler créatures
func NewCreatureHandler(creatureRepo repository.CreatureRepositoryInterface) *CreatureHandler {
	return &CreatureHandler{
		creatureRepo: creatureRepo,
	}
}

// Get récupère une créature par son ID.
// GET /api/v1/creatures/:id
func (h *CreatureHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid creature ID",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	creature, err := h.creatureRepo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"creature":   creature,
		"request_id": c.GetString("request_id"),
	})
}

// List récupère les créatures du joueur authentifié.
// GET /api/v1/creatures
func (h *CreatureHandler) List(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":      "Player ID not found in token",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	creatures, err := h.creatureRepo.ListByOwner(playerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"creatures":  creatures,
		"total":      len(creatures),
		"request_id": c.GetString("request_id"),
	})
}

// CreateStarter accorde une créature de départ de la famille demandée.
// POST /api/v1/creatures/starter
func (h *CreatureHandler) CreateStarter(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":      "Player ID not found in token",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	var req models.StarterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	template := "starter-" + string(req.Family)
	name := req.Name
	if name == "" {
		name = string(req.Family) + " hatchling"
	}

	creature := &models.Creature{
		ID:         uuid.New(),
		OwnerID:    playerID,
		Name:       name,
		Family:     req.Family,
		Rarity:     models.RarityBasic,
		Stats:      rules.FamilyBaseStats(req.Family),
		Actives:    rules.StarterAbilities(req.Family),
		TemplateID: &template,
		CreatedAt:  time.Now(),
	}

	if err := creature.Validate(); err != nil {
		respondError(c, err)
		return
	}

	if err := h.creatureRepo.Create(creature); err != nil {
		respondError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"player_id":   playerID,
		"creature_id": creature.ID,
		"family":      creature.Family,
	}).Info("Starter creature granted")

	c.JSON(http.StatusCreated, gin.H{
		"creature":   creature,
		"request_id": c.GetString("request_id"),
	})
}
