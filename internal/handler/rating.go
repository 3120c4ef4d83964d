package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creatures/internal/middleware"
	"creatures/internal/models"
	"creatures/internal/service"
)

// RatingHandler gère les endpoints de classement
type RatingHandler struct {
	ratingService service.RatingServiceInterface
}

// NewRatingHandler crée une nouvelle instance du handler classement
func NewRatingHandler(ratingService service.RatingServiceInterface) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// Get récupère le classement d'un joueur.
// GET /api/v1/ratings/:playerId
func (h *RatingHandler) Get(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("playerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid player ID",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	rating, err := h.ratingService.GetRating(playerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rating":     rating,
		"request_id": c.GetString("request_id"),
	})
}

// Leaderboard récupère le classement global.
// GET /api/v1/ratings
func (h *RatingHandler) Leaderboard(c *gin.Context) {
	ratings, err := h.ratingService.Leaderboard()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": ratings,
		"total":       len(ratings),
		"request_id":  c.GetString("request_id"),
	})
}

// ReportMatch applique le résultat d'un match classé au joueur authentifié.
// POST /api/v1/ratings/report
func (h *RatingHandler) ReportMatch(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":      "Player ID not found in token",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	var req models.MatchReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	rating, err := h.ratingService.ReportMatch(playerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rating":     rating,
		"request_id": c.GetString("request_id"),
	})
}
