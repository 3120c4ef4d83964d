package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"creatures/internal/models"
)

// statusForError associe chaque erreur typée du moteur à un code HTTP
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, models.ErrCreatureNotOwned),
		errors.Is(err, models.ErrStoneNotOwned):
		return http.StatusForbidden

	case errors.Is(err, models.ErrBattleComplete),
		errors.Is(err, models.ErrNotYourTurn),
		errors.Is(err, models.ErrActorDefeated),
		errors.Is(err, models.ErrAbilityOnCooldown),
		errors.Is(err, models.ErrNotEnoughEnergy),
		errors.Is(err, models.ErrStoneConsumed):
		return http.StatusConflict

	case errors.Is(err, models.ErrActorNotFound),
		errors.Is(err, models.ErrUnknownAbility),
		errors.Is(err, models.ErrInvalidTarget),
		errors.Is(err, models.ErrSameCreature),
		errors.Is(err, models.ErrSameStone),
		errors.Is(err, models.ErrEmptyRoster),
		errors.Is(err, models.ErrRosterTooLarge),
		errors.Is(err, models.ErrNoActiveAbility),
		errors.Is(err, models.ErrInvalidAbility),
		errors.Is(err, models.ErrInvalidStats),
		errors.Is(err, models.ErrInvalidRarity),
		errors.Is(err, models.ErrInvalidFamily),
		errors.Is(err, models.ErrInvalidStoneTier),
		errors.Is(err, models.ErrInvalidLineage):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// respondError envoie une réponse d'erreur standardisée
func respondError(c *gin.Context, err error) {
	status := statusForError(err)

	if status == http.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		}).Error("Request failed")
	}

	c.JSON(status, gin.H{
		"error":      err.Error(),
		"request_id": c.GetString("request_id"),
	})
}

// respondBadRequest envoie une erreur 400 avec détails de binding
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":      "Invalid request body",
		"details":    err.Error(),
		"request_id": c.GetString("request_id"),
	})
}
