package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"creatures/internal/config"
	"creatures/internal/engine"
	"creatures/internal/models"
	"creatures/internal/repository"
)

// RatingServiceInterface définit les méthodes du service de classement
type RatingServiceInterface interface {
	GetRating(playerID uuid.UUID) (*models.PlayerRating, error)
	Leaderboard() ([]*models.PlayerRating, error)
	ReportMatch(playerID uuid.UUID, req models.MatchReportRequest) (*models.PlayerRating, error)
}

// RatingService implémente l'interface RatingServiceInterface
type RatingService struct {
	config     *config.Config
	ratingRepo repository.RatingRepositoryInterface
}

// NewRatingService crée une nouvelle instance du service de classement
func NewRatingService(
	config *config.Config,
	ratingRepo repository.RatingRepositoryInterface,
) RatingServiceInterface {
	return &RatingService{
		config:     config,
		ratingRepo: ratingRepo,
	}
}

// GetRating récupère le classement d'un joueur, déclin d'inactivité appliqué
// paresseusement à la lecture
func (s *RatingService) GetRating(playerID uuid.UUID) (*models.PlayerRating, error) {
	rating, err := s.loadOrInit(playerID)
	if err != nil {
		return nil, err
	}

	if s.config.Rating.EnableDecay {
		decayed := engine.DecayRating(rating.Rating, rating.LastMatchAt, time.Now())
		if decayed != rating.Rating {
			rating.Rating = decayed
			rating.UpdateDivision()
			rating.UpdatedAt = time.Now()
			if err := s.ratingRepo.Upsert(rating); err != nil {
				return nil, fmt.Errorf("failed to persist decayed rating: %w", err)
			}
		}
	}

	return rating, nil
}

// Leaderboard récupère le classement global
func (s *RatingService) Leaderboard() ([]*models.PlayerRating, error) {
	return s.ratingRepo.Leaderboard(s.config.Rating.LeaderboardSize)
}

// ReportMatch applique le résultat d'un match classé: delta Elo, compteurs,
// séries et division, puis persistance
func (s *RatingService) ReportMatch(playerID uuid.UUID, req models.MatchReportRequest) (*models.PlayerRating, error) {
	player, err := s.loadOrInit(playerID)
	if err != nil {
		return nil, err
	}
	opponent, err := s.loadOrInit(req.OpponentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	delta := engine.UpdateRating(player.Rating, opponent.Rating, player.MatchesPlayed(), req.Outcome)

	player.Rating += delta
	player.RecordOutcome(req.Outcome, now)
	player.UpdateDivision()

	if err := s.ratingRepo.Upsert(player); err != nil {
		return nil, fmt.Errorf("failed to persist rating: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"player_id": playerID,
		"outcome":   req.Outcome,
		"delta":     delta,
		"rating":    player.Rating,
		"division":  player.Division,
	}).Info("Match reported")

	return player, nil
}

// loadOrInit récupère le classement d'un joueur ou l'initialise à la
// cotation de départ
func (s *RatingService) loadOrInit(playerID uuid.UUID) (*models.PlayerRating, error) {
	rating, err := s.ratingRepo.GetByPlayer(playerID)
	if err == nil {
		return rating, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	rating = &models.PlayerRating{
		PlayerID:    playerID,
		Rating:      engine.RatingStart,
		LastMatchAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	rating.UpdateDivision()

	return rating, nil
}
