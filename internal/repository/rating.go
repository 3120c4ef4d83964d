package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"creatures/internal/database"
	"creatures/internal/models"
)

// RatingRepositoryInterface définit les méthodes du repository classements
type RatingRepositoryInterface interface {
	GetByPlayer(playerID uuid.UUID) (*models.PlayerRating, error)
	Upsert(rating *models.PlayerRating) error
	Leaderboard(limit int) ([]*models.PlayerRating, error)
}

// RatingRepository implémente l'interface RatingRepositoryInterface
type RatingRepository struct {
	db *database.DB
}

// NewRatingRepository crée une nouvelle instance du repository classements
func NewRatingRepository(db *database.DB) RatingRepositoryInterface {
	return &RatingRepository{db: db}
}

// GetByPlayer récupère le classement d'un joueur
func (r *RatingRepository) GetByPlayer(playerID uuid.UUID) (*models.PlayerRating, error) {
	var rating models.PlayerRating

	query := `
		SELECT player_id, rating, wins, losses, draws,
		       win_streak, loss_streak, best_win_streak, division,
		       last_match_at, created_at, updated_at
		FROM player_ratings
		WHERE player_id = $1`

	if err := r.db.Get(&rating, query, playerID); err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	return &rating, nil
}

// Upsert insère ou remplace le classement d'un joueur
func (r *RatingRepository) Upsert(rating *models.PlayerRating) error {
	query := `
		INSERT INTO player_ratings (
			player_id, rating, wins, losses, draws,
			win_streak, loss_streak, best_win_streak, division,
			last_match_at, created_at, updated_at
		) VALUES (
			:player_id, :rating, :wins, :losses, :draws,
			:win_streak, :loss_streak, :best_win_streak, :division,
			:last_match_at, :created_at, :updated_at
		)
		ON CONFLICT (player_id) DO UPDATE SET
			rating = EXCLUDED.rating,
			wins = EXCLUDED.wins,
			losses = EXCLUDED.losses,
			draws = EXCLUDED.draws,
			win_streak = EXCLUDED.win_streak,
			loss_streak = EXCLUDED.loss_streak,
			best_win_streak = EXCLUDED.best_win_streak,
			division = EXCLUDED.division,
			last_match_at = EXCLUDED.last_match_at,
			updated_at = EXCLUDED.updated_at`

	if _, err := r.db.NamedExec(query, rating); err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}

	return nil
}

// Leaderboard récupère les meilleurs classements
func (r *RatingRepository) Leaderboard(limit int) ([]*models.PlayerRating, error) {
	var ratings []*models.PlayerRating

	query := `
		SELECT player_id, rating, wins, losses, draws,
		       win_streak, loss_streak, best_win_streak, division,
		       last_match_at, created_at, updated_at
		FROM player_ratings
		ORDER BY rating DESC, wins DESC
		LIMIT $1`

	if err := r.db.Select(&ratings, query, limit); err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	return ratings, nil
}
