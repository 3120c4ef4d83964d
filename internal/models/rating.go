package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchOutcome définit l'issue d'un match du point de vue d'un joueur
type MatchOutcome string

const (
	OutcomeWin  MatchOutcome = "win"
	OutcomeLoss MatchOutcome = "loss"
	OutcomeDraw MatchOutcome = "draw"
)

// PlayerRating représente le classement d'un joueur
type PlayerRating struct {
	PlayerID      uuid.UUID `json:"player_id" db:"player_id"`
	Rating        int       `json:"rating" db:"rating"`
	Wins          int       `json:"wins" db:"wins"`
	Losses        int       `json:"losses" db:"losses"`
	Draws         int       `json:"draws" db:"draws"`
	WinStreak     int       `json:"win_streak" db:"win_streak"`
	LossStreak    int       `json:"loss_streak" db:"loss_streak"`
	BestWinStreak int       `json:"best_win_streak" db:"best_win_streak"`
	Division      string    `json:"division" db:"division"`
	LastMatchAt   time.Time `json:"last_match_at" db:"last_match_at"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// MatchesPlayed retourne le nombre total de matchs joués
func (r *PlayerRating) MatchesPlayed() int {
	return r.Wins + r.Losses + r.Draws
}

// UpdateDivision recalcule la division à partir du rating
func (r *PlayerRating) UpdateDivision() {
	switch {
	case r.Rating >= 2400:
		r.Division = "Grandmaster"
	case r.Rating >= 2200:
		r.Division = "Master"
	case r.Rating >= 1800:
		r.Division = "Diamond"
	case r.Rating >= 1400:
		r.Division = "Platinum"
	case r.Rating >= 1000:
		r.Division = "Gold"
	case r.Rating >= 600:
		r.Division = "Silver"
	default:
		r.Division = "Bronze"
	}
}

// RecordOutcome applique une issue de match aux compteurs et séries
func (r *PlayerRating) RecordOutcome(outcome MatchOutcome, at time.Time) {
	switch outcome {
	case OutcomeWin:
		r.Wins++
		r.WinStreak++
		r.LossStreak = 0
		if r.WinStreak > r.BestWinStreak {
			r.BestWinStreak = r.WinStreak
		}
	case OutcomeLoss:
		r.Losses++
		r.LossStreak++
		r.WinStreak = 0
	case OutcomeDraw:
		r.Draws++
		r.WinStreak = 0
		r.LossStreak = 0
	}
	r.LastMatchAt = at
	r.UpdatedAt = at
}
