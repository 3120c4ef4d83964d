package engine

import (
	"math"
	"time"

	"creatures/internal/models"
)

// Paramètres du système de cotation
const (
	RatingStart = 1000
	RatingFloor = 800

	ratingScale = 400.0

	kFactorPlacement = 40
	kFactorSettling  = 32
	kFactorStable    = 24

	placementMatches = 10
	settlingMatches  = 30

	// Déclin d'inactivité: points perdus par semaine entière, vers le plancher
	decayPerWeek  = 10
	decayGraceDur = 28 * 24 * time.Hour
)

// kFactor retourne le facteur K selon l'ancienneté du joueur: les nouveaux
// comptes convergent vite, les comptes établis bougent lentement
func kFactor(matchesPlayed int) int {
	switch {
	case matchesPlayed < placementMatches:
		return kFactorPlacement
	case matchesPlayed < settlingMatches:
		return kFactorSettling
	default:
		return kFactorStable
	}
}

// ExpectedScore retourne le score attendu du joueur contre un adversaire,
// courbe logistique sur une échelle de 400 points
func ExpectedScore(rating, opponent int) float64 {
	return 1.0 / (1.0 + math.Pow(10, float64(opponent-rating)/ratingScale))
}

// UpdateRating calcule le delta de cotation d'un match. Pur: ne touche
// aucun état, le delta est retourné à l'appelant. Une victoire vaut 1, un
// nul 0.5, une défaite 0. Le plancher de cotation est appliqué au résultat.
func UpdateRating(rating, opponent, matchesPlayed int, outcome models.MatchOutcome) int {
	var score float64
	switch outcome {
	case models.OutcomeWin:
		score = 1.0
	case models.OutcomeDraw:
		score = 0.5
	case models.OutcomeLoss:
		score = 0.0
	}

	expected := ExpectedScore(rating, opponent)
	delta := int(math.Round(float64(kFactor(matchesPlayed)) * (score - expected)))

	if rating+delta < RatingFloor {
		delta = RatingFloor - rating
	}
	return delta
}

// DecayRating calcule le déclin d'inactivité paresseux: après une période de
// grâce de quatre semaines, la cotation glisse vers le plancher de 10 points
// par semaine entière écoulée. Jamais en dessous du plancher, jamais de gain.
func DecayRating(rating int, lastMatch, now time.Time) int {
	if rating <= RatingFloor {
		return rating
	}

	idle := now.Sub(lastMatch)
	if idle <= decayGraceDur {
		return rating
	}

	weeks := int((idle - decayGraceDur) / (7 * 24 * time.Hour))
	decayed := rating - weeks*decayPerWeek
	if decayed < RatingFloor {
		decayed = RatingFloor
	}
	return decayed
}
