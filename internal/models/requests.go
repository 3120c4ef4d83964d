package models

import "github.com/google/uuid"

// FusionRequest représente la requête de fusion de deux créatures
type FusionRequest struct {
	Parent1ID uuid.UUID `json:"parent1_id" binding:"required"`
	Parent2ID uuid.UUID `json:"parent2_id" binding:"required"`
	Stone1ID  uuid.UUID `json:"stone1_id" binding:"required"`
	Stone2ID  uuid.UUID `json:"stone2_id" binding:"required"`
	Name      string    `json:"name"`
	Intent    string    `json:"intent"`
}

// FusionResponse représente le résultat d'une fusion persistée
type FusionResponse struct {
	Creature  *Creature        `json:"creature"`
	Signature *FusionSignature `json:"signature"`
}

// StarterRequest représente la demande d'une créature de départ
type StarterRequest struct {
	Family Family `json:"family" binding:"required"`
	Name   string `json:"name"`
}

// CreateBattleRequest représente la requête de création d'un combat
type CreateBattleRequest struct {
	Team1 []uuid.UUID `json:"team1" binding:"required"`
	Team2 []uuid.UUID `json:"team2" binding:"required"`
}

// ActionRequest représente la soumission d'une action de combat
type ActionRequest struct {
	ActorID   uuid.UUID   `json:"actor_id" binding:"required"`
	AbilityID string      `json:"ability_id" binding:"required"`
	TargetIDs []uuid.UUID `json:"target_ids"`
}

// ActionResponse représente le résultat d'une action résolue
type ActionResponse struct {
	Results   []TargetResult `json:"results"`
	Battle    *Battle        `json:"battle"`
	Completed bool           `json:"completed"`
}

// MatchReportRequest représente le rapport d'un match classé
type MatchReportRequest struct {
	OpponentID uuid.UUID    `json:"opponent_id" binding:"required"`
	Outcome    MatchOutcome `json:"outcome" binding:"required"`
}
