package models

import (
	"time"

	"github.com/google/uuid"
)

// MutationSeverity définit les quatre niveaux discrets de sévérité d'un glitch
type MutationSeverity string

const (
	SeverityLow     MutationSeverity = "low"
	SeverityMedium  MutationSeverity = "medium"
	SeverityHigh    MutationSeverity = "high"
	SeverityExtreme MutationSeverity = "extreme"
)

// MutationResult représente le résultat du résolveur de mutation/glitch
type MutationResult struct {
	Glitched   bool             `json:"glitched"`
	Guaranteed bool             `json:"guaranteed"`
	Chance     float64          `json:"chance"`
	Severity   int              `json:"severity"`
	Level      MutationSeverity `json:"level,omitempty"`
	Multiplier float64          `json:"multiplier"`
}

// ElementInteraction décrit le croisement de deux éléments.
// Donnée narrative uniquement, n'altère jamais les résultats numériques.
type ElementInteraction struct {
	Element1    Element `json:"element1"`
	Element2    Element `json:"element2"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
}

// ParentSnapshot représente la sérialisation complète d'un parent dans une signature
type ParentSnapshot struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	Family        Family               `json:"family"`
	Rarity        Rarity               `json:"rarity"`
	Generation    int                  `json:"generation"`
	Stats         StatBlock            `json:"stats"`
	Passives      []Ability            `json:"passives"`
	Actives       []Ability            `json:"actives"`
	Ultimate      *Ability             `json:"ultimate,omitempty"`
	FusionHistory []FusionHistoryEntry `json:"fusion_history,omitempty"`
	Appearance    Appearance           `json:"appearance"`
}

// StoneSnapshot représente la sérialisation d'un catalyseur dans une signature
type StoneSnapshot struct {
	ID             uuid.UUID        `json:"id"`
	Element        Element          `json:"element"`
	Tier           StoneTier        `json:"tier"`
	StatBonus      map[StatAxis]int `json:"stat_bonus,omitempty"`
	ElementalPower int              `json:"elemental_power"`
	IsGlitched     bool             `json:"is_glitched"`
}

// FusionSignature représente la description complète et sérialisable d'un
// événement de fusion. Autonome: transmissible à un générateur narratif
// externe sans aucune consultation supplémentaire.
type FusionSignature struct {
	Seed         uint64             `json:"seed"`
	Generation   int                `json:"generation"`
	Parent1      ParentSnapshot     `json:"parent1"`
	Parent2      ParentSnapshot     `json:"parent2"`
	Stone1       StoneSnapshot      `json:"stone1"`
	Stone2       StoneSnapshot      `json:"stone2"`
	Rarity       Rarity             `json:"rarity"`
	Stats        StatBlock          `json:"stats"`
	Mutation     MutationResult     `json:"mutation"`
	Passives     []Ability          `json:"passives"`
	Actives      []Ability          `json:"actives"`
	Ultimate     *Ability           `json:"ultimate,omitempty"`
	Appearance   Appearance         `json:"appearance"`
	Interaction  ElementInteraction `json:"interaction"`
	DomainUnlock bool               `json:"domain_unlock"`
	Intent       string             `json:"intent,omitempty"`
	FusedAt      time.Time          `json:"fused_at"`
}
