package models

import (
	"time"

	"github.com/google/uuid"
)

// Element définit les huit types élémentaires des pierres catalyseurs
type Element string

const (
	ElementFire      Element = "fire"
	ElementWater     Element = "water"
	ElementEarth     Element = "earth"
	ElementAir       Element = "air"
	ElementLightning Element = "lightning"
	ElementIce       Element = "ice"
	ElementShadow    Element = "shadow"
	ElementLight     Element = "light"
)

// AllElements liste les éléments dans un ordre stable
var AllElements = []Element{
	ElementFire, ElementWater, ElementEarth, ElementAir,
	ElementLightning, ElementIce, ElementShadow, ElementLight,
}

// StoneTier définit le tier d'une pierre (ordinal I-V)
type StoneTier int

const (
	StoneTierI StoneTier = iota + 1
	StoneTierII
	StoneTierIII
	StoneTierIV
	StoneTierV
)

// IsValid vérifie que le tier est dans les bornes
func (t StoneTier) IsValid() bool {
	return t >= StoneTierI && t <= StoneTierV
}

// Stone représente une pierre catalyseur consommée lors d'une fusion
type Stone struct {
	ID             uuid.UUID        `json:"id" db:"id"`
	OwnerID        uuid.UUID        `json:"owner_id" db:"owner_id"`
	Element        Element          `json:"element" db:"element"`
	Tier           StoneTier        `json:"tier" db:"tier"`
	StatBonus      map[StatAxis]int `json:"stat_bonus" db:"-"`
	ElementalPower int              `json:"elemental_power" db:"elemental_power"`
	IsGlitched     bool             `json:"is_glitched" db:"is_glitched"`
	Consumed       bool             `json:"consumed" db:"consumed"`
	AcquiredAt     time.Time        `json:"acquired_at" db:"acquired_at"`
}

// Validate vérifie les invariants structurels de la pierre
func (s *Stone) Validate() error {
	if !s.Tier.IsValid() {
		return ErrInvalidStoneTier
	}
	return nil
}

// UnlocksDomain vérifie si deux pierres appairées débloquent un effet de domaine.
// Seules deux pierres de tier V le peuvent.
func UnlocksDomain(s1, s2 *Stone) bool {
	return s1.Tier == StoneTierV && s2.Tier == StoneTierV
}
