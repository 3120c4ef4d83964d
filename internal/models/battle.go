package models

import (
	"time"

	"github.com/google/uuid"
)

// Team identifie un des deux camps d'un combat
type Team string

const (
	Team1 Team = "team1"
	Team2 Team = "team2"
)

// Winner définit l'issue d'un combat terminé
type Winner string

const (
	WinnerTeam1 Winner = "team1"
	WinnerTeam2 Winner = "team2"
	WinnerDraw  Winner = "draw"
)

// BoardPosition définit la position d'un participant sur le terrain
type BoardPosition string

const (
	PositionFront BoardPosition = "front"
	PositionBack  BoardPosition = "back"
)

// StatusInstance représente une altération d'état active sur un participant
type StatusInstance struct {
	Type      StatusType `json:"type"`
	Remaining int        `json:"remaining"`
	Magnitude int        `json:"magnitude,omitempty"`
	SourceID  *uuid.UUID `json:"source_id,omitempty"`
}

// StatModifier représente un buff ou debuff temporisé sur un axe de statistique
type StatModifier struct {
	Stat      StatAxis   `json:"stat"`
	Magnitude int        `json:"magnitude"`
	Remaining int        `json:"remaining"`
	SourceID  *uuid.UUID `json:"source_id,omitempty"`
}

// LineageModifier représente un modificateur dérivé des familles ancestrales
type LineageModifier struct {
	Family    Family  `json:"family"`
	DamageMod float64 `json:"damage_mod"`
}

// AbilityState suit le cooldown restant d'une capacité pendant un combat
type AbilityState struct {
	AbilityID         string `json:"ability_id"`
	RemainingCooldown int    `json:"remaining_cooldown"`
}

// BattleParticipant représente l'enveloppe éphémère d'une créature en combat
type BattleParticipant struct {
	Creature  *Creature     `json:"creature"`
	Team      Team          `json:"team"`
	Position  BoardPosition `json:"position"`
	CurrentHP int           `json:"current_hp"`
	MaxHP     int           `json:"max_hp"`
	Energy    int           `json:"energy"`
	MaxEnergy int           `json:"max_energy"`

	Statuses  []StatusInstance  `json:"statuses,omitempty"`
	Buffs     []StatModifier    `json:"buffs,omitempty"`
	Debuffs   []StatModifier    `json:"debuffs,omitempty"`
	Cooldowns []AbilityState    `json:"cooldowns,omitempty"`
	Lineage   []LineageModifier `json:"lineage,omitempty"`

	DomainBoost         float64 `json:"domain_boost,omitempty"`
	DomainVulnerability float64 `json:"domain_vulnerability,omitempty"`
}

// IsAlive vérifie si le participant peut encore agir
func (p *BattleParticipant) IsAlive() bool {
	return p.CurrentHP > 0
}

// EffectiveStat retourne une statistique après application des buffs et debuffs,
// plancher zéro
func (p *BattleParticipant) EffectiveStat(axis StatAxis) int {
	var base int
	switch axis {
	case StatHP:
		base = p.MaxHP
	case StatAttack:
		base = p.Creature.Stats.Attack
	case StatDefense:
		base = p.Creature.Stats.Defense
	case StatSpeed:
		base = p.Creature.Stats.Speed
	}

	for _, b := range p.Buffs {
		if b.Stat == axis {
			base += b.Magnitude
		}
	}
	for _, d := range p.Debuffs {
		if d.Stat == axis {
			base -= d.Magnitude
		}
	}

	if base < 0 {
		base = 0
	}
	return base
}

// HasStatus vérifie si le participant subit une altération d'état donnée
func (p *BattleParticipant) HasStatus(status StatusType) bool {
	for _, s := range p.Statuses {
		if s.Type == status {
			return true
		}
	}
	return false
}

// CooldownFor retourne le cooldown restant d'une capacité
func (p *BattleParticipant) CooldownFor(abilityID string) int {
	for _, cd := range p.Cooldowns {
		if cd.AbilityID == abilityID {
			return cd.RemainingCooldown
		}
	}
	return 0
}

// DomainEffect représente un modificateur environnemental persistant du combat
type DomainEffect struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Element     Element `json:"element"`
	DamageBoost float64 `json:"damage_boost,omitempty"`
	Team        Team    `json:"team"`
}

// BattleAction représente une action soumise par le joueur pour l'acteur courant
type BattleAction struct {
	ActorID   uuid.UUID   `json:"actor_id"`
	AbilityID string      `json:"ability_id"`
	TargetIDs []uuid.UUID `json:"target_ids"`
}

// TargetResult représente le résultat d'un effet résolu contre une cible
type TargetResult struct {
	TargetID      uuid.UUID  `json:"target_id"`
	Kind          EffectKind `json:"kind"`
	Damage        int        `json:"damage,omitempty"`
	Healing       int        `json:"healing,omitempty"`
	StatusApplied StatusType `json:"status_applied,omitempty"`
	StatAffected  StatAxis   `json:"stat_affected,omitempty"`
	Lifesteal     int        `json:"lifesteal,omitempty"`
	IsCritical    bool       `json:"is_critical,omitempty"`
	Defeated      bool       `json:"defeated,omitempty"`
}

// BattleLogEntry représente une entrée du journal de combat, append-only
type BattleLogEntry struct {
	Turn      int            `json:"turn"`
	Round     int            `json:"round"`
	Action    BattleAction   `json:"action"`
	Results   []TargetResult `json:"results"`
	Timestamp time.Time      `json:"timestamp"`
}

// Battle représente une session de combat entre deux équipes
type Battle struct {
	ID            uuid.UUID            `json:"id" db:"id"`
	Team1         []*BattleParticipant `json:"team1" db:"-"`
	Team2         []*BattleParticipant `json:"team2" db:"-"`
	Turn          int                  `json:"turn" db:"turn"`
	Round         int                  `json:"round" db:"round"`
	TurnOrder     []uuid.UUID          `json:"turn_order" db:"-"`
	CurrentActor  int                  `json:"current_actor" db:"current_actor"`
	Log           []BattleLogEntry     `json:"log" db:"-"`
	DomainEffects []DomainEffect       `json:"domain_effects,omitempty" db:"-"`
	Seed          uint64               `json:"seed" db:"seed"`
	Completed     bool                 `json:"completed" db:"completed"`
	Winner        *Winner              `json:"winner,omitempty" db:"winner"`
	CreatedAt     time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at" db:"updated_at"`
}

// Participants retourne tous les participants des deux équipes
func (b *Battle) Participants() []*BattleParticipant {
	all := make([]*BattleParticipant, 0, len(b.Team1)+len(b.Team2))
	all = append(all, b.Team1...)
	all = append(all, b.Team2...)
	return all
}

// ParticipantByID retrouve un participant par l'identifiant de sa créature
func (b *Battle) ParticipantByID(id uuid.UUID) *BattleParticipant {
	for _, p := range b.Participants() {
		if p.Creature.ID == id {
			return p
		}
	}
	return nil
}

// AliveCount retourne le nombre de participants vivants d'une équipe
func (b *Battle) AliveCount(team Team) int {
	count := 0
	for _, p := range b.Participants() {
		if p.Team == team && p.IsAlive() {
			count++
		}
	}
	return count
}

// CurrentActorID retourne l'identifiant de l'acteur courant dans l'ordre du tour
func (b *Battle) CurrentActorID() uuid.UUID {
	if len(b.TurnOrder) == 0 {
		return uuid.Nil
	}
	return b.TurnOrder[b.CurrentActor]
}

// Validate vérifie les invariants structurels du combat
func (b *Battle) Validate() error {
	if len(b.Team1) == 0 || len(b.Team2) == 0 {
		return ErrEmptyRoster
	}
	if len(b.Team1) > 4 || len(b.Team2) > 4 {
		return ErrRosterTooLarge
	}
	if len(b.TurnOrder) != len(b.Team1)+len(b.Team2) {
		return ErrTurnOrderMismatch
	}
	// Terminé implique un vainqueur, et réciproquement
	if b.Completed && b.Winner == nil {
		return ErrInvalidBattleState
	}
	if !b.Completed && b.Winner != nil {
		return ErrInvalidBattleState
	}
	return nil
}
