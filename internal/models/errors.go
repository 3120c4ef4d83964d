package models

import "errors"

// Erreurs structurelles - levées à la construction, jamais récupérables
var (
	ErrNoActiveAbility   = errors.New("creature must have at least one active ability")
	ErrInvalidAbility    = errors.New("ability violates its structural invariants")
	ErrInvalidStats      = errors.New("creature stats must be non-negative")
	ErrInvalidRarity     = errors.New("invalid rarity tier")
	ErrInvalidFamily     = errors.New("invalid creature family")
	ErrInvalidStoneTier  = errors.New("stone tier must be between I and V")
	ErrInvalidLineage    = errors.New("template reference inconsistent with fusion history")
	ErrEmptyRoster       = errors.New("battle roster cannot be empty")
	ErrRosterTooLarge    = errors.New("battle roster cannot exceed 4 participants")
	ErrTurnOrderMismatch = errors.New("turn order length does not match participant count")
	ErrInvalidBattleState = errors.New("battle completion flag inconsistent with winner")
)

// Erreurs de contrat - rejettent une seule action, l'état du combat reste inchangé
var (
	ErrBattleComplete     = errors.New("battle is already complete")
	ErrNotYourTurn        = errors.New("it is not this participant's turn")
	ErrActorNotFound      = errors.New("acting participant not found in battle")
	ErrActorDefeated      = errors.New("acting participant is defeated")
	ErrUnknownAbility     = errors.New("ability not known by this creature")
	ErrAbilityOnCooldown  = errors.New("ability is still on cooldown")
	ErrNotEnoughEnergy    = errors.New("not enough energy for this ability")
	ErrInvalidTarget      = errors.New("invalid action target")
)

// Erreurs d'autorisation
var (
	ErrStoneNotOwned    = errors.New("catalyst stone does not belong to the requesting player")
	ErrCreatureNotOwned = errors.New("creature does not belong to the requesting player")
)

// Erreurs de requête de fusion
var (
	ErrStoneConsumed = errors.New("catalyst stone has already been consumed")
	ErrSameCreature  = errors.New("a creature cannot be fused with itself")
	ErrSameStone     = errors.New("the two catalyst stones must be distinct")
)

// ErrNotFound est retournée par les repositories quand l'entité n'existe pas
var ErrNotFound = errors.New("entity not found")
