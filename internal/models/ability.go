package models

// AbilityType définit les types de capacités possibles
type AbilityType string

const (
	AbilityTypePassive  AbilityType = "passive"
	AbilityTypeActive   AbilityType = "active"
	AbilityTypeUltimate AbilityType = "ultimate"
)

// EffectKind définit les types d'effets d'une capacité
type EffectKind string

const (
	EffectKindDamage  EffectKind = "damage"
	EffectKindHeal    EffectKind = "heal"
	EffectKindBuff    EffectKind = "buff"
	EffectKindDebuff  EffectKind = "debuff"
	EffectKindStatus  EffectKind = "status"
	EffectKindSpecial EffectKind = "special"
)

// TargetSelector définit la sélection de cibles d'un effet
type TargetSelector string

const (
	TargetSelf        TargetSelector = "self"
	TargetEnemy       TargetSelector = "enemy"
	TargetAllEnemies  TargetSelector = "all_enemies"
	TargetAlly        TargetSelector = "ally"
	TargetAllAllies   TargetSelector = "all_allies"
)

// StatAxis définit l'axe de statistique affecté par un buff/debuff
type StatAxis string

const (
	StatHP      StatAxis = "hp"
	StatAttack  StatAxis = "attack"
	StatDefense StatAxis = "defense"
	StatSpeed   StatAxis = "speed"
)

// StatusType définit les altérations d'état applicables en combat
type StatusType string

const (
	StatusBurn   StatusType = "burn"
	StatusFreeze StatusType = "freeze"
	StatusPoison StatusType = "poison"
	StatusStun   StatusType = "stun"
	StatusShock  StatusType = "shock"
)

// AbilityEffect représente un effet unitaire d'une capacité
type AbilityEffect struct {
	Kind           EffectKind     `json:"kind"`
	Target         TargetSelector `json:"target"`
	Magnitude      int            `json:"magnitude"`
	Element        Element        `json:"element,omitempty"`
	StatusType     StatusType     `json:"status_type,omitempty"`
	StatusChance   float64        `json:"status_chance,omitempty"`
	StatusDuration int            `json:"status_duration,omitempty"`
	StatAffected   StatAxis       `json:"stat_affected,omitempty"`
	Duration       int            `json:"duration,omitempty"`
	LifestealPct   float64        `json:"lifesteal_pct,omitempty"`
	ScalesWith     StatAxis       `json:"scales_with,omitempty"`
}

// Ability représente une capacité de combat, valeur immuable
type Ability struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        AbilityType     `json:"type"`
	Tier        int             `json:"tier"`
	EnergyCost  int             `json:"energy_cost,omitempty"`
	Cooldown    int             `json:"cooldown,omitempty"`
	Effects     []AbilityEffect `json:"effects"`
	Tags        []string        `json:"tags,omitempty"`
	Element     Element         `json:"element,omitempty"`
}

// IsPassive vérifie si la capacité est passive
func (a *Ability) IsPassive() bool {
	return a.Type == AbilityTypePassive
}

// Validate vérifie les invariants structurels de la capacité
func (a *Ability) Validate() error {
	if len(a.Effects) == 0 {
		return ErrInvalidAbility
	}

	// Les passives ne portent jamais de coût ni de cooldown
	if a.IsPassive() && (a.EnergyCost != 0 || a.Cooldown != 0) {
		return ErrInvalidAbility
	}

	// Les actives et ultimates portent toujours un coût
	if !a.IsPassive() && a.EnergyCost <= 0 {
		return ErrInvalidAbility
	}

	return nil
}
