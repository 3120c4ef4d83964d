package models

import (
	"time"

	"github.com/google/uuid"
)

// Family définit les dix familles élémentaires de créatures
type Family string

const (
	FamilyEmber  Family = "ember"
	FamilyTide   Family = "tide"
	FamilyTerra  Family = "terra"
	FamilyGale   Family = "gale"
	FamilyVolt   Family = "volt"
	FamilyFrost  Family = "frost"
	FamilyFlora  Family = "flora"
	FamilyShade  Family = "shade"
	FamilyLumen  Family = "lumen"
	FamilyChrono Family = "chrono"
)

// AllFamilies liste les familles dans un ordre stable
var AllFamilies = []Family{
	FamilyEmber, FamilyTide, FamilyTerra, FamilyGale, FamilyVolt,
	FamilyFrost, FamilyFlora, FamilyShade, FamilyLumen, FamilyChrono,
}

// Rarity définit le tier de rareté d'une créature (ordinal, six niveaux)
type Rarity int

const (
	RarityBasic Rarity = iota
	RarityRare
	RarityEpic
	RarityLegendary
	RarityAncient
	RarityMythic
)

var rarityNames = map[Rarity]string{
	RarityBasic:     "basic",
	RarityRare:      "rare",
	RarityEpic:      "epic",
	RarityLegendary: "legendary",
	RarityAncient:   "ancient",
	RarityMythic:    "mythic",
}

// String retourne le nom affichable du tier
func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return "unknown"
}

// IsValid vérifie que le tier est dans les bornes
func (r Rarity) IsValid() bool {
	return r >= RarityBasic && r <= RarityMythic
}

// StatBlock représente le bloc de statistiques de base d'une créature
type StatBlock struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

// IsValid vérifie que toutes les statistiques sont positives ou nulles
func (s StatBlock) IsValid() bool {
	return s.HP >= 0 && s.Attack >= 0 && s.Defense >= 0 && s.Speed >= 0
}

// FusionHistoryEntry représente une étape de fusion dans la lignée d'une créature
type FusionHistoryEntry struct {
	Generation     int       `json:"generation"`
	Parent1ID      uuid.UUID `json:"parent1_id"`
	Parent2ID      uuid.UUID `json:"parent2_id"`
	Parent1Family  Family    `json:"parent1_family"`
	Parent2Family  Family    `json:"parent2_family"`
	Stone1ID       uuid.UUID `json:"stone1_id"`
	Stone2ID       uuid.UUID `json:"stone2_id"`
	FusionSeed     uint64    `json:"fusion_seed"`
	MutationCount  int       `json:"mutation_count"`
	FusedAt        time.Time `json:"fused_at"`
}

// VisualGenome décrit les parties du corps héritées et les traits de mutation
type VisualGenome struct {
	BodyParts      map[string]string `json:"body_parts,omitempty"`
	MutationTraits []string          `json:"mutation_traits,omitempty"`
}

// Appearance représente l'apparence d'une créature
type Appearance struct {
	ColorMutation string        `json:"color_mutation"`
	Glow          float64       `json:"glow"`
	ParticleTag   string        `json:"particle_tag,omitempty"`
	VisualTags    []string      `json:"visual_tags,omitempty"`
	Genome        *VisualGenome `json:"genome,omitempty"`
}

// BattleCounters représente les compteurs de performance en combat
type BattleCounters struct {
	BattlesWon  int `json:"battles_won"`
	BattlesLost int `json:"battles_lost"`
	DamageDealt int `json:"damage_dealt"`
	DamageTaken int `json:"damage_taken"`
}

// Creature représente une créature collectionnable
type Creature struct {
	ID            uuid.UUID            `json:"id" db:"id"`
	OwnerID       uuid.UUID            `json:"owner_id" db:"owner_id"`
	Name          string               `json:"name" db:"name"`
	Family        Family               `json:"family" db:"family"`
	Rarity        Rarity               `json:"rarity" db:"rarity"`
	Stats         StatBlock            `json:"stats" db:"-"`
	Passives      []Ability            `json:"passives" db:"-"`
	Actives       []Ability            `json:"actives" db:"-"`
	Ultimate      *Ability             `json:"ultimate,omitempty" db:"-"`
	FusionHistory []FusionHistoryEntry `json:"fusion_history" db:"-"`
	TemplateID    *string              `json:"template_id" db:"template_id"`
	Appearance    Appearance           `json:"appearance" db:"-"`
	Counters      *BattleCounters      `json:"counters,omitempty" db:"-"`
	CreatedAt     time.Time            `json:"created_at" db:"created_at"`
}

// IsFused vérifie si la créature est issue d'une fusion
func (c *Creature) IsFused() bool {
	return len(c.FusionHistory) > 0
}

// Generation retourne le numéro de génération de la créature.
// Génération = max des générations de l'historique de fusion, 0 sans historique.
func (c *Creature) Generation() int {
	gen := 0
	for _, entry := range c.FusionHistory {
		if entry.Generation > gen {
			gen = entry.Generation
		}
	}
	return gen
}

// AbilityByID retrouve une capacité active ou ultimate par son identifiant
func (c *Creature) AbilityByID(id string) *Ability {
	for i := range c.Actives {
		if c.Actives[i].ID == id {
			return &c.Actives[i]
		}
	}
	if c.Ultimate != nil && c.Ultimate.ID == id {
		return c.Ultimate
	}
	return nil
}

// Validate vérifie les invariants structurels de la créature
func (c *Creature) Validate() error {
	if len(c.Actives) == 0 {
		return ErrNoActiveAbility
	}
	if !c.Stats.IsValid() {
		return ErrInvalidStats
	}
	if !c.Rarity.IsValid() {
		return ErrInvalidRarity
	}

	validFamily := false
	for _, f := range AllFamilies {
		if c.Family == f {
			validFamily = true
			break
		}
	}
	if !validFamily {
		return ErrInvalidFamily
	}

	// Une créature de départ référence son modèle; une créature fusionnée jamais
	if c.IsFused() && c.TemplateID != nil {
		return ErrInvalidLineage
	}
	if !c.IsFused() && c.TemplateID == nil {
		return ErrInvalidLineage
	}

	for i := range c.Passives {
		if err := c.Passives[i].Validate(); err != nil {
			return err
		}
	}
	for i := range c.Actives {
		if err := c.Actives[i].Validate(); err != nil {
			return err
		}
	}
	if c.Ultimate != nil {
		if err := c.Ultimate.Validate(); err != nil {
			return err
		}
	}

	return nil
}
