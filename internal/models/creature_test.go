package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func validStarter() *Creature {
	template := "starter-ember"
	return &Creature{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Name:    "Cindertail",
		Family:  FamilyEmber,
		Rarity:  RarityBasic,
		Stats:   StatBlock{HP: 90, Attack: 14, Defense: 8, Speed: 12},
		Actives: []Ability{{
			ID: "claw", Name: "Claw", Type: AbilityTypeActive, EnergyCost: 10,
			Effects: []AbilityEffect{{Kind: EffectKindDamage, Target: TargetEnemy, Magnitude: 10}},
		}},
		TemplateID: &template,
	}
}

// TestCreatureValidate exercises the structural invariants.
func TestCreatureValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Creature)
		want   error
	}{
		{"valid starter", func(c *Creature) {}, nil},
		{"no active ability", func(c *Creature) {
			c.Actives = nil
		}, ErrNoActiveAbility},
		{"negative stat", func(c *Creature) {
			c.Stats.Attack = -1
		}, ErrInvalidStats},
		{"rarity out of range", func(c *Creature) {
			c.Rarity = 42
		}, ErrInvalidRarity},
		{"unknown family", func(c *Creature) {
			c.Family = "kraken"
		}, ErrInvalidFamily},
		{"fused creature keeps template", func(c *Creature) {
			c.FusionHistory = []FusionHistoryEntry{{Generation: 1}}
		}, ErrInvalidLineage},
		{"starter without template", func(c *Creature) {
			c.TemplateID = nil
		}, ErrInvalidLineage},
		{"invalid passive", func(c *Creature) {
			c.Passives = []Ability{{ID: "broken", Type: AbilityTypePassive, EnergyCost: 5,
				Effects: []AbilityEffect{{Kind: EffectKindSpecial, Target: TargetSelf}}}}
		}, ErrInvalidAbility},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := validStarter()
			tc.mutate(c)
			if err := c.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

// TestCreatureGeneration ensures generation is the deepest history entry.
func TestCreatureGeneration(t *testing.T) {
	c := validStarter()
	if c.Generation() != 0 {
		t.Fatalf("starter generation = %d, want 0", c.Generation())
	}

	c.TemplateID = nil
	c.FusionHistory = []FusionHistoryEntry{{Generation: 1}, {Generation: 3}, {Generation: 2}}
	if c.Generation() != 3 {
		t.Fatalf("generation = %d, want 3", c.Generation())
	}
	if !c.IsFused() {
		t.Fatal("creature with history must report fused")
	}
}

// TestAbilityByID ensures actives and the ultimate are addressable, passives
// are not.
func TestAbilityByID(t *testing.T) {
	c := validStarter()
	c.Passives = []Ability{{ID: "thick-hide", Type: AbilityTypePassive,
		Effects: []AbilityEffect{{Kind: EffectKindSpecial, Target: TargetSelf, StatAffected: StatDefense, Magnitude: 2}}}}
	c.Ultimate = &Ability{ID: "inferno", Type: AbilityTypeUltimate, EnergyCost: 50,
		Effects: []AbilityEffect{{Kind: EffectKindDamage, Target: TargetAllEnemies, Magnitude: 60}}}

	if got := c.AbilityByID("claw"); got == nil || got.ID != "claw" {
		t.Fatalf("AbilityByID(claw) = %+v", got)
	}
	if got := c.AbilityByID("inferno"); got == nil || got.ID != "inferno" {
		t.Fatalf("AbilityByID(inferno) = %+v", got)
	}
	if got := c.AbilityByID("thick-hide"); got != nil {
		t.Fatalf("AbilityByID(thick-hide) = %+v, want nil", got)
	}
	if got := c.AbilityByID("missing"); got != nil {
		t.Fatalf("AbilityByID(missing) = %+v, want nil", got)
	}
}
