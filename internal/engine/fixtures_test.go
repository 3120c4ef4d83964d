package engine

import (
	"time"

	"github.com/google/uuid"

	"creatures/internal/models"
)

// Fixtures partagées par les tests du moteur. Les identifiants sont fixés
// pour que l'ordre du tour et les graines dérivées soient reproductibles.

var (
	fixedTime  = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	fixedOwner = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
)

func mustID(s string) uuid.UUID {
	return uuid.MustParse(s)
}

func strikeAbility() models.Ability {
	return models.Ability{
		ID:         "strike",
		Name:       "Strike",
		Type:       models.AbilityTypeActive,
		Tier:       1,
		EnergyCost: 10,
		Effects: []models.AbilityEffect{{
			Kind:       models.EffectKindDamage,
			Target:     models.TargetEnemy,
			Magnitude:  20,
			ScalesWith: models.StatAttack,
		}},
	}
}

func mendAbility() models.Ability {
	return models.Ability{
		ID:         "mend",
		Name:       "Mend",
		Type:       models.AbilityTypeActive,
		Tier:       1,
		EnergyCost: 10,
		Effects: []models.AbilityEffect{{
			Kind:      models.EffectKindHeal,
			Target:    models.TargetSelf,
			Magnitude: 15,
		}},
	}
}

func starterCreature(id string, family models.Family, rarity models.Rarity, stats models.StatBlock) *models.Creature {
	template := "starter-" + string(family)
	return &models.Creature{
		ID:         mustID(id),
		OwnerID:    fixedOwner,
		Name:       string(family) + " starter",
		Family:     family,
		Rarity:     rarity,
		Stats:      stats,
		Actives:    []models.Ability{strikeAbility(), mendAbility()},
		TemplateID: &template,
		CreatedAt:  fixedTime,
	}
}

func catalystStone(id string, element models.Element, tier models.StoneTier, power int) *models.Stone {
	return &models.Stone{
		ID:             mustID(id),
		OwnerID:        fixedOwner,
		Element:        element,
		Tier:           tier,
		StatBonus:      map[models.StatAxis]int{},
		ElementalPower: power,
		AcquiredAt:     fixedTime,
	}
}
