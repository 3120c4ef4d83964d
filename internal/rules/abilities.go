package rules

import "creatures/internal/models"

// AbilityCatalog retourne le catalogue des capacités prédéfinies
func AbilityCatalog() map[string]models.Ability {
	return map[string]models.Ability{
		"strike": {
			ID:          "strike",
			Name:        "Strike",
			Description: "A direct physical blow",
			Type:        models.AbilityTypeActive,
			Tier:        1,
			EnergyCost:  10,
			Cooldown:    0,
			Effects: []models.AbilityEffect{
				{Kind: models.EffectKindDamage, Target: models.TargetEnemy, Magnitude: 12, ScalesWith: models.StatAttack},
			},
			Tags: []string{"physical", "basic"},
		},
		"flame_burst": {
			ID:          "flame_burst",
			Name:        "Flame Burst",
			Description: "A burst of fire that may leave the target burning",
			Type:        models.AbilityTypeActive,
			Tier:        2,
			EnergyCost:  25,
			Cooldown:    2,
			Element:     models.ElementFire,
			Effects: []models.AbilityEffect{
				{Kind: models.EffectKindDamage, Target: models.TargetEnemy, Magnitude: 18, Element: models.ElementFire, ScalesWith: models.StatAttack},
				{Kind: models.EffectKindStatus, Target: models.TargetEnemy, Magnitude: 4, StatusType: models.StatusBurn, StatusChance: 0.35, StatusDuration: 2},
			},
			Tags: []string{"fire", "dot"},
		},
		"tidal_mend": {
			ID:          "tidal_mend",
			Name:        "Tidal Mend",
			Description: "Soothing waters restore an ally",
			Type:        models.AbilityTypeActive,
			Tier:        2,
			EnergyCost:  20,
			Cooldown:    2,
			Element:     models.ElementWater,
			Effects: []models.AbilityEffect{
				{Kind: models.EffectKindHeal, Target: models.TargetAlly, Magnitude: 22},
			},
			Tags: []string{"water", "support"},
		},
		"stone_wall": {
			ID:          "stone_wall",
			Name:        "Stone Wall",
			Description: "Hardens the caster's hide for a few rounds",
			Type:        models.AbilityTypeActive,
			Tier:        2,
			EnergyCost:  15,
			Cooldown:    3,
			Element:     models.ElementEarth,
			Effects: []models.AbilityEffect{
				{Kind: models.EffectKindBuff, Target: models.TargetSelf, Magnitude: 8, StatAffected: models.StatDefense, Duration: 3},
			},
			Tags: []string{"earth", "defense"},
		},
		"gale_slash": {
			ID:          "gale_slash",
			Name:        "Gale Slash",
			Description: "A slicing wind that cuts every foe",
			Type:        models.AbilityTypeActive,
			Tier:        3,
			EnergyCost:  35,
			Cooldown:    3,
			Element:     models.ElementAir,
			Effects: []models.AbilityEffect{
				{Kind: models.EffectKindDamage, Target: models.TargetAllEnemies, Magnitude: 10, Element: models.ElementAir, ScalesWith: models.StatAttack},
			},
			Tags: []string{"air", "aoe"},
		},
		"static_snare": {
			ID:          "static_snare",
			Name:        "Static Snare",
			Description: "Shocks the target and saps its speed",
			Type:        models.AbilityTypeActive,
			Tier:        2,
			EnergyCost:  22,
			Cooldown:    2,
			Element:     models.ElementLightning,
			Effects: []models.AbilityEffect{
				{Kind: models.EffectKindDamage, Target: models.TargetEnemy, Magnitude: 14, Element: models.ElementLightning, ScalesWith: models.StatAttack},
				{Kind: models.EffectKindDebuff, Target: models.TargetEnemy, Magnitude: 4, StatAffected: models.StatSpeed, Duration: 2},
			},
			Tags: []string{"lightning", "control"},
		},
		"leech_fang": {
			ID:          "leech_fang",
			Name:        "Leech Fang",
			Description: "A draining bite that feeds the attacker",
			Type:        models.AbilityTypeActive,
			Tier:        3,
			EnergyCost:  30,
			Cooldown:    3,
			Element:     models.ElementShadow,
			Effects: []models.AbilityEffect{
				{Kind: models.EffectKindDamage, Target: models.TargetEnemy, Magnitude: 16, Element: models.ElementShadow, LifestealPct: 0.5, ScalesWith: models.StatAttack},
			},
			Tags: []string{"shadow", "lifesteal"},
		},
		"thick_hide": {
			ID:          "thick_hide",
			Name:        "Thick Hide",
			Description: "Naturally toughened skin",
			Type:        models.AbilityTypePassive,
			Tier:        1,
			Effects: []models.AbilityEffect{
				{Kind: models.EffectKindSpecial, Target: models.TargetSelf, Magnitude: 2, StatAffected: models.StatDefense},
			},
			Tags: []string{"passive", "defense"},
		},
		"keen_senses": {
			ID:          "keen_senses",
			Name:        "Keen Senses",
			Description: "Heightened awareness sharpens reflexes",
			Type:        models.AbilityTypePassive,
			Tier:        1,
			Effects: []models.AbilityEffect{
				{Kind: models.EffectKindSpecial, Target: models.TargetSelf, Magnitude: 2, StatAffected: models.StatSpeed},
			},
			Tags: []string{"passive", "speed"},
		},
		"cataclysm": {
			ID:          "cataclysm",
			Name:        "Cataclysm",
			Description: "An overwhelming release of raw elemental power",
			Type:        models.AbilityTypeUltimate,
			Tier:        5,
			EnergyCost:  80,
			Cooldown:    5,
			Effects: []models.AbilityEffect{
				{Kind: models.EffectKindDamage, Target: models.TargetAllEnemies, Magnitude: 30, ScalesWith: models.StatAttack},
				{Kind: models.EffectKindDebuff, Target: models.TargetAllEnemies, Magnitude: 3, StatAffected: models.StatDefense, Duration: 2},
			},
			Tags: []string{"ultimate", "aoe"},
		},
	}
}

// familyActives associe chaque famille à sa capacité active signature
var familyActives = map[models.Family]string{
	models.FamilyEmber:  "flame_burst",
	models.FamilyTide:   "tidal_mend",
	models.FamilyTerra:  "stone_wall",
	models.FamilyGale:   "gale_slash",
	models.FamilyVolt:   "static_snare",
	models.FamilyFrost:  "stone_wall",
	models.FamilyFlora:  "tidal_mend",
	models.FamilyShade:  "leech_fang",
	models.FamilyLumen:  "tidal_mend",
	models.FamilyChrono: "gale_slash",
}

// StarterAbilities retourne les capacités de départ d'une famille:
// l'attaque de base plus la capacité signature de la famille
func StarterAbilities(f models.Family) []models.Ability {
	catalog := AbilityCatalog()
	actives := []models.Ability{catalog["strike"]}
	if id, ok := familyActives[f]; ok {
		actives = append(actives, catalog[id])
	}
	return actives
}
