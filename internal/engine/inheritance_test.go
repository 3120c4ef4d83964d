package engine

import (
	"reflect"
	"testing"

	"creatures/internal/models"
)

func activeAbility(id string, tier int) models.Ability {
	return models.Ability{
		ID:         id,
		Name:       id,
		Type:       models.AbilityTypeActive,
		Tier:       tier,
		EnergyCost: 10,
		Effects: []models.AbilityEffect{{
			Kind:      models.EffectKindDamage,
			Target:    models.TargetEnemy,
			Magnitude: 10,
		}},
	}
}

// TestResolveAbilitiesDedupes ensures a shared ability is inherited once.
func TestResolveAbilitiesDedupes(t *testing.T) {
	p1 := starterCreature("11111111-1111-1111-1111-111111111111", models.FamilyEmber, models.RarityBasic, models.StatBlock{HP: 100, Attack: 10, Defense: 10, Speed: 10})
	p2 := starterCreature("22222222-2222-2222-2222-222222222222", models.FamilyTide, models.RarityBasic, models.StatBlock{HP: 100, Attack: 10, Defense: 10, Speed: 10})

	p1.Actives = []models.Ability{activeAbility("ember-claw", 2), activeAbility("shared-bite", 1)}
	p2.Actives = []models.Ability{activeAbility("shared-bite", 1), activeAbility("tide-pull", 2)}

	got := ResolveAbilities(p1, p2)
	if len(got.Actives) != 3 {
		t.Fatalf("actives = %d, want 3", len(got.Actives))
	}
	seen := map[string]int{}
	for _, a := range got.Actives {
		seen[a.ID]++
	}
	if seen["shared-bite"] != 1 {
		t.Fatalf("shared ability inherited %d times, want 1", seen["shared-bite"])
	}
}

// TestResolveAbilitiesCapsActives ensures the overflow is discarded by tier
// descending then identifier ascending.
func TestResolveAbilitiesCapsActives(t *testing.T) {
	p1 := starterCreature("11111111-1111-1111-1111-111111111111", models.FamilyEmber, models.RarityBasic, models.StatBlock{HP: 100, Attack: 10, Defense: 10, Speed: 10})
	p2 := starterCreature("22222222-2222-2222-2222-222222222222", models.FamilyTide, models.RarityBasic, models.StatBlock{HP: 100, Attack: 10, Defense: 10, Speed: 10})

	p1.Actives = []models.Ability{
		activeAbility("ember-claw", 1),
		activeAbility("ash-storm", 2),
		activeAbility("cinder-burst", 3),
	}
	p2.Actives = []models.Ability{
		activeAbility("tide-pull", 2),
		activeAbility("abyss-maw", 4),
		activeAbility("mist-veil", 1),
	}

	got := ResolveAbilities(p1, p2)
	if len(got.Actives) != MaxActiveAbilities {
		t.Fatalf("actives = %d, want %d", len(got.Actives), MaxActiveAbilities)
	}

	wantOrder := []string{"abyss-maw", "cinder-burst", "ash-storm", "tide-pull"}
	for i, want := range wantOrder {
		if got.Actives[i].ID != want {
			t.Fatalf("actives[%d] = %s, want %s", i, got.Actives[i].ID, want)
		}
	}
}

// TestResolveAbilitiesUltimate ensures the highest tier ultimate wins, with
// the lower identifier breaking ties.
func TestResolveAbilitiesUltimate(t *testing.T) {
	p1 := starterCreature("11111111-1111-1111-1111-111111111111", models.FamilyEmber, models.RarityBasic, models.StatBlock{HP: 100, Attack: 10, Defense: 10, Speed: 10})
	p2 := starterCreature("22222222-2222-2222-2222-222222222222", models.FamilyTide, models.RarityBasic, models.StatBlock{HP: 100, Attack: 10, Defense: 10, Speed: 10})

	lower := activeAbility("zenith", 4)
	lower.Type = models.AbilityTypeUltimate
	higher := activeAbility("maelstrom", 5)
	higher.Type = models.AbilityTypeUltimate

	p1.Ultimate = &lower
	p2.Ultimate = &higher

	got := ResolveAbilities(p1, p2)
	if got.Ultimate == nil || got.Ultimate.ID != "maelstrom" {
		t.Fatalf("ultimate = %+v, want maelstrom", got.Ultimate)
	}

	// Égalité de tier: identifiant croissant
	tied := activeAbility("alpha", 5)
	tied.Type = models.AbilityTypeUltimate
	p1.Ultimate = &tied

	got = ResolveAbilities(p1, p2)
	if got.Ultimate == nil || got.Ultimate.ID != "alpha" {
		t.Fatalf("ultimate = %+v, want alpha", got.Ultimate)
	}
}

// TestResolveAppearanceDeterministic ensures the same stream seed reproduces
// the same appearance.
func TestResolveAppearanceDeterministic(t *testing.T) {
	p1 := starterCreature("11111111-1111-1111-1111-111111111111", models.FamilyEmber, models.RarityBasic, models.StatBlock{HP: 100, Attack: 10, Defense: 10, Speed: 10})
	p2 := starterCreature("22222222-2222-2222-2222-222222222222", models.FamilyTide, models.RarityBasic, models.StatBlock{HP: 100, Attack: 10, Defense: 10, Speed: 10})
	mutation := models.MutationResult{Multiplier: 1.0}

	a := ResolveAppearance(NewStream(99), p1, p2, mutation)
	b := ResolveAppearance(NewStream(99), p1, p2, mutation)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("appearance diverged:\n%+v\n%+v", a, b)
	}
}

// TestResolveAppearanceMutationTraits ensures visual mutation traits only show
// up when the glitch actually triggered.
func TestResolveAppearanceMutationTraits(t *testing.T) {
	p1 := starterCreature("11111111-1111-1111-1111-111111111111", models.FamilyEmber, models.RarityBasic, models.StatBlock{HP: 100, Attack: 10, Defense: 10, Speed: 10})
	p1.Appearance.ParticleTag = "embers"
	p2 := starterCreature("22222222-2222-2222-2222-222222222222", models.FamilyTide, models.RarityBasic, models.StatBlock{HP: 100, Attack: 10, Defense: 10, Speed: 10})

	plain := ResolveAppearance(NewStream(7), p1, p2, models.MutationResult{Multiplier: 1.0})
	if plain.Genome != nil && len(plain.Genome.MutationTraits) != 0 {
		t.Fatalf("unexpected mutation traits without glitch: %v", plain.Genome.MutationTraits)
	}
	if plain.ParticleTag != "embers" {
		t.Fatalf("particle = %s, want inherited embers", plain.ParticleTag)
	}

	extreme := ResolveAppearance(NewStream(7), p1, p2, models.MutationResult{
		Glitched:   true,
		Severity:   90,
		Level:      models.SeverityExtreme,
		Multiplier: 2.0,
	})
	if extreme.ParticleTag != "glitch-static" {
		t.Fatalf("particle = %s, want glitch-static", extreme.ParticleTag)
	}
	found := false
	for _, trait := range extreme.Genome.MutationTraits {
		if trait == "void-touched" {
			found = true
		}
	}
	if !found {
		t.Fatalf("traits = %v, want void-touched present", extreme.Genome.MutationTraits)
	}
}

// TestResolveAppearanceMergesGenome ensures body parts merge with the first
// parent taking precedence on shared parts.
func TestResolveAppearanceMergesGenome(t *testing.T) {
	p1 := starterCreature("11111111-1111-1111-1111-111111111111", models.FamilyEmber, models.RarityBasic, models.StatBlock{HP: 100, Attack: 10, Defense: 10, Speed: 10})
	p1.Appearance.Genome = &models.VisualGenome{BodyParts: map[string]string{"head": "horned"}}
	p2 := starterCreature("22222222-2222-2222-2222-222222222222", models.FamilyTide, models.RarityBasic, models.StatBlock{HP: 100, Attack: 10, Defense: 10, Speed: 10})
	p2.Appearance.Genome = &models.VisualGenome{BodyParts: map[string]string{"head": "plated", "tail": "finned"}}

	got := ResolveAppearance(NewStream(3), p1, p2, models.MutationResult{Multiplier: 1.0})
	if got.Genome.BodyParts["head"] != "horned" {
		t.Fatalf("head = %s, want horned", got.Genome.BodyParts["head"])
	}
	if got.Genome.BodyParts["tail"] != "finned" {
		t.Fatalf("tail = %s, want finned", got.Genome.BodyParts["tail"])
	}
}
