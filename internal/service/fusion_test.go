package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"creatures/internal/config"
	"creatures/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		Fusion: config.FusionConfig{MaxNameLength: 48, AllowPreview: true},
		Rating: config.RatingConfig{LeaderboardSize: 100},
	}
}

func seedParent(repo *fakeCreatureRepo, owner uuid.UUID, family models.Family) *models.Creature {
	template := "starter-" + string(family)
	c := &models.Creature{
		ID:      uuid.New(),
		OwnerID: owner,
		Name:    string(family) + " starter",
		Family:  family,
		Rarity:  models.RarityBasic,
		Stats:   models.StatBlock{HP: 100, Attack: 10, Defense: 10, Speed: 10},
		Actives: []models.Ability{{
			ID: "claw", Name: "Claw", Type: models.AbilityTypeActive, EnergyCost: 10,
			Effects: []models.AbilityEffect{{Kind: models.EffectKindDamage, Target: models.TargetEnemy, Magnitude: 10}},
		}},
		TemplateID: &template,
		CreatedAt:  time.Now(),
	}
	repo.creatures[c.ID] = c
	return c
}

func seedStone(repo *fakeStoneRepo, owner uuid.UUID, element models.Element) *models.Stone {
	s := &models.Stone{
		ID:         uuid.New(),
		OwnerID:    owner,
		Element:    element,
		Tier:       models.StoneTierII,
		StatBonus:  map[models.StatAxis]int{},
		AcquiredAt: time.Now(),
	}
	repo.stones[s.ID] = s
	return s
}

// TestFuseConsumesStonesAndPersists covers the happy path end to end.
func TestFuseConsumesStonesAndPersists(t *testing.T) {
	owner := uuid.New()
	creatures := newFakeCreatureRepo()
	stones := newFakeStoneRepo()
	svc := NewFusionService(testConfig(), creatures, stones)

	p1 := seedParent(creatures, owner, models.FamilyEmber)
	p2 := seedParent(creatures, owner, models.FamilyTide)
	s1 := seedStone(stones, owner, models.ElementFire)
	s2 := seedStone(stones, owner, models.ElementWater)

	resp, err := svc.Fuse(owner, models.FusionRequest{
		Parent1ID: p1.ID, Parent2ID: p2.ID,
		Stone1ID: s1.ID, Stone2ID: s2.ID,
		Name: "Vapormaw",
	})
	if err != nil {
		t.Fatalf("Fuse returned error: %v", err)
	}

	if resp.Creature.Name != "Vapormaw" || resp.Creature.OwnerID != owner {
		t.Fatalf("creature = %+v", resp.Creature)
	}
	if !s1.Consumed || !s2.Consumed {
		t.Fatal("both stones must be consumed")
	}
	if _, ok := creatures.creatures[resp.Creature.ID]; !ok {
		t.Fatal("fused creature was not persisted")
	}
	if resp.Signature == nil || resp.Signature.Seed == 0 {
		t.Fatalf("signature = %+v", resp.Signature)
	}
}

// TestFuseDefaultsNameFromInteraction ensures the crossing name is used when
// the player does not pick one, truncated to the configured cap.
func TestFuseDefaultsNameFromInteraction(t *testing.T) {
	owner := uuid.New()
	creatures := newFakeCreatureRepo()
	stones := newFakeStoneRepo()
	cfg := testConfig()
	cfg.Fusion.MaxNameLength = 5
	svc := NewFusionService(cfg, creatures, stones)

	p1 := seedParent(creatures, owner, models.FamilyEmber)
	p2 := seedParent(creatures, owner, models.FamilyTide)
	s1 := seedStone(stones, owner, models.ElementFire)
	s2 := seedStone(stones, owner, models.ElementWater)

	resp, err := svc.Fuse(owner, models.FusionRequest{
		Parent1ID: p1.ID, Parent2ID: p2.ID,
		Stone1ID: s1.ID, Stone2ID: s2.ID,
	})
	if err != nil {
		t.Fatalf("Fuse returned error: %v", err)
	}
	if len(resp.Creature.Name) != 5 || !strings.HasPrefix("Vapor Surge", resp.Creature.Name) {
		t.Fatalf("name = %q, want truncated interaction name", resp.Creature.Name)
	}
}

// TestFuseRejectsForeignInputs ensures ownership is checked before any state
// changes.
func TestFuseRejectsForeignInputs(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	creatures := newFakeCreatureRepo()
	stones := newFakeStoneRepo()
	svc := NewFusionService(testConfig(), creatures, stones)

	p1 := seedParent(creatures, owner, models.FamilyEmber)
	p2 := seedParent(creatures, stranger, models.FamilyTide)
	s1 := seedStone(stones, owner, models.ElementFire)
	s2 := seedStone(stones, owner, models.ElementWater)

	_, err := svc.Fuse(owner, models.FusionRequest{
		Parent1ID: p1.ID, Parent2ID: p2.ID,
		Stone1ID: s1.ID, Stone2ID: s2.ID,
	})
	if !errors.Is(err, models.ErrCreatureNotOwned) {
		t.Fatalf("Fuse error = %v, want %v", err, models.ErrCreatureNotOwned)
	}
	if s1.Consumed || s2.Consumed {
		t.Fatal("rejected fusion must not consume stones")
	}
}

// TestFuseRejectsConsumedStone ensures a spent catalyst fails the fusion
// without creating a creature.
func TestFuseRejectsConsumedStone(t *testing.T) {
	owner := uuid.New()
	creatures := newFakeCreatureRepo()
	stones := newFakeStoneRepo()
	svc := NewFusionService(testConfig(), creatures, stones)

	p1 := seedParent(creatures, owner, models.FamilyEmber)
	p2 := seedParent(creatures, owner, models.FamilyTide)
	s1 := seedStone(stones, owner, models.ElementFire)
	s2 := seedStone(stones, owner, models.ElementWater)
	s1.Consumed = true

	before := len(creatures.creatures)
	_, err := svc.Fuse(owner, models.FusionRequest{
		Parent1ID: p1.ID, Parent2ID: p2.ID,
		Stone1ID: s1.ID, Stone2ID: s2.ID,
	})
	if !errors.Is(err, models.ErrStoneConsumed) {
		t.Fatalf("Fuse error = %v, want %v", err, models.ErrStoneConsumed)
	}
	if len(creatures.creatures) != before {
		t.Fatal("failed fusion must not create a creature")
	}
}

// TestFuseRejectsUnknownStone ensures a missing stone id surfaces as a
// not-found error, distinct from the already-consumed one.
func TestFuseRejectsUnknownStone(t *testing.T) {
	owner := uuid.New()
	creatures := newFakeCreatureRepo()
	stones := newFakeStoneRepo()
	svc := NewFusionService(testConfig(), creatures, stones)

	p1 := seedParent(creatures, owner, models.FamilyEmber)
	p2 := seedParent(creatures, owner, models.FamilyTide)
	s1 := seedStone(stones, owner, models.ElementFire)

	_, err := svc.Fuse(owner, models.FusionRequest{
		Parent1ID: p1.ID, Parent2ID: p2.ID,
		Stone1ID: s1.ID, Stone2ID: uuid.New(),
	})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("Fuse error = %v, want %v", err, models.ErrNotFound)
	}
	if s1.Consumed {
		t.Fatal("rejected fusion must not consume stones")
	}
}

// TestPreviewIsSideEffectFree ensures the preview consumes and persists nothing.
func TestPreviewIsSideEffectFree(t *testing.T) {
	owner := uuid.New()
	creatures := newFakeCreatureRepo()
	stones := newFakeStoneRepo()
	svc := NewFusionService(testConfig(), creatures, stones)

	p1 := seedParent(creatures, owner, models.FamilyEmber)
	p2 := seedParent(creatures, owner, models.FamilyTide)
	s1 := seedStone(stones, owner, models.ElementFire)
	s2 := seedStone(stones, owner, models.ElementWater)

	before := len(creatures.creatures)
	sig, err := svc.Preview(owner, models.FusionRequest{
		Parent1ID: p1.ID, Parent2ID: p2.ID,
		Stone1ID: s1.ID, Stone2ID: s2.ID,
	})
	if err != nil {
		t.Fatalf("Preview returned error: %v", err)
	}
	if sig == nil || sig.Interaction.Name == "" {
		t.Fatalf("signature = %+v", sig)
	}
	if s1.Consumed || s2.Consumed {
		t.Fatal("preview must not consume stones")
	}
	if len(creatures.creatures) != before {
		t.Fatal("preview must not persist a creature")
	}
}
