package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"creatures/internal/models"
)

// TestCreateBattleChecksOwnership ensures team 1 must belong to the creator.
func TestCreateBattleChecksOwnership(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	creatures := newFakeCreatureRepo()
	battles := newFakeBattleRepo()
	svc := NewBattleService(testConfig(), battles, creatures, NewBattleFeed())

	mine := seedParent(creatures, owner, models.FamilyEmber)
	theirs := seedParent(creatures, stranger, models.FamilyTide)

	_, err := svc.CreateBattle(owner, models.CreateBattleRequest{
		Team1: []uuid.UUID{theirs.ID},
		Team2: []uuid.UUID{mine.ID},
	})
	if !errors.Is(err, models.ErrCreatureNotOwned) {
		t.Fatalf("CreateBattle error = %v, want %v", err, models.ErrCreatureNotOwned)
	}
	if len(battles.battles) != 0 {
		t.Fatal("rejected battle must not be persisted")
	}
}

// TestCreateBattleAndSubmitAction covers the persisted battle lifecycle.
func TestCreateBattleAndSubmitAction(t *testing.T) {
	owner := uuid.New()
	opponent := uuid.New()
	creatures := newFakeCreatureRepo()
	battles := newFakeBattleRepo()
	svc := NewBattleService(testConfig(), battles, creatures, NewBattleFeed())

	mine := seedParent(creatures, owner, models.FamilyEmber)
	theirs := seedParent(creatures, opponent, models.FamilyTide)

	battle, err := svc.CreateBattle(owner, models.CreateBattleRequest{
		Team1: []uuid.UUID{mine.ID},
		Team2: []uuid.UUID{theirs.ID},
	})
	if err != nil {
		t.Fatalf("CreateBattle returned error: %v", err)
	}
	if _, ok := battles.battles[battle.ID]; !ok {
		t.Fatal("battle was not persisted")
	}

	actor := battle.CurrentActorID()
	var target uuid.UUID
	if actor == mine.ID {
		target = theirs.ID
	} else {
		target = mine.ID
	}

	resp, err := svc.SubmitAction(battle.ID, models.ActionRequest{
		ActorID:   actor,
		AbilityID: "claw",
		TargetIDs: []uuid.UUID{target},
	})
	if err != nil {
		t.Fatalf("SubmitAction returned error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Damage < 1 {
		t.Fatalf("results = %+v, want one damaging hit", resp.Results)
	}

	log, err := svc.GetBattleLog(battle.ID)
	if err != nil {
		t.Fatalf("GetBattleLog returned error: %v", err)
	}
	if len(log) != 1 {
		t.Fatalf("log length = %d, want 1", len(log))
	}
}

// TestSubmitActionUnknownBattle ensures missing sessions surface not found.
func TestSubmitActionUnknownBattle(t *testing.T) {
	svc := NewBattleService(testConfig(), newFakeBattleRepo(), newFakeCreatureRepo(), NewBattleFeed())

	_, err := svc.SubmitAction(uuid.New(), models.ActionRequest{ActorID: uuid.New(), AbilityID: "claw"})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("SubmitAction error = %v, want %v", err, models.ErrNotFound)
	}
}

// TestSubmitActionPublishesToFeed ensures subscribers receive the new log entry.
func TestSubmitActionPublishesToFeed(t *testing.T) {
	owner := uuid.New()
	opponent := uuid.New()
	creatures := newFakeCreatureRepo()
	battles := newFakeBattleRepo()
	feed := NewBattleFeed()
	svc := NewBattleService(testConfig(), battles, creatures, feed)

	mine := seedParent(creatures, owner, models.FamilyEmber)
	theirs := seedParent(creatures, opponent, models.FamilyTide)

	battle, err := svc.CreateBattle(owner, models.CreateBattleRequest{
		Team1: []uuid.UUID{mine.ID},
		Team2: []uuid.UUID{theirs.ID},
	})
	if err != nil {
		t.Fatalf("CreateBattle returned error: %v", err)
	}

	entries, cancel := feed.Subscribe(battle.ID)
	defer cancel()

	actor := battle.CurrentActorID()
	target := theirs.ID
	if actor == theirs.ID {
		target = mine.ID
	}
	if _, err := svc.SubmitAction(battle.ID, models.ActionRequest{
		ActorID: actor, AbilityID: "claw", TargetIDs: []uuid.UUID{target},
	}); err != nil {
		t.Fatalf("SubmitAction returned error: %v", err)
	}

	select {
	case entry := <-entries:
		if entry.Action.AbilityID != "claw" {
			t.Fatalf("entry = %+v, want claw action", entry)
		}
	default:
		t.Fatal("expected a log entry on the feed")
	}
}
