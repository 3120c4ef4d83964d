package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

// TestEffectiveStat ensures buffs and debuffs stack additively with a zero
// floor.
func TestEffectiveStat(t *testing.T) {
	p := &BattleParticipant{
		Creature: &Creature{Stats: StatBlock{Attack: 10, Defense: 8, Speed: 12}},
		MaxHP:    100,
	}

	if got := p.EffectiveStat(StatAttack); got != 10 {
		t.Fatalf("base attack = %d, want 10", got)
	}

	p.Buffs = append(p.Buffs, StatModifier{Stat: StatAttack, Magnitude: 5, Remaining: 2})
	p.Debuffs = append(p.Debuffs, StatModifier{Stat: StatAttack, Magnitude: 3, Remaining: 2})
	if got := p.EffectiveStat(StatAttack); got != 12 {
		t.Fatalf("modified attack = %d, want 12", got)
	}

	p.Debuffs = append(p.Debuffs, StatModifier{Stat: StatSpeed, Magnitude: 50, Remaining: 1})
	if got := p.EffectiveStat(StatSpeed); got != 0 {
		t.Fatalf("floored speed = %d, want 0", got)
	}

	if got := p.EffectiveStat(StatHP); got != 100 {
		t.Fatalf("hp axis = %d, want max HP 100", got)
	}
}

// TestHasStatusAndCooldowns covers the participant state lookups.
func TestHasStatusAndCooldowns(t *testing.T) {
	p := &BattleParticipant{Creature: &Creature{}}

	if p.HasStatus(StatusBurn) {
		t.Fatal("unexpected burn status")
	}
	p.Statuses = append(p.Statuses, StatusInstance{Type: StatusBurn, Remaining: 2})
	if !p.HasStatus(StatusBurn) {
		t.Fatal("burn status not reported")
	}

	if got := p.CooldownFor("claw"); got != 0 {
		t.Fatalf("cooldown = %d, want 0", got)
	}
	p.Cooldowns = append(p.Cooldowns, AbilityState{AbilityID: "claw", RemainingCooldown: 3})
	if got := p.CooldownFor("claw"); got != 3 {
		t.Fatalf("cooldown = %d, want 3", got)
	}
}

// TestBattleValidate exercises the session invariants.
func TestBattleValidate(t *testing.T) {
	participant := func() *BattleParticipant {
		return &BattleParticipant{Creature: &Creature{ID: uuid.New()}, CurrentHP: 10}
	}

	valid := func() *Battle {
		p1, p2 := participant(), participant()
		return &Battle{
			ID:        uuid.New(),
			Team1:     []*BattleParticipant{p1},
			Team2:     []*BattleParticipant{p2},
			TurnOrder: []uuid.UUID{p1.Creature.ID, p2.Creature.ID},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid battle rejected: %v", err)
	}

	b := valid()
	b.Team2 = nil
	if err := b.Validate(); !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("empty roster error = %v, want %v", err, ErrEmptyRoster)
	}

	b = valid()
	b.TurnOrder = b.TurnOrder[:1]
	if err := b.Validate(); !errors.Is(err, ErrTurnOrderMismatch) {
		t.Fatalf("turn order error = %v, want %v", err, ErrTurnOrderMismatch)
	}

	b = valid()
	b.Completed = true
	if err := b.Validate(); !errors.Is(err, ErrInvalidBattleState) {
		t.Fatalf("completed without winner error = %v, want %v", err, ErrInvalidBattleState)
	}

	b = valid()
	winner := WinnerTeam1
	b.Winner = &winner
	if err := b.Validate(); !errors.Is(err, ErrInvalidBattleState) {
		t.Fatalf("winner without completion error = %v, want %v", err, ErrInvalidBattleState)
	}
}

// TestAliveCount ensures only living participants of the right team count.
func TestAliveCount(t *testing.T) {
	p1 := &BattleParticipant{Creature: &Creature{ID: uuid.New()}, Team: Team1, CurrentHP: 10}
	p2 := &BattleParticipant{Creature: &Creature{ID: uuid.New()}, Team: Team1, CurrentHP: 0}
	p3 := &BattleParticipant{Creature: &Creature{ID: uuid.New()}, Team: Team2, CurrentHP: 5}

	b := &Battle{Team1: []*BattleParticipant{p1, p2}, Team2: []*BattleParticipant{p3}}
	if got := b.AliveCount(Team1); got != 1 {
		t.Fatalf("team1 alive = %d, want 1", got)
	}
	if got := b.AliveCount(Team2); got != 1 {
		t.Fatalf("team2 alive = %d, want 1", got)
	}
}
