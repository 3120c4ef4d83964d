package engine

import (
	"time"

	"github.com/google/uuid"

	"creatures/internal/models"
	"creatures/internal/rules"
)

// FusionInput regroupe les entrées d'un événement de fusion. FusionCount est
// le nombre de fusions déjà réalisées par le joueur, utilisé par le résolveur
// de mutation. FusedAt fixe l'horodatage de l'événement, fourni par
// l'appelant pour que le moteur reste pur.
type FusionInput struct {
	Parent1     *models.Creature
	Parent2     *models.Creature
	Stone1      *models.Stone
	Stone2      *models.Stone
	FusionCount int
	Intent      string
	FusedAt     time.Time
}

// Validate vérifie les invariants structurels et d'autorisation d'une
// requête de fusion avant tout calcul
func (in *FusionInput) Validate() error {
	if in.Parent1.ID == in.Parent2.ID {
		return models.ErrSameCreature
	}
	if in.Stone1.ID == in.Stone2.ID {
		return models.ErrSameStone
	}

	if err := in.Parent1.Validate(); err != nil {
		return err
	}
	if err := in.Parent2.Validate(); err != nil {
		return err
	}
	if err := in.Stone1.Validate(); err != nil {
		return err
	}
	if err := in.Stone2.Validate(); err != nil {
		return err
	}

	owner := in.Parent1.OwnerID
	if in.Parent2.OwnerID != owner {
		return models.ErrCreatureNotOwned
	}
	if in.Stone1.OwnerID != owner || in.Stone2.OwnerID != owner {
		return models.ErrStoneNotOwned
	}

	if in.Stone1.Consumed || in.Stone2.Consumed {
		return models.ErrStoneConsumed
	}
	return nil
}

// BuildSignature exécute la pipeline de fusion complète et produit la
// signature sérialisable de l'événement. La pipeline est un ordre fixe de
// résolveurs sur un flux unique dérivé de la graine: rareté, statistiques,
// mutation, bonus des catalyseurs, héritage des capacités, apparence.
// Rejouer la même graine avec les mêmes entrées reproduit la même signature.
func BuildSignature(in FusionInput) (*models.FusionSignature, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	seed := DeriveSeed(in.Parent1.ID, in.Parent2.ID, in.Stone1.ID, in.Stone2.ID, in.FusedAt)
	stream := NewStream(seed)

	generation := in.Parent1.Generation()
	if g := in.Parent2.Generation(); g > generation {
		generation = g
	}
	generation++

	rarity := ResolveRarity(in.Parent1, in.Parent2, in.Stone1, in.Stone2)
	stats := BlendStats(in.Parent1, in.Parent2, rarity)
	mutation := ResolveMutation(stream, in.Stone1, in.Stone2, in.FusionCount)
	stats = ApplyStoneBonuses(stats, in.Stone1, in.Stone2, mutation.Multiplier)

	abilities := ResolveAbilities(in.Parent1, in.Parent2)
	appearance := ResolveAppearance(stream, in.Parent1, in.Parent2, mutation)
	interaction := rules.Interaction(in.Stone1.Element, in.Stone2.Element)

	return &models.FusionSignature{
		Seed:         seed,
		Generation:   generation,
		Parent1:      snapshotParent(in.Parent1),
		Parent2:      snapshotParent(in.Parent2),
		Stone1:       snapshotStone(in.Stone1),
		Stone2:       snapshotStone(in.Stone2),
		Rarity:       rarity,
		Stats:        stats,
		Mutation:     mutation,
		Passives:     abilities.Passives,
		Actives:      abilities.Actives,
		Ultimate:     abilities.Ultimate,
		Appearance:   appearance,
		Interaction:  interaction,
		DomainUnlock: models.UnlocksDomain(in.Stone1, in.Stone2),
		Intent:       in.Intent,
		FusedAt:      in.FusedAt.UTC(),
	}, nil
}

// MaterializeCreature construit la créature persistable décrite par une
// signature. L'entrée d'historique porte la graine pour permettre le rejeu.
func MaterializeCreature(sig *models.FusionSignature, name string) *models.Creature {
	mutationCount := 0
	if sig.Mutation.Glitched {
		mutationCount = 1
	}

	history := append(append([]models.FusionHistoryEntry{},
		sig.Parent1.FusionHistory...), sig.Parent2.FusionHistory...)
	history = append(history, models.FusionHistoryEntry{
		Generation:    sig.Generation,
		Parent1ID:     sig.Parent1.ID,
		Parent2ID:     sig.Parent2.ID,
		Parent1Family: sig.Parent1.Family,
		Parent2Family: sig.Parent2.Family,
		Stone1ID:      sig.Stone1.ID,
		Stone2ID:      sig.Stone2.ID,
		FusionSeed:    sig.Seed,
		MutationCount: mutationCount,
		FusedAt:       sig.FusedAt,
	})

	return &models.Creature{
		ID:            uuid.New(),
		Name:          name,
		Family:        dominantFamily(sig),
		Rarity:        sig.Rarity,
		Stats:         sig.Stats,
		Passives:      sig.Passives,
		Actives:       sig.Actives,
		Ultimate:      sig.Ultimate,
		FusionHistory: history,
		Appearance:    sig.Appearance,
		CreatedAt:     sig.FusedAt,
	}
}

// dominantFamily choisit la famille du résultat: celle du parent de plus
// haute rareté, premier parent en cas d'égalité
func dominantFamily(sig *models.FusionSignature) models.Family {
	if sig.Parent2.Rarity > sig.Parent1.Rarity {
		return sig.Parent2.Family
	}
	return sig.Parent1.Family
}

func snapshotParent(c *models.Creature) models.ParentSnapshot {
	return models.ParentSnapshot{
		ID:            c.ID,
		Name:          c.Name,
		Family:        c.Family,
		Rarity:        c.Rarity,
		Generation:    c.Generation(),
		Stats:         c.Stats,
		Passives:      c.Passives,
		Actives:       c.Actives,
		Ultimate:      c.Ultimate,
		FusionHistory: c.FusionHistory,
		Appearance:    c.Appearance,
	}
}

func snapshotStone(s *models.Stone) models.StoneSnapshot {
	return models.StoneSnapshot{
		ID:             s.ID,
		Element:        s.Element,
		Tier:           s.Tier,
		StatBonus:      s.StatBonus,
		ElementalPower: s.ElementalPower,
		IsGlitched:     s.IsGlitched,
	}
}
