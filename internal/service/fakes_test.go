package service

import (
	"github.com/google/uuid"

	"creatures/internal/models"
)

// Implémentations en mémoire des repositories pour les tests de service.

type fakeCreatureRepo struct {
	creatures map[uuid.UUID]*models.Creature
	fusions   int
}

func newFakeCreatureRepo() *fakeCreatureRepo {
	return &fakeCreatureRepo{creatures: make(map[uuid.UUID]*models.Creature)}
}

func (f *fakeCreatureRepo) Create(c *models.Creature) error {
	f.creatures[c.ID] = c
	return nil
}

func (f *fakeCreatureRepo) GetByID(id uuid.UUID) (*models.Creature, error) {
	if c, ok := f.creatures[id]; ok {
		return c, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeCreatureRepo) ListByOwner(ownerID uuid.UUID) ([]*models.Creature, error) {
	var out []*models.Creature
	for _, c := range f.creatures {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCreatureRepo) CountFusions(ownerID uuid.UUID) (int, error) {
	return f.fusions, nil
}

type fakeStoneRepo struct {
	stones map[uuid.UUID]*models.Stone
}

func newFakeStoneRepo() *fakeStoneRepo {
	return &fakeStoneRepo{stones: make(map[uuid.UUID]*models.Stone)}
}

func (f *fakeStoneRepo) Create(s *models.Stone) error {
	f.stones[s.ID] = s
	return nil
}

func (f *fakeStoneRepo) GetByID(id uuid.UUID) (*models.Stone, error) {
	if s, ok := f.stones[id]; ok {
		return s, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeStoneRepo) ListByOwner(ownerID uuid.UUID, includeConsumed bool) ([]*models.Stone, error) {
	var out []*models.Stone
	for _, s := range f.stones {
		if s.OwnerID != ownerID {
			continue
		}
		if s.Consumed && !includeConsumed {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStoneRepo) MarkConsumed(id uuid.UUID) error {
	s, ok := f.stones[id]
	if !ok {
		return models.ErrNotFound
	}
	if s.Consumed {
		return models.ErrStoneConsumed
	}
	s.Consumed = true
	return nil
}

type fakeBattleRepo struct {
	battles map[uuid.UUID]*models.Battle
}

func newFakeBattleRepo() *fakeBattleRepo {
	return &fakeBattleRepo{battles: make(map[uuid.UUID]*models.Battle)}
}

func (f *fakeBattleRepo) Create(b *models.Battle) error {
	f.battles[b.ID] = b
	return nil
}

func (f *fakeBattleRepo) GetByID(id uuid.UUID) (*models.Battle, error) {
	if b, ok := f.battles[id]; ok {
		return b, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeBattleRepo) Update(b *models.Battle) error {
	if _, ok := f.battles[b.ID]; !ok {
		return models.ErrNotFound
	}
	f.battles[b.ID] = b
	return nil
}

func (f *fakeBattleRepo) ListActive(limit int) ([]*models.Battle, error) {
	var out []*models.Battle
	for _, b := range f.battles {
		if !b.Completed {
			out = append(out, b)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeRatingRepo struct {
	ratings map[uuid.UUID]*models.PlayerRating
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[uuid.UUID]*models.PlayerRating)}
}

// GetByPlayer retourne une copie, comme le scan d'une ligne par le vrai
// repository: les mutations du service ne touchent jamais l'état stocké
func (f *fakeRatingRepo) GetByPlayer(playerID uuid.UUID) (*models.PlayerRating, error) {
	if r, ok := f.ratings[playerID]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeRatingRepo) Upsert(r *models.PlayerRating) error {
	cp := *r
	f.ratings[r.PlayerID] = &cp
	return nil
}

func (f *fakeRatingRepo) Leaderboard(limit int) ([]*models.PlayerRating, error) {
	var out []*models.PlayerRating
	for _, r := range f.ratings {
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
