package service

import (
	"sync"

	"github.com/google/uuid"

	"creatures/internal/models"
)

// BattleFeedInterface diffuse les entrées du journal de combat aux abonnés temps réel
type BattleFeedInterface interface {
	Subscribe(battleID uuid.UUID) (<-chan models.BattleLogEntry, func())
	Publish(battleID uuid.UUID, entry models.BattleLogEntry)
}

// BattleFeed implémente un bus de diffusion en mémoire par combat
type BattleFeed struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[chan models.BattleLogEntry]struct{}
}

// NewBattleFeed crée une nouvelle instance du flux de combat
func NewBattleFeed() BattleFeedInterface {
	return &BattleFeed{
		subscribers: make(map[uuid.UUID]map[chan models.BattleLogEntry]struct{}),
	}
}

// Subscribe enregistre un abonné au journal d'un combat. La fonction de
// retour désabonne et ferme le canal.
func (f *BattleFeed) Subscribe(battleID uuid.UUID) (<-chan models.BattleLogEntry, func()) {
	ch := make(chan models.BattleLogEntry, 16)

	f.mu.Lock()
	if f.subscribers[battleID] == nil {
		f.subscribers[battleID] = make(map[chan models.BattleLogEntry]struct{})
	}
	f.subscribers[battleID][ch] = struct{}{}
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if subs, ok := f.subscribers[battleID]; ok {
			if _, ok := subs[ch]; ok {
				delete(subs, ch)
				close(ch)
			}
			if len(subs) == 0 {
				delete(f.subscribers, battleID)
			}
		}
	}
	return ch, cancel
}

// Publish pousse une entrée de journal à tous les abonnés du combat.
// Un abonné dont le tampon est plein perd l'entrée plutôt que de bloquer.
func (f *BattleFeed) Publish(battleID uuid.UUID, entry models.BattleLogEntry) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for ch := range f.subscribers[battleID] {
		select {
		case ch <- entry:
		default:
		}
	}
}
