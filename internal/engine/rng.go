package engine

import (
	"hash/fnv"
	"time"

	"github.com/google/uuid"
)

// Stream est un générateur pseudo-aléatoire déterministe (splitmix64).
// Le moteur ne lit jamais l'entropie système: chaque tirage passe par un
// Stream injecté, pour que rejouer une graine reproduise exactement les
// mêmes résultats.
type Stream struct {
	state uint64
}

// NewStream crée un nouveau flux à partir d'une graine
func NewStream(seed uint64) *Stream {
	return &Stream{state: seed}
}

// Uint64 retourne le prochain entier du flux
func (s *Stream) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Float64 retourne un flottant dans [0, 1)
func (s *Stream) Float64() float64 {
	return float64(s.Uint64()>>11) / float64(1<<53)
}

// IntN retourne un entier dans [0, n)
func (s *Stream) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Uint64() % uint64(n))
}

// Roll effectue un tirage unique contre une probabilité dans [0, 1]
func (s *Stream) Roll(chance float64) bool {
	return s.Float64() < chance
}

// DeriveSeed calcule la graine déterministe d'un événement de fusion comme
// fonction stable des quatre identifiants d'entrée et de l'horodatage de
// l'événement fourni par l'appelant
func DeriveSeed(parent1, parent2, stone1, stone2 uuid.UUID, at time.Time) uint64 {
	h := fnv.New64a()
	h.Write(parent1[:])
	h.Write(parent2[:])
	h.Write(stone1[:])
	h.Write(stone2[:])
	h.Write([]byte(at.UTC().Format(time.RFC3339)))
	return h.Sum64()
}
