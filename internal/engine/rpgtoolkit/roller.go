package rpgtoolkit

import (
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-tale/internal/errors"
)

// SeededRoller is a dice.Roller driven by a seeded source, so a whole session
// can be replayed from its seed.
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ dice.Roller = (*SeededRoller)(nil)

// NewSeededRoller creates a roller from seed.
func NewSeededRoller(seed int64) *SeededRoller {
	// nolint:gosec // game dice, not security sensitive
	return &SeededRoller{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a face in [1, size].
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(size) + 1, nil
}

// RollN returns count faces in [1, size].
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}
	if size <= 0 {
		return nil, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	faces := make([]int, count)
	for i := range faces {
		faces[i] = r.rng.Intn(size) + 1
	}
	return faces, nil
}

// NewRoller returns a seeded roller when seed is non-zero and the toolkit's
// crypto-backed default roller otherwise.
func NewRoller(seed int64) dice.Roller {
	if seed != 0 {
		return NewSeededRoller(seed)
	}
	return dice.DefaultRoller
}
