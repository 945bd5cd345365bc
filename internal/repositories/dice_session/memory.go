package dicesession

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-tale/internal/errors"
	"github.com/KirkDiggler/rpg-tale/internal/pkg/clock"
)

type memoryKey struct {
	entityID string
	context  string
}

type memoryRepository struct {
	mu       sync.Mutex
	clock    clock.Clock
	sessions map[memoryKey]*DiceSession
}

// NewMemoryRepository creates a process-local repository, used when no Redis
// address is configured.
func NewMemoryRepository(clk clock.Clock) Repository {
	if clk == nil {
		clk = clock.New()
	}
	return &memoryRepository{
		clock:    clk,
		sessions: make(map[memoryKey]*DiceSession),
	}
}

var _ Repository = (*memoryRepository)(nil)

func (r *memoryRepository) Append(_ context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}
	if len(input.Rolls) == 0 {
		return nil, errors.InvalidArgument(errRollsEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := memoryKey{entityID: input.EntityID, context: input.Context}
	session := appended(r.live(key), input, r.clock.Now())
	r.sessions[key] = session

	return &AppendOutput{Session: cloneSession(session)}, nil
}

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session := r.live(memoryKey{entityID: input.EntityID, context: input.Context})
	if session == nil {
		return nil, errors.NotFound("dice session not found")
	}

	return &GetOutput{Session: cloneSession(session)}, nil
}

func (r *memoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := memoryKey{entityID: input.EntityID, context: input.Context}
	var rollsDeleted int32
	if session := r.live(key); session != nil {
		// nolint:gosec // roll count is always small
		rollsDeleted = int32(len(session.Rolls))
	}
	delete(r.sessions, key)

	return &DeleteOutput{RollsDeleted: rollsDeleted}, nil
}

// live returns the stored session unless it has expired. Caller holds mu.
func (r *memoryRepository) live(key memoryKey) *DiceSession {
	session, ok := r.sessions[key]
	if !ok {
		return nil
	}
	if r.clock.Now().After(session.ExpiresAt) {
		delete(r.sessions, key)
		return nil
	}
	return session
}

func cloneSession(s *DiceSession) *DiceSession {
	out := *s
	out.Rolls = make([]DiceRoll, len(s.Rolls))
	for i, roll := range s.Rolls {
		roll.Dice = append([]int32(nil), roll.Dice...)
		roll.Dropped = append([]int32(nil), roll.Dropped...)
		out.Rolls[i] = roll
	}
	return &out
}
