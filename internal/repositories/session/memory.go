package session

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-tale/internal/entities"
	"github.com/KirkDiggler/rpg-tale/internal/errors"
	"github.com/KirkDiggler/rpg-tale/internal/pkg/clock"
)

const (
	errSessionNil     = "session cannot be nil"
	errSessionIDEmpty = "session ID cannot be empty"
)

// DefaultIdleTTL is how long an untouched session is kept when Config.IdleTTL
// is zero.
const DefaultIdleTTL = 24 * time.Hour

// Config holds the configuration for the in-memory repository
type Config struct {
	Clock clock.Clock

	// IdleTTL evicts sessions not written for this long. Zero means
	// DefaultIdleTTL.
	IdleTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IdleTTL < 0 {
		vb.Field("IdleTTL", "must not be negative")
	}
	return vb.Build()
}

type memoryRepository struct {
	mu        sync.Mutex
	clock     clock.Clock
	idleTTL   time.Duration
	lastSweep time.Time
	sessions  map[string]*entities.Session
}

// NewMemoryRepository creates an in-memory session repository
func NewMemoryRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.IdleTTL
	if ttl == 0 {
		ttl = DefaultIdleTTL
	}

	return &memoryRepository{
		clock:     cfg.Clock,
		idleTTL:   ttl,
		lastSweep: cfg.Clock.Now(),
		sessions:  make(map[string]*entities.Session),
	}, nil
}

var _ Repository = (*memoryRepository)(nil)

func validateSession(s *entities.Session) error {
	if s == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if s.ID == "" {
		return errors.InvalidArgument(errSessionIDEmpty)
	}
	return nil
}

func (r *memoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	r.sweep(now)

	if _, exists := r.live(input.Session.ID, now); exists {
		return nil, errors.AlreadyExists("session " + input.Session.ID + " already exists")
	}

	stored := input.Session.Clone()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	r.sessions[stored.ID] = stored

	return &CreateOutput{Session: stored.Clone()}, nil
}

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.live(input.ID, r.clock.Now())
	if !ok {
		return nil, errors.NotFoundf("session %s not found", input.ID).WithMeta("session_id", input.ID)
	}

	return &GetOutput{Session: stored.Clone()}, nil
}

func (r *memoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.live(input.Session.ID, r.clock.Now()); !ok {
		return nil, errors.NotFoundf("session %s not found", input.Session.ID).WithMeta("session_id", input.Session.ID)
	}

	stored := input.Session.Clone()
	stored.UpdatedAt = r.clock.Now()
	r.sessions[stored.ID] = stored

	return &UpdateOutput{Session: stored.Clone()}, nil
}

// live returns the session for id unless it has idled past the TTL, in which
// case it is dropped. Callers hold r.mu.
func (r *memoryRepository) live(id string, now time.Time) (*entities.Session, bool) {
	stored, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if r.expired(stored, now) {
		delete(r.sessions, id)
		return nil, false
	}
	return stored, true
}

func (r *memoryRepository) expired(s *entities.Session, now time.Time) bool {
	return now.Sub(s.UpdatedAt) > r.idleTTL
}

// sweep drops every idle session, at most once per TTL. Callers hold r.mu.
func (r *memoryRepository) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < r.idleTTL {
		return
	}
	r.lastSweep = now

	for id, stored := range r.sessions {
		if r.expired(stored, now) {
			delete(r.sessions, id)
		}
	}
}
