// Package dicesession stores the authoritative dice faces rolled for a tale
// session so the rendering client can fetch and animate exactly those faces.
package dicesession

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-tale/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/rpg-tale/internal/repositories/dice_session Repository

// DiceSession is the set of rolls recorded for one entity under one context,
// e.g. session "sess_1" and context "stats".
type DiceSession struct {
	EntityID  string     `json:"entity_id"`
	Context   string     `json:"context"`
	Rolls     []DiceRoll `json:"rolls"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// DiceRoll is a single recorded roll.
type DiceRoll struct {
	RollID      string  `json:"roll_id"`
	Notation    string  `json:"notation"`
	Dice        []int32 `json:"dice"`
	Total       int32   `json:"total"`
	Dropped     []int32 `json:"dropped,omitempty"`
	Description string  `json:"description,omitempty"`
	DiceTotal   int32   `json:"dice_total"`
	Modifier    int32   `json:"modifier"`
}

// AppendInput adds rolls to a record, creating it when absent.
type AppendInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
	// TTL is measured from the append; zero means DefaultTTL.
	TTL time.Duration
}

// AppendOutput contains the record after the append
type AppendOutput struct {
	Session *DiceSession
}

// GetInput contains parameters for retrieving a dice session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a dice session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput contains parameters for deleting a dice session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of deleting a dice session
type DeleteOutput struct {
	RollsDeleted int32
}

// Repository defines storage for recorded dice rolls
type Repository interface {
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// DefaultTTL is how long a record lives after its last append.
const DefaultTTL = 15 * time.Minute

const (
	errEntityIDEmpty = "entity ID cannot be empty"
	errContextEmpty  = "context cannot be empty"
	errRollsEmpty    = "at least one roll is required"
)

func validateKey(entityID, context string) error {
	vb := errors.NewValidationBuilder()
	if entityID == "" {
		vb.Field("entity_id", errEntityIDEmpty)
	}
	if context == "" {
		vb.Field("context", errContextEmpty)
	}
	return vb.Build()
}

func appended(existing *DiceSession, input AppendInput, now time.Time) *DiceSession {
	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	session := &DiceSession{
		EntityID:  input.EntityID,
		Context:   input.Context,
		CreatedAt: now,
	}
	if existing != nil {
		session.CreatedAt = existing.CreatedAt
		session.Rolls = append(session.Rolls, existing.Rolls...)
	}
	session.Rolls = append(session.Rolls, input.Rolls...)
	session.ExpiresAt = now.Add(ttl)

	return session
}
