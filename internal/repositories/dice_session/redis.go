package dicesession

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-tale/internal/errors"
	"github.com/KirkDiggler/rpg-tale/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-tale/internal/redis"
)

// Key pattern: dice_session:{entity_id}:{context}
const sessionKeyPrefix = "dice_session:"

// maxAppendAttempts bounds optimistic-lock retries on concurrent appends.
const maxAppendAttempts = 10

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

// getter is satisfied by both the client and a WATCH transaction.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for dice sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Append adds rolls under WATCH so concurrent appends never drop each other.
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}
	if len(input.Rolls) == 0 {
		return nil, errors.InvalidArgument(errRollsEmpty)
	}

	key := r.buildKey(input.EntityID, input.Context)

	var result *DiceSession
	txf := func(tx *redis.Tx) error {
		existing, err := r.load(ctx, tx, key)
		if err != nil && !errors.IsNotFound(err) {
			return err
		}

		now := r.clock.Now()
		session := appended(existing, input, now)

		data, err := json.Marshal(session)
		if err != nil {
			return errors.Wrap(err, "failed to marshal dice session")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, session.ExpiresAt.Sub(now))
			return nil
		})
		if err != nil {
			return err
		}

		result = session
		return nil
	}

	for attempt := 0; attempt < maxAppendAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return &AppendOutput{Session: result}, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, errors.Wrap(err, "failed to append dice rolls")
	}

	return nil, errors.Aborted("dice session was modified concurrently")
}

// Get retrieves a dice session by entity ID and context
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	session, err := r.load(ctx, r.client, r.buildKey(input.EntityID, input.Context))
	if err != nil {
		return nil, err
	}

	return &GetOutput{Session: session}, nil
}

// Delete removes a dice session
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := r.buildKey(input.EntityID, input.Context)

	var rollsDeleted int32
	session, err := r.load(ctx, r.client, key)
	switch {
	case err == nil:
		// nolint:gosec // roll count is always small
		rollsDeleted = int32(len(session.Rolls))
	case !errors.IsNotFound(err):
		return nil, err
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session from Redis")
	}

	return &DeleteOutput{RollsDeleted: rollsDeleted}, nil
}

func (r *redisRepository) load(ctx context.Context, cmd getter, key string) (*DiceSession, error) {
	data, err := cmd.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFound("dice session not found")
		}
		return nil, errors.Wrap(err, "failed to get dice session from Redis")
	}

	var session DiceSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal dice session")
	}

	// Redis expiry is authoritative; this guards against clock skew in tests.
	if r.clock.Now().After(session.ExpiresAt) {
		return nil, errors.NotFound("dice session has expired")
	}

	return &session, nil
}

func (r *redisRepository) buildKey(entityID, context string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, entityID, context)
}
