// Package dice records and serves the dice faces rolled during a tale session.
// Every authoritative roll the session flow makes is recorded here so a
// rendering client can fetch and animate exactly those faces; free-form
// notation rolls are also supported for tools and tests.
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-tale/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-tale/internal/errors"
	"github.com/KirkDiggler/rpg-tale/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/rpg-tale/internal/repositories/dice_session"
)

// Contexts under which the session flow records its rolls.
const (
	ContextRace  = "race"
	ContextJob   = "job"
	ContextStats = "stats"
	ContextCheck = "check"
)

const (
	maxDiceCount = 100
	maxDieSize   = 1000
)

// notation like "2d6", "1d20+3" or "3d6-1"
var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// Service defines the interface for dice operations
type Service interface {
	// RollDice rolls free-form notation and records it
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)

	// RecordRolls stores faces that were already rolled elsewhere
	RecordRolls(ctx context.Context, input *RecordRollsInput) (*RecordRollsOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	IDGenerator     idgen.Generator
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
	// SessionTTL defaults to dicesession.DefaultTTL
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.SessionTTL < 0 {
		vb.Field("SessionTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	idGen           idgen.Generator
	roller          dice.Roller
	ttl             time.Duration
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = dicesession.DefaultTTL
	}

	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		idGen:           cfg.IDGenerator,
		roller:          roller,
		ttl:             ttl,
	}, nil
}

type notation struct {
	count    int
	size     int
	modifier int
}

func parseDiceNotation(raw string) (*notation, error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(raw)))
	if matches == nil {
		return nil, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY or XdY+Z)", raw)
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid dice count in notation: %s", raw)
	}
	size, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid die size in notation: %s", raw)
	}

	var modifier int
	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid modifier in notation: %s", raw)
		}
	}

	if count <= 0 || size <= 0 {
		return nil, errors.InvalidArgumentf("dice count and size must be positive: %s", raw)
	}
	if count > maxDiceCount || size > maxDieSize {
		return nil, errors.InvalidArgumentf("notation %s exceeds %dd%d", raw, maxDiceCount, maxDieSize)
	}

	return &notation{count: count, size: size, modifier: modifier}, nil
}

// RollDice rolls dice using the specified notation and stores the result in a session
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("entity_id", input.EntityID, vb)
	errors.ValidateRequired("context", input.Context, vb)
	errors.ValidateRequired("notation", input.Notation, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	parsed, err := parseDiceNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	faces, err := o.roller.RollN(parsed.count, parsed.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	roll := newRoll(o.idGen.Generate(), input.Notation, faces, parsed.modifier, input.Description)

	out, err := o.diceSessionRepo.Append(ctx, dicesession.AppendInput{
		EntityID: input.EntityID,
		Context:  input.Context,
		Rolls:    []dicesession.DiceRoll{*roll},
		TTL:      o.sessionTTL(input.TTL),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record dice roll")
	}

	slog.Info("Dice rolled",
		"entity_id", input.EntityID,
		"context", input.Context,
		"notation", input.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDiceOutput{
		Roll:    roll,
		Session: out.Session,
	}, nil
}

// RecordRolls stores faces rolled by the session flow under a context.
func (o *orchestrator) RecordRolls(ctx context.Context, input *RecordRollsInput) (*RecordRollsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("entity_id", input.EntityID, vb)
	errors.ValidateRequired("context", input.Context, vb)
	if len(input.Rolls) == 0 {
		vb.RequiredField("rolls")
	}
	for i, r := range input.Rolls {
		if len(r.Faces) == 0 {
			vb.Fieldf("rolls", "roll %d has no faces", i)
		}
		if r.DieSize <= 0 {
			vb.Fieldf("rolls", "roll %d has no die size", i)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	rolls := make([]dicesession.DiceRoll, len(input.Rolls))
	for i, r := range input.Rolls {
		n := fmt.Sprintf("%dd%d", len(r.Faces), r.DieSize)
		rolls[i] = *newRoll(o.idGen.Generate(), n, r.Faces, 0, r.Description)
	}

	out, err := o.diceSessionRepo.Append(ctx, dicesession.AppendInput{
		EntityID: input.EntityID,
		Context:  input.Context,
		Rolls:    rolls,
		TTL:      o.ttl,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record dice rolls")
	}

	slog.Debug("Dice rolls recorded",
		"entity_id", input.EntityID,
		"context", input.Context,
		"rolls", len(rolls),
	)

	return &RecordRollsOutput{
		Rolls:   rolls,
		Session: out.Session,
	}, nil
}

// GetRollSession retrieves an existing dice roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &GetRollSessionOutput{
		Session: getOutput.Session,
	}, nil
}

// ClearRollSession removes a dice roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	deleteOutput, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.Info("Dice session cleared",
		"entity_id", input.EntityID,
		"context", input.Context,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollSessionOutput{
		RollsDeleted: deleteOutput.RollsDeleted,
	}, nil
}

func (o *orchestrator) sessionTTL(ttl time.Duration) time.Duration {
	if ttl > 0 {
		return ttl
	}
	return o.ttl
}

func newRoll(id, notation string, faces []int, modifier int, description string) *dicesession.DiceRoll {
	values := make([]int32, len(faces))
	var sum int32
	for i, f := range faces {
		// nolint:gosec // faces are bounded by maxDieSize
		values[i] = int32(f)
		sum += values[i]
	}

	// nolint:gosec // modifier comes from a short notation string
	mod := int32(modifier)

	return &dicesession.DiceRoll{
		RollID:      id,
		Notation:    notation,
		Dice:        values,
		Total:       sum + mod,
		Description: description,
		DiceTotal:   sum,
		Modifier:    mod,
	}
}
