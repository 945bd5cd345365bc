// Package rpgtoolkit implements the engine on top of rpg-toolkit dice.
package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-tale/internal/engine"
	"github.com/KirkDiggler/rpg-tale/internal/entities"
	"github.com/KirkDiggler/rpg-tale/internal/errors"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	// DiceRoller is the randomness source; inject a seeded or scripted
	// roller for reproducible play.
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		diceRoller: cfg.DiceRoller,
	}, nil
}

var _ engine.Engine = (*Adapter)(nil)

// RollDie rolls one six-sided die
func (a *Adapter) RollDie() (int, error) {
	face, err := a.diceRoller.Roll(engine.DieSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll die")
	}
	if err := checkFace("die", face); err != nil {
		return 0, errors.Wrap(err, "dice roller returned an impossible face")
	}
	return face, nil
}

// RollDice rolls n six-sided dice
func (a *Adapter) RollDice(n int) ([]int, error) {
	if n <= 0 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", n)
	}

	faces, err := a.diceRoller.RollN(n, engine.DieSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %d dice", n)
	}
	if len(faces) != n {
		return nil, errors.Internalf("dice roller returned %d faces for %d dice", len(faces), n)
	}
	for _, face := range faces {
		if err := checkFace("die", face); err != nil {
			return nil, errors.Wrap(err, "dice roller returned an impossible face")
		}
	}
	return faces, nil
}

// SelectIndexed picks list[(dieA+dieB-2) mod len(list)]. Sums run 2..12, so
// lists shorter than 11 wrap and early entries come up more often.
func (a *Adapter) SelectIndexed(list []string, dieA, dieB int) (string, error) {
	if len(list) == 0 {
		return "", errors.Validation(errors.ReasonInvalidSelection, "cannot select from an empty list")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("die_a", dieA, 1, engine.DieSize, vb)
	errors.ValidateRange("die_b", dieB, 1, engine.DieSize, vb)
	if err := vb.Build(); err != nil {
		return "", err
	}

	return list[(dieA+dieB-2)%len(list)], nil
}

// ResolveStats adds each stat die to its base stat; hit points are the sum of
// all three dice plus the base hit points.
func (a *Adapter) ResolveStats(input *engine.ResolveStatsInput) (*entities.Stats, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("strength_die", input.StrengthDie, 1, engine.DieSize, vb)
	errors.ValidateRange("dexterity_die", input.DexterityDie, 1, engine.DieSize, vb)
	errors.ValidateRange("intelligence_die", input.IntelligenceDie, 1, engine.DieSize, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	base := input.RaceBase
	return &entities.Stats{
		Strength:     input.StrengthDie + base.Strength,
		Dexterity:    input.DexterityDie + base.Dexterity,
		Intelligence: input.IntelligenceDie + base.Intelligence,
		HitPoints:    input.StrengthDie + input.DexterityDie + input.IntelligenceDie + base.HitPoints,
	}, nil
}

// CheckStat succeeds iff the dice sum does not exceed the stat. Hit points
// and unknown stats cannot be checked.
func (a *Adapter) CheckStat(input *engine.CheckStatInput) (*engine.CheckStatOutput, error) {
	if input == nil || input.Sheet == nil {
		return nil, errors.InvalidArgument("character sheet is required")
	}
	if !input.Stat.Checkable() {
		return nil, errors.Validationf(errors.ReasonUnknownStat, "stat %q cannot be checked", input.Stat).
			WithMeta("stat", string(input.Stat))
	}

	target, _ := input.Sheet.Stats.Value(input.Stat)
	return &engine.CheckStatOutput{
		Success: input.DiceSum <= target,
		Target:  target,
	}, nil
}

func checkFace(field string, face int) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange(field, face, 1, engine.DieSize, vb)
	return vb.Build()
}
