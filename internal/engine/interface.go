// Package engine holds the dice-resolution rules of a tale session.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-tale/internal/engine Engine

import (
	"github.com/KirkDiggler/rpg-tale/internal/entities"
)

// DieSize is the number of faces on every die the session rolls.
const DieSize = 6

// Engine provides the game's numeric rules
type Engine interface {
	// RollDie rolls one six-sided die
	RollDie() (int, error)
	// RollDice rolls n six-sided dice
	RollDice(n int) ([]int, error)

	// SelectIndexed picks list[(dieA+dieB-2) mod len(list)]
	SelectIndexed(list []string, dieA, dieB int) (string, error)

	// ResolveStats adds three stat dice to a race's base stats
	ResolveStats(input *ResolveStatsInput) (*entities.Stats, error)

	// CheckStat decides a roll-under stat check
	CheckStat(input *CheckStatInput) (*CheckStatOutput, error)
}
