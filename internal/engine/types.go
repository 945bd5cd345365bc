package engine

import "github.com/KirkDiggler/rpg-tale/internal/entities"

// ResolveStatsInput carries the three stat dice and the race's base stats.
type ResolveStatsInput struct {
	StrengthDie     int
	DexterityDie    int
	IntelligenceDie int
	RaceBase        entities.Stats
}

// CheckStatInput carries a check's dice sum and the stat it is rolled against.
type CheckStatInput struct {
	DiceSum int
	Stat    entities.StatName
	Sheet   *entities.CharacterSheet
}

// CheckStatOutput reports the outcome of a check.
type CheckStatOutput struct {
	Success bool
	// Target is the highest dice sum that still succeeds.
	Target int
}
