package dice

import (
	"time"

	dicesession "github.com/KirkDiggler/rpg-tale/internal/repositories/dice_session"
)

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	EntityID    string
	Context     string
	Notation    string
	Description string
	TTL         time.Duration
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// RecordedRoll is a set of faces of one die size rolled together.
type RecordedRoll struct {
	Faces       []int
	DieSize     int
	Description string
}

// RecordRollsInput defines the request for recording already-rolled faces
type RecordRollsInput struct {
	EntityID string
	Context  string
	Rolls    []RecordedRoll
}

// RecordRollsOutput contains the stored rolls and the updated session
type RecordRollsOutput struct {
	Rolls   []dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// GetRollSessionInput defines the request for getting a roll session
type GetRollSessionInput struct {
	EntityID string
	Context  string
}

// GetRollSessionOutput defines the response for getting a roll session
type GetRollSessionOutput struct {
	Session *dicesession.DiceSession
}

// ClearRollSessionInput defines the request for clearing a roll session
type ClearRollSessionInput struct {
	EntityID string
	Context  string
}

// ClearRollSessionOutput defines the response for clearing a roll session
type ClearRollSessionOutput struct {
	RollsDeleted int32
}
