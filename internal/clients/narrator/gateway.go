// Package narrator is the boundary to the external narration service that
// turns a character and the player's actions into story text.
package narrator

//go:generate mockgen -destination=mock/mock_gateway.go -package=narratormock github.com/KirkDiggler/rpg-tale/internal/clients/narrator Gateway

import (
	"context"

	"github.com/KirkDiggler/rpg-tale/internal/entities"
)

// Gateway calls the narrator. Implementations return errors tagged with
// errors.ReasonMalformedResponse or errors.ReasonNarratorTransport; every
// returned output has passed validation.
type Gateway interface {
	// Initialize produces the opening scene for a freshly created character
	Initialize(ctx context.Context, input *InitializeInput) (*InitializeOutput, error)
	// HandleInput narrates the outcome of a free-form player action
	HandleInput(ctx context.Context, input *HandleInputInput) (*TurnOutput, error)
	// ContinueAfterCheck narrates the outcome of a resolved stat check
	ContinueAfterCheck(ctx context.Context, input *ContinueAfterCheckInput) (*TurnOutput, error)
}

// Character is the context sent with every narrator request.
type Character struct {
	Nickname   string         `json:"nickname"`
	Theme      string         `json:"theme"`
	Race       string         `json:"race"`
	Job        string         `json:"job"`
	Stats      entities.Stats `json:"stats"`
	RaceSkills []string       `json:"race_skills"`
	JobSkills  []string       `json:"job_skills"`
}

// InitializeInput asks for the opening scene.
type InitializeInput struct {
	Character Character `json:"character"`
}

// InitializeOutput is the opening scene.
type InitializeOutput struct {
	StoryTheme          string
	StoryEra            string
	StoryPlace          string
	StoryMood           string
	StoryStartSituation string
	ActionSuggestions   []string
}

// HandleInputInput carries a free-form player action.
type HandleInputInput struct {
	Character         Character `json:"character"`
	PreviousNarration string    `json:"previous_narration"`
	Action            string    `json:"action"`
}

// ContinueAfterCheckInput carries a resolved stat check.
type ContinueAfterCheckInput struct {
	Character         Character         `json:"character"`
	PreviousNarration string            `json:"previous_narration"`
	Action            string            `json:"action,omitempty"`
	DiceSum           int               `json:"dice_sum"`
	RelevantStat      entities.StatName `json:"relevant_stat"`
	Success           bool              `json:"success"`
}

// TurnOutput is the narrator's answer to an action or a check. RelevantStat
// is set iff RequiresRoll, and is always checkable.
type TurnOutput struct {
	StorySituation    string
	ActionSuggestions []string
	RequiresRoll      bool
	RelevantStat      entities.StatName
}
