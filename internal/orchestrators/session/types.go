package session

import (
	"github.com/KirkDiggler/rpg-tale/internal/entities"
	"github.com/KirkDiggler/rpg-tale/internal/entities/catalog"
)

// View is a session plus everything derived from it that a client shows.
type View struct {
	Session   *entities.Session
	LoopState entities.LoopState

	// Options the theme offers; set once a theme is selected.
	RaceOptions []string
	JobOptions  []string
	// FixedRace is the race the theme imposes, if any.
	FixedRace string

	RaceSkills []string
	JobSkills  []string

	// Check is set while a stat check is pending.
	Check *CheckGuidance
}

// CheckGuidance tells the player what a pending check needs.
type CheckGuidance struct {
	Stat entities.StatName
	// Target is the highest dice sum that succeeds.
	Target int
	// Dice and DiceSum are set once the check dice are rolled.
	Dice    []int
	DiceSum int
}

// SessionOutput is returned by every session operation.
type SessionOutput struct {
	Session *View
	// NarratorFailed reports that the narrator call made by this operation
	// failed. A retry notice was logged and the same action may be retried.
	NarratorFailed bool
}

// RollOutput is returned by the roll operations.
type RollOutput struct {
	Session *View
	// Faces are the authoritative die faces of this roll.
	Faces []int
}

// CreateSessionInput defines the request for starting a session
type CreateSessionInput struct{}

// SessionInput addresses an existing session
type SessionInput struct {
	SessionID string
}

// SetNicknameInput defines the request for naming the character
type SetNicknameInput struct {
	SessionID string
	Nickname  string
}

// SelectThemeInput defines the request for choosing a theme
type SelectThemeInput struct {
	SessionID string
	ThemeID   string
}

// SubmitActionInput carries a free-form action. When SuggestionIndex is set
// the suggestion at that index is submitted and Text is ignored.
type SubmitActionInput struct {
	SessionID       string
	Text            string
	SuggestionIndex *int
}

// ListThemesInput defines the request for listing themes
type ListThemesInput struct{}

// ListThemesOutput contains every selectable theme
type ListThemesOutput struct {
	Themes []catalog.Theme
}
