package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Phase is a step of the session flow, in forced order.
type Phase string

// Session phases
const (
	PhaseNicknameEntry  Phase = "nickname_entry"
	PhaseThemeSelection Phase = "theme_selection"
	PhaseRaceResolution Phase = "race_resolution"
	PhaseJobResolution  Phase = "job_resolution"
	PhaseStatResolution Phase = "stat_resolution"
	PhaseNarrativeLoop  Phase = "narrative_loop"
)

// LoopState is the sub-state of PhaseNarrativeLoop.
type LoopState string

// Narrative loop sub-states
const (
	LoopAwaitingPlayerInput LoopState = "awaiting_player_input"
	LoopAwaitingStatCheck   LoopState = "awaiting_stat_check"
)

// EntityTypeSession is the toolkit entity type of a tale session.
const EntityTypeSession = "tale_session"

// Session is one player's run through creation and the story loop.
type Session struct {
	ID        string           `json:"id"`
	Phase     Phase            `json:"phase"`
	Sheet     CharacterSheet   `json:"sheet"`
	Narrative NarrativeSession `json:"narrative"`

	// Candidates shown after a roll, committed on confirmation.
	CandidateRace string `json:"candidate_race,omitempty"`
	CandidateJob  string `json:"candidate_job,omitempty"`

	// Faces of the latest roll in each phase.
	RaceDice  []int `json:"race_dice,omitempty"`
	JobDice   []int `json:"job_dice,omitempty"`
	StatDice  []int `json:"stat_dice,omitempty"`
	CheckDice []int `json:"check_dice,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var _ core.Entity = (*Session)(nil)

// GetID returns the session ID
func (s *Session) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *Session) GetType() string {
	return EntityTypeSession
}

// LoopState reports the narrative loop sub-state; empty before the loop.
func (s *Session) LoopState() LoopState {
	if s.Phase != PhaseNarrativeLoop {
		return ""
	}
	if s.Narrative.Pending != nil {
		return LoopAwaitingStatCheck
	}
	return LoopAwaitingPlayerInput
}

// Clone returns a deep copy so callers never share slices with storage.
func (s *Session) Clone() *Session {
	out := *s
	out.Narrative = s.Narrative.Clone()
	out.RaceDice = cloneInts(s.RaceDice)
	out.JobDice = cloneInts(s.JobDice)
	out.StatDice = cloneInts(s.StatDice)
	out.CheckDice = cloneInts(s.CheckDice)
	return &out
}

func cloneInts(in []int) []int {
	if in == nil {
		return nil
	}
	return append([]int(nil), in...)
}
