// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-tale/internal/entities"
)

// SessionBuilder provides a fluent interface for building test Session instances
type SessionBuilder struct {
	session *entities.Session
}

// NewSessionBuilder creates a builder for a fresh session awaiting a nickname
func NewSessionBuilder() *SessionBuilder {
	now := time.Unix(1700000000, 0).UTC()
	return &SessionBuilder{
		session: &entities.Session{
			ID:        "sess-test-123",
			Phase:     entities.PhaseNicknameEntry,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets the session ID
func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.session.ID = id
	return b
}

// WithNickname sets the nickname and moves the session to theme selection
func (b *SessionBuilder) WithNickname(nickname string) *SessionBuilder {
	b.session.Sheet.Nickname = nickname
	b.session.Phase = entities.PhaseThemeSelection
	return b
}

// WithTheme sets the theme and moves the session to race resolution
func (b *SessionBuilder) WithTheme(themeID string) *SessionBuilder {
	b.session.Sheet.Theme = themeID
	b.session.Phase = entities.PhaseRaceResolution
	return b
}

// WithRace commits a race and moves the session to job resolution
func (b *SessionBuilder) WithRace(race string) *SessionBuilder {
	b.session.Sheet.Race = race
	b.session.CandidateRace = ""
	b.session.Phase = entities.PhaseJobResolution
	return b
}

// WithJob commits a job and moves the session to stat resolution
func (b *SessionBuilder) WithJob(job string) *SessionBuilder {
	b.session.Sheet.Job = job
	b.session.CandidateJob = ""
	b.session.Phase = entities.PhaseStatResolution
	return b
}

// WithStats sets resolved stats
func (b *SessionBuilder) WithStats(stats entities.Stats) *SessionBuilder {
	b.session.Sheet.Stats = stats
	return b
}

// InLoop moves the session into the narrative loop
func (b *SessionBuilder) InLoop() *SessionBuilder {
	b.session.Phase = entities.PhaseNarrativeLoop
	return b
}

// WithNarration appends narrator text to the log
func (b *SessionBuilder) WithNarration(text string) *SessionBuilder {
	b.session.Narrative.AppendNarratorText(text)
	return b
}

// WithSuggestions replaces the action suggestions
func (b *SessionBuilder) WithSuggestions(suggestions ...string) *SessionBuilder {
	b.session.Narrative.Suggestions = append([]string(nil), suggestions...)
	return b
}

// WithPendingCheck opens a check on stat for action
func (b *SessionBuilder) WithPendingCheck(stat entities.StatName, action string) *SessionBuilder {
	// only fails when a check is already open, which a builder chain controls
	_ = b.session.Narrative.OpenPendingRoll(stat, action)
	return b
}

// WithCheckDice sets the rolled check faces
func (b *SessionBuilder) WithCheckDice(faces ...int) *SessionBuilder {
	b.session.CheckDice = append([]int(nil), faces...)
	return b
}

// AwaitingNarrator marks a narrator call as in flight
func (b *SessionBuilder) AwaitingNarrator() *SessionBuilder {
	b.session.Narrative.AwaitingNarrator = true
	return b
}

// Build returns a copy of the session
func (b *SessionBuilder) Build() *entities.Session {
	return b.session.Clone()
}

// LoopSession is a fantasy elf mage already in the narrative loop
func LoopSession() *SessionBuilder {
	return NewSessionBuilder().
		WithID("sess_1").
		WithNickname("Kai").
		WithTheme("fantasy").
		WithRace("elf").
		WithJob("mage").
		WithStats(entities.Stats{Strength: 3, Dexterity: 10, Intelligence: 8, HitPoints: 14}).
		InLoop()
}
