package entities

import (
	"github.com/KirkDiggler/rpg-tale/internal/errors"
)

// EntryKind tags a log entry variant.
type EntryKind string

// Log entry variants
const (
	EntryPlayerAction      EntryKind = "player_action"
	EntryNarratorText      EntryKind = "narrator_text"
	EntrySystemNotice      EntryKind = "system_notice"
	EntryPendingRollPrompt EntryKind = "pending_roll_prompt"
	EntryRollOutcome       EntryKind = "roll_outcome"
)

// LogEntry is one tagged entry of the narrative log. Which fields are set
// depends on Kind:
//
//	player_action, narrator_text, system_notice: Text (Label optional on narrator_text)
//	pending_roll_prompt:                         RelevantStat
//	roll_outcome:                                DiceSum, RelevantStat, Success
type LogEntry struct {
	Kind         EntryKind `json:"kind"`
	Text         string    `json:"text,omitempty"`
	Label        string    `json:"label,omitempty"`
	RelevantStat StatName  `json:"relevant_stat,omitempty"`
	DiceSum      int       `json:"dice_sum,omitempty"`
	Success      bool      `json:"success,omitempty"`
}

// PendingCheck is the outstanding stat check the player must roll for.
type PendingCheck struct {
	RelevantStat StatName `json:"relevant_stat"`
	// Action is the player action that triggered the check, if any.
	Action string `json:"action,omitempty"`
}

// NarrativeSession is the story log plus the bookkeeping for an outstanding
// check. At most one pending_roll_prompt is ever in the log, and Pending is
// set iff it is.
type NarrativeSession struct {
	Log              []LogEntry    `json:"log"`
	Pending          *PendingCheck `json:"pending,omitempty"`
	AwaitingNarrator bool          `json:"awaiting_narrator"`
	Suggestions      []string      `json:"suggestions"`
}

// AppendPlayerAction records a free-form action and clears the suggestions.
func (n *NarrativeSession) AppendPlayerAction(text string) {
	n.Log = append(n.Log, LogEntry{Kind: EntryPlayerAction, Text: text})
	n.ClearSuggestions()
}

// AppendNarratorText records narration.
func (n *NarrativeSession) AppendNarratorText(text string) {
	n.Log = append(n.Log, LogEntry{Kind: EntryNarratorText, Text: text})
}

// AppendSceneText records one labelled part of the opening scene.
func (n *NarrativeSession) AppendSceneText(label, text string) {
	n.Log = append(n.Log, LogEntry{Kind: EntryNarratorText, Label: label, Text: text})
}

// AppendSystemNotice records a message from the system rather than the story.
func (n *NarrativeSession) AppendSystemNotice(text string) {
	n.Log = append(n.Log, LogEntry{Kind: EntrySystemNotice, Text: text})
}

// OpenPendingRoll appends a prompt for a check on stat and clears the
// suggestions. It fails if a check is already pending.
func (n *NarrativeSession) OpenPendingRoll(stat StatName, action string) error {
	if n.Pending != nil {
		return errors.FailedPreconditionf("a %s check is already pending", n.Pending.RelevantStat)
	}

	n.Log = append(n.Log, LogEntry{Kind: EntryPendingRollPrompt, RelevantStat: stat})
	n.Pending = &PendingCheck{RelevantStat: stat, Action: action}
	n.ClearSuggestions()
	return nil
}

// ResolvePendingRoll compacts the log: the pending prompt is removed and a
// roll outcome appended in its place at the end of the log.
func (n *NarrativeSession) ResolvePendingRoll(diceSum int, success bool) error {
	if n.Pending == nil {
		return errors.FailedPrecondition("no check is pending")
	}

	kept := n.Log[:0]
	for _, entry := range n.Log {
		if entry.Kind != EntryPendingRollPrompt {
			kept = append(kept, entry)
		}
	}
	n.Log = append(kept, LogEntry{
		Kind:         EntryRollOutcome,
		DiceSum:      diceSum,
		RelevantStat: n.Pending.RelevantStat,
		Success:      success,
	})
	n.Pending = nil
	return nil
}

// PendingCheck returns the outstanding check, if any.
func (n *NarrativeSession) PendingCheck() (PendingCheck, bool) {
	if n.Pending == nil {
		return PendingCheck{}, false
	}
	return *n.Pending, true
}

// UnresolvedPrompts counts pending_roll_prompt entries still in the log.
func (n *NarrativeSession) UnresolvedPrompts() int {
	count := 0
	for _, entry := range n.Log {
		if entry.Kind == EntryPendingRollPrompt {
			count++
		}
	}
	return count
}

// LastNarration returns the text of the newest narrator entry.
func (n *NarrativeSession) LastNarration() string {
	for i := len(n.Log) - 1; i >= 0; i-- {
		if n.Log[i].Kind == EntryNarratorText {
			return n.Log[i].Text
		}
	}
	return ""
}

// SetSuggestions replaces the action suggestions.
func (n *NarrativeSession) SetSuggestions(suggestions []string) {
	n.Suggestions = append([]string(nil), suggestions...)
}

// ClearSuggestions drops the action suggestions.
func (n *NarrativeSession) ClearSuggestions() {
	n.Suggestions = nil
}

// Clone returns a deep copy.
func (n *NarrativeSession) Clone() NarrativeSession {
	out := NarrativeSession{
		Log:              append([]LogEntry(nil), n.Log...),
		AwaitingNarrator: n.AwaitingNarrator,
		Suggestions:      append([]string(nil), n.Suggestions...),
	}
	if n.Pending != nil {
		pending := *n.Pending
		out.Pending = &pending
	}
	return out
}
