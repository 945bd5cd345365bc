// Package entities holds the data model of a tale session: the character
// sheet built during creation and the narrative log of the story loop.
package entities

import (
	"strings"
)

// StatName names one of the sheet's ability scores.
type StatName string

// Ability scores. Only strength, dexterity and intelligence can be checked.
const (
	StatStrength     StatName = "strength"
	StatDexterity    StatName = "dexterity"
	StatIntelligence StatName = "intelligence"
	StatHitPoints    StatName = "hp"
)

var statAliases = map[string]StatName{
	"strength":     StatStrength,
	"str":          StatStrength,
	"힘":            StatStrength,
	"dexterity":    StatDexterity,
	"dex":          StatDexterity,
	"민첩":           StatDexterity,
	"intelligence": StatIntelligence,
	"int":          StatIntelligence,
	"지능":           StatIntelligence,
	"hp":           StatHitPoints,
	"hit points":   StatHitPoints,
	"체력":           StatHitPoints,
}

// ParseStatName normalises a stat name or alias, case-insensitively.
func ParseStatName(raw string) (StatName, bool) {
	stat, ok := statAliases[strings.ToLower(strings.TrimSpace(raw))]
	return stat, ok
}

// Checkable reports whether the stat can be the target of a stat check.
func (s StatName) Checkable() bool {
	switch s {
	case StatStrength, StatDexterity, StatIntelligence:
		return true
	}
	return false
}

// Stats are set as a group exactly once; until then every field is zero.
type Stats struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	HitPoints    int `json:"hp"`
}

// IsResolved reports whether the stats have been rolled.
func (s Stats) IsResolved() bool {
	return s != Stats{}
}

// Value returns the score for the named stat.
func (s Stats) Value(stat StatName) (int, bool) {
	switch stat {
	case StatStrength:
		return s.Strength, true
	case StatDexterity:
		return s.Dexterity, true
	case StatIntelligence:
		return s.Intelligence, true
	case StatHitPoints:
		return s.HitPoints, true
	}
	return 0, false
}

// CharacterSheet is filled monotonically during creation. Skills are not
// stored; they are looked up from the theme catalog by race and job.
type CharacterSheet struct {
	Nickname string `json:"nickname"`
	Theme    string `json:"theme"`
	Race     string `json:"race"`
	Job      string `json:"job"`
	Stats    Stats  `json:"stats"`
}
