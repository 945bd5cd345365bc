package v1

import (
	"github.com/KirkDiggler/rpg-tale/internal/entities"
	"github.com/KirkDiggler/rpg-tale/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-tale/internal/orchestrators/session"
)

type sessionResponse struct {
	ID        string             `json:"id"`
	Phase     entities.Phase     `json:"phase"`
	LoopState entities.LoopState `json:"loop_state,omitempty"`

	Sheet      entities.CharacterSheet `json:"sheet"`
	RaceSkills []string                `json:"race_skills,omitempty"`
	JobSkills  []string                `json:"job_skills,omitempty"`

	RaceOptions   []string `json:"race_options,omitempty"`
	JobOptions    []string `json:"job_options,omitempty"`
	FixedRace     string   `json:"fixed_race,omitempty"`
	CandidateRace string   `json:"candidate_race,omitempty"`
	CandidateJob  string   `json:"candidate_job,omitempty"`

	Dice diceResponse `json:"dice"`

	Log              []entities.LogEntry `json:"log"`
	Suggestions      []string            `json:"suggestions"`
	AwaitingNarrator bool                `json:"awaiting_narrator"`
	Check            *checkResponse      `json:"check,omitempty"`

	NarratorFailed bool `json:"narrator_failed,omitempty"`
}

type diceResponse struct {
	Race  []int `json:"race,omitempty"`
	Job   []int `json:"job,omitempty"`
	Stats []int `json:"stats,omitempty"`
	Check []int `json:"check,omitempty"`
}

type checkResponse struct {
	Stat    entities.StatName `json:"stat"`
	Target  int               `json:"target"`
	Dice    []int             `json:"dice,omitempty"`
	DiceSum int               `json:"dice_sum,omitempty"`
}

type rollResponse struct {
	Faces   []int            `json:"faces"`
	Session *sessionResponse `json:"session"`
}

type themeResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	FixedRace string   `json:"fixed_race,omitempty"`
	Races     []string `json:"races"`
	Jobs      []string `json:"jobs"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

type nicknameRequest struct {
	Nickname string `json:"nickname"`
}

type themeRequest struct {
	ThemeID string `json:"theme_id"`
}

type actionRequest struct {
	Text            string `json:"text"`
	SuggestionIndex *int   `json:"suggestion_index,omitempty"`
}

func convertView(v *session.View) *sessionResponse {
	if v == nil || v.Session == nil {
		return nil
	}
	s := v.Session

	out := &sessionResponse{
		ID:            s.ID,
		Phase:         s.Phase,
		LoopState:     v.LoopState,
		Sheet:         s.Sheet,
		RaceSkills:    v.RaceSkills,
		JobSkills:     v.JobSkills,
		RaceOptions:   v.RaceOptions,
		JobOptions:    v.JobOptions,
		FixedRace:     v.FixedRace,
		CandidateRace: s.CandidateRace,
		CandidateJob:  s.CandidateJob,
		Dice: diceResponse{
			Race:  s.RaceDice,
			Job:   s.JobDice,
			Stats: s.StatDice,
			Check: s.CheckDice,
		},
		Log:              s.Narrative.Log,
		Suggestions:      s.Narrative.Suggestions,
		AwaitingNarrator: s.Narrative.AwaitingNarrator,
	}
	if out.Log == nil {
		out.Log = []entities.LogEntry{}
	}
	if out.Suggestions == nil {
		out.Suggestions = []string{}
	}
	if v.Check != nil {
		out.Check = &checkResponse{
			Stat:    v.Check.Stat,
			Target:  v.Check.Target,
			Dice:    v.Check.Dice,
			DiceSum: v.Check.DiceSum,
		}
	}
	return out
}

func convertThemes(themes []catalog.Theme) []themeResponse {
	out := make([]themeResponse, len(themes))
	for i := range themes {
		t := &themes[i]
		out[i] = themeResponse{
			ID:        t.ID,
			Name:      t.Name,
			FixedRace: t.FixedRace,
			Races:     t.RaceNames(),
			Jobs:      t.JobNames(),
		}
	}
	return out
}
