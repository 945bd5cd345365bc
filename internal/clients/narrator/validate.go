package narrator

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-tale/internal/entities"
	"github.com/KirkDiggler/rpg-tale/internal/errors"
)

// initializeResponse is the wire shape of an initialize reply.
type initializeResponse struct {
	StoryTheme          string    `json:"story_theme"`
	StoryEra            string    `json:"story_era"`
	StoryPlace          string    `json:"story_place"`
	StoryMood           string    `json:"story_mood"`
	StoryStartSituation string    `json:"story_start_situation"`
	Examples            *[]string `json:"examples"`
}

// turnResponse is the wire shape of handle-input and continue replies.
type turnResponse struct {
	StorySituation string    `json:"story_situation"`
	Examples       *[]string `json:"examples"`
	RequiresRoll   *bool     `json:"requires_roll"`
	RelevantStat   string    `json:"relevant_stat"`
}

// DecodeInitialize parses and validates an initialize reply. Any missing
// narration field makes the whole reply malformed.
func DecodeInitialize(body []byte) (*InitializeOutput, error) {
	var resp initializeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.MalformedResponsef("initialize reply is not valid JSON: %v", err)
	}

	missing := missingFields(map[string]string{
		"story_theme":           resp.StoryTheme,
		"story_era":             resp.StoryEra,
		"story_place":           resp.StoryPlace,
		"story_mood":            resp.StoryMood,
		"story_start_situation": resp.StoryStartSituation,
	})
	if resp.Examples == nil {
		missing = append(missing, "examples")
	}
	if len(missing) > 0 {
		return nil, errors.MalformedResponsef("initialize reply is missing %s", strings.Join(missing, ", "))
	}

	return &InitializeOutput{
		StoryTheme:          strings.TrimSpace(resp.StoryTheme),
		StoryEra:            strings.TrimSpace(resp.StoryEra),
		StoryPlace:          strings.TrimSpace(resp.StoryPlace),
		StoryMood:           strings.TrimSpace(resp.StoryMood),
		StoryStartSituation: strings.TrimSpace(resp.StoryStartSituation),
		ActionSuggestions:   cleanSuggestions(*resp.Examples),
	}, nil
}

// DecodeTurn parses and validates a handle-input or continue reply.
func DecodeTurn(body []byte) (*TurnOutput, error) {
	var resp turnResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.MalformedResponsef("turn reply is not valid JSON: %v", err)
	}

	missing := missingFields(map[string]string{"story_situation": resp.StorySituation})
	if resp.Examples == nil {
		missing = append(missing, "examples")
	}
	if resp.RequiresRoll == nil {
		missing = append(missing, "requires_roll")
	}
	if resp.RequiresRoll != nil && *resp.RequiresRoll && strings.TrimSpace(resp.RelevantStat) == "" {
		missing = append(missing, "relevant_stat")
	}
	if len(missing) > 0 {
		return nil, errors.MalformedResponsef("turn reply is missing %s", strings.Join(missing, ", "))
	}

	out := &TurnOutput{
		StorySituation:    strings.TrimSpace(resp.StorySituation),
		ActionSuggestions: cleanSuggestions(*resp.Examples),
		RequiresRoll:      *resp.RequiresRoll,
	}
	if !out.RequiresRoll {
		return out, nil
	}

	stat, ok := entities.ParseStatName(resp.RelevantStat)
	if !ok || !stat.Checkable() {
		return nil, errors.MalformedResponsef("turn reply asks for a check on %q, which cannot be checked", resp.RelevantStat).
			WithMeta("relevant_stat", resp.RelevantStat)
	}
	out.RelevantStat = stat

	return out, nil
}

func missingFields(fields map[string]string) []string {
	var missing []string
	for _, name := range sortedKeys(fields) {
		if strings.TrimSpace(fields[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func cleanSuggestions(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
