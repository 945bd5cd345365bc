package narrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-tale/internal/entities"
	"github.com/KirkDiggler/rpg-tale/internal/errors"
)

// checkKeywords maps action words to the stat a scripted check rolls against.
var checkKeywords = []struct {
	words []string
	stat  entities.StatName
}{
	{[]string{"attack", "fight", "lift", "push", "break", "smash", "force"}, entities.StatStrength},
	{[]string{"climb", "jump", "sneak", "dodge", "run", "steal", "swing"}, entities.StatDexterity},
	{[]string{"read", "solve", "search", "decipher", "recall", "persuade", "investigate"}, entities.StatIntelligence},
}

// Scripted is an offline narrator with canned, deterministic prose. It lets
// the session run end to end without a narration service.
type Scripted struct{}

// NewScripted creates the offline narrator
func NewScripted() *Scripted {
	return &Scripted{}
}

var _ Gateway = (*Scripted)(nil)

// Initialize builds an opening scene from the character alone.
func (s *Scripted) Initialize(_ context.Context, input *InitializeInput) (*InitializeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c := input.Character

	return &InitializeOutput{
		StoryTheme:          fmt.Sprintf("A %s tale", strings.ReplaceAll(c.Theme, "_", " ")),
		StoryEra:            "An age remembered only in songs",
		StoryPlace:          "A crossroads town at the edge of the map",
		StoryMood:           "Uneasy calm before a storm",
		StoryStartSituation: fmt.Sprintf("%s the %s %s arrives as the bells start ringing for no reason anyone can name.", c.Nickname, c.Race, c.Job),
		ActionSuggestions:   suggestionsFor(c),
	}, nil
}

// HandleInput asks for a check when the action names a risky verb.
func (s *Scripted) HandleInput(_ context.Context, input *HandleInputInput) (*TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if stat, ok := statForAction(input.Action); ok {
		return &TurnOutput{
			StorySituation: fmt.Sprintf("%s tries to %s. It will not be easy.", input.Character.Nickname, input.Action),
			RequiresRoll:   true,
			RelevantStat:   stat,
		}, nil
	}

	return &TurnOutput{
		StorySituation:    fmt.Sprintf("%s decides to %s. The town watches quietly.", input.Character.Nickname, input.Action),
		ActionSuggestions: suggestionsFor(input.Character),
	}, nil
}

// ContinueAfterCheck narrates the check outcome and never chains checks.
func (s *Scripted) ContinueAfterCheck(_ context.Context, input *ContinueAfterCheckInput) (*TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	outcome := "falters"
	if input.Success {
		outcome = "succeeds"
	}

	return &TurnOutput{
		StorySituation: fmt.Sprintf("Rolling %d against %s, %s %s.",
			input.DiceSum, input.RelevantStat, input.Character.Nickname, outcome),
		ActionSuggestions: suggestionsFor(input.Character),
	}, nil
}

func statForAction(action string) (entities.StatName, bool) {
	lower := strings.ToLower(action)
	for _, kw := range checkKeywords {
		for _, w := range kw.words {
			if strings.Contains(lower, w) {
				return kw.stat, true
			}
		}
	}
	return "", false
}

func suggestionsFor(c Character) []string {
	out := []string{"look around", "talk to a stranger"}
	if len(c.JobSkills) > 0 {
		out = append(out, "use "+c.JobSkills[0])
	} else {
		out = append(out, "climb the bell tower")
	}
	return out
}
