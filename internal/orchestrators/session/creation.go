package session

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-tale/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-tale/internal/engine"
	"github.com/KirkDiggler/rpg-tale/internal/entities"
	"github.com/KirkDiggler/rpg-tale/internal/errors"
	"github.com/KirkDiggler/rpg-tale/internal/orchestrators/dice"
)

// Opening scene labels, in log order.
const (
	SceneTheme     = "theme"
	SceneEra       = "era"
	ScenePlace     = "place"
	SceneMood      = "mood"
	SceneSituation = "situation"
)

func requirePhase(s *entities.Session, phase entities.Phase) error {
	if s.Phase != phase {
		return errors.WrongPhasef("session is in %s, not %s", s.Phase, phase).
			WithMeta("phase", string(s.Phase))
	}
	return nil
}

// SetNickname names the character. The nickname cannot change afterwards.
func (o *orchestrator) SetNickname(ctx context.Context, input *SetNicknameInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	nickname := strings.TrimSpace(input.Nickname)
	s, err := o.mutate(ctx, input.SessionID, func(s *entities.Session) error {
		if err := requirePhase(s, entities.PhaseNicknameEntry); err != nil {
			return err
		}
		if nickname == "" {
			return errors.Validation(errors.ReasonEmptyNickname, "nickname is required")
		}

		s.Sheet.Nickname = nickname
		s.Phase = entities.PhaseThemeSelection
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Nickname set", "session_id", s.ID, "nickname", nickname)

	return &SessionOutput{Session: o.view(s)}, nil
}

// SelectTheme chooses the theme and, for fixed-race themes, presets the race
func (o *orchestrator) SelectTheme(ctx context.Context, input *SelectThemeInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.mutate(ctx, input.SessionID, func(s *entities.Session) error {
		if err := requirePhase(s, entities.PhaseThemeSelection); err != nil {
			return err
		}
		theme, err := o.catalog.Theme(input.ThemeID)
		if err != nil {
			return err
		}

		s.Sheet.Theme = theme.ID
		s.CandidateRace = theme.FixedRace
		s.Phase = entities.PhaseRaceResolution
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Theme selected", "session_id", s.ID, "theme", s.Sheet.Theme)

	return &SessionOutput{Session: o.view(s)}, nil
}

// RollRace rolls two dice and shows the selected race as a candidate.
// Rolling again before confirming replaces the candidate.
func (o *orchestrator) RollRace(ctx context.Context, input *SessionInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var faces []int
	s, err := o.mutate(ctx, input.SessionID, func(s *entities.Session) error {
		if err := requirePhase(s, entities.PhaseRaceResolution); err != nil {
			return err
		}
		theme, err := o.catalog.Theme(s.Sheet.Theme)
		if err != nil {
			return err
		}
		if theme.FixedRace != "" {
			return errors.WrongPhasef("theme %s has a fixed race", theme.ID).
				WithMeta("race", theme.FixedRace)
		}

		race, rolled, err := o.rollSelection(theme.RaceNames())
		if err != nil {
			return err
		}

		faces = rolled
		s.CandidateRace = race
		s.RaceDice = rolled
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.recordRolls(ctx, s.ID, dice.ContextRace, "race selection", faces)

	slog.Info("Race rolled",
		"session_id", s.ID,
		"dice", faces,
		"candidate", s.CandidateRace,
	)

	return &RollOutput{Session: o.view(s), Faces: faces}, nil
}

// ConfirmRace commits the candidate race
func (o *orchestrator) ConfirmRace(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.mutate(ctx, input.SessionID, func(s *entities.Session) error {
		if err := requirePhase(s, entities.PhaseRaceResolution); err != nil {
			return err
		}
		if s.CandidateRace == "" {
			return errors.FailedPrecondition("roll for a race before confirming")
		}

		s.Sheet.Race = s.CandidateRace
		s.CandidateRace = ""
		s.Phase = entities.PhaseJobResolution
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Race confirmed", "session_id", s.ID, "race", s.Sheet.Race)

	return &SessionOutput{Session: o.view(s)}, nil
}

// RollJob rolls two dice and shows the selected job as a candidate
func (o *orchestrator) RollJob(ctx context.Context, input *SessionInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var faces []int
	s, err := o.mutate(ctx, input.SessionID, func(s *entities.Session) error {
		if err := requirePhase(s, entities.PhaseJobResolution); err != nil {
			return err
		}
		theme, err := o.catalog.Theme(s.Sheet.Theme)
		if err != nil {
			return err
		}

		job, rolled, err := o.rollSelection(theme.JobNames())
		if err != nil {
			return err
		}

		faces = rolled
		s.CandidateJob = job
		s.JobDice = rolled
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.recordRolls(ctx, s.ID, dice.ContextJob, "job selection", faces)

	slog.Info("Job rolled",
		"session_id", s.ID,
		"dice", faces,
		"candidate", s.CandidateJob,
	)

	return &RollOutput{Session: o.view(s), Faces: faces}, nil
}

// ConfirmJob commits the candidate job
func (o *orchestrator) ConfirmJob(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.mutate(ctx, input.SessionID, func(s *entities.Session) error {
		if err := requirePhase(s, entities.PhaseJobResolution); err != nil {
			return err
		}
		if s.CandidateJob == "" {
			return errors.FailedPrecondition("roll for a job before confirming")
		}

		s.Sheet.Job = s.CandidateJob
		s.CandidateJob = ""
		s.Phase = entities.PhaseStatResolution
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Job confirmed", "session_id", s.ID, "job", s.Sheet.Job)

	return &SessionOutput{Session: o.view(s)}, nil
}

// RollStats rolls the three stat dice and sets the stats. Stats are set once;
// rolling again returns the existing faces.
func (o *orchestrator) RollStats(ctx context.Context, input *SessionInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var (
		faces  []int
		rolled bool
	)
	s, err := o.mutate(ctx, input.SessionID, func(s *entities.Session) error {
		if err := requirePhase(s, entities.PhaseStatResolution); err != nil {
			return err
		}
		if s.Sheet.Stats.IsResolved() {
			faces = append([]int(nil), s.StatDice...)
			return nil
		}

		base, err := o.catalog.RaceBase(s.Sheet.Theme, s.Sheet.Race)
		if err != nil {
			return err
		}
		values, err := o.engine.RollDice(3)
		if err != nil {
			return errors.Wrap(err, "failed to roll stat dice")
		}
		stats, err := o.engine.ResolveStats(&engine.ResolveStatsInput{
			StrengthDie:     values[0],
			DexterityDie:    values[1],
			IntelligenceDie: values[2],
			RaceBase:        base,
		})
		if err != nil {
			return err
		}

		faces, rolled = values, true
		s.Sheet.Stats = *stats
		s.StatDice = values
		return nil
	})
	if err != nil {
		return nil, err
	}

	if rolled {
		o.recordRolls(ctx, s.ID, dice.ContextStats, "strength, dexterity, intelligence", faces)

		slog.Info("Stats rolled",
			"session_id", s.ID,
			"dice", faces,
			"strength", s.Sheet.Stats.Strength,
			"dexterity", s.Sheet.Stats.Dexterity,
			"intelligence", s.Sheet.Stats.Intelligence,
			"hit_points", s.Sheet.Stats.HitPoints,
		)
	}

	return &RollOutput{Session: o.view(s), Faces: faces}, nil
}

// ConfirmStats asks the narrator for the opening scene. The session enters the
// narrative loop only when the call succeeds; on failure it stays in stat
// resolution and the confirmation may be retried.
func (o *orchestrator) ConfirmStats(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.callNarrator(ctx, input.SessionID, "initialize", func(s *entities.Session) (narratorCall, error) {
		if err := requirePhase(s, entities.PhaseStatResolution); err != nil {
			return nil, err
		}
		if !s.Sheet.Stats.IsResolved() {
			return nil, errors.FailedPrecondition("roll stats before confirming")
		}

		req := &narrator.InitializeInput{Character: o.character(s)}
		return func(ctx context.Context) (applyFunc, error) {
			out, err := o.narrator.Initialize(ctx, req)
			if err != nil {
				return nil, err
			}
			return func(s *entities.Session) error {
				s.Narrative.AppendSceneText(SceneTheme, out.StoryTheme)
				s.Narrative.AppendSceneText(SceneEra, out.StoryEra)
				s.Narrative.AppendSceneText(ScenePlace, out.StoryPlace)
				s.Narrative.AppendSceneText(SceneMood, out.StoryMood)
				s.Narrative.AppendSceneText(SceneSituation, out.StoryStartSituation)
				s.Narrative.SetSuggestions(out.ActionSuggestions)
				s.Phase = entities.PhaseNarrativeLoop
				return nil
			}, nil
		}, nil
	})
}

// rollSelection rolls two dice and picks from list with them
func (o *orchestrator) rollSelection(list []string) (string, []int, error) {
	values, err := o.engine.RollDice(2)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to roll selection dice")
	}
	picked, err := o.engine.SelectIndexed(list, values[0], values[1])
	if err != nil {
		return "", nil, err
	}
	return picked, values, nil
}
