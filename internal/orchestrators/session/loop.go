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

const checkDiceCount = 3

// applyFunc installs a narrator response into a session.
type applyFunc func(s *entities.Session) error

// narratorCall performs the outbound request prepared under the session lock.
type narratorCall func(ctx context.Context) (applyFunc, error)

// callNarrator runs one narrator round trip for a session.
//
// prepare runs under the lock with the busy guard checked; its mutations are
// saved together with the guard. The call itself runs unlocked and detached
// from the caller's cancellation. Its response
// is applied to a copy of the session so a failing apply leaves nothing
// behind; any failure logs a single retry notice instead. The guard is
// always released.
func (o *orchestrator) callNarrator(
	ctx context.Context,
	sessionID string,
	operation string,
	prepare func(s *entities.Session) (narratorCall, error),
) (*SessionOutput, error) {
	var call narratorCall
	_, err := o.mutate(ctx, sessionID, func(s *entities.Session) error {
		c, err := prepare(s)
		if err != nil {
			return err
		}
		call = c
		s.Narrative.AwaitingNarrator = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	// an in-flight call runs to completion; only the transport timeout ends it
	ctx = context.WithoutCancel(ctx)

	apply, callErr := call(ctx)

	unlock := o.lock(sessionID)
	defer unlock()

	s, err := o.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if callErr == nil {
		updated := s.Clone()
		if callErr = apply(updated); callErr == nil {
			s = updated
		}
	}

	failed := callErr != nil
	if failed {
		slog.Warn("Narrator call failed",
			"session_id", sessionID,
			"operation", operation,
			"reason", errors.GetReason(callErr),
			"error", callErr,
		)
		s.Narrative.AppendSystemNotice(RetryNotice)
	}
	s.Narrative.AwaitingNarrator = false

	saved, err := o.save(ctx, s)
	if err != nil {
		return nil, err
	}

	return &SessionOutput{
		Session:        o.view(saved),
		NarratorFailed: failed,
	}, nil
}

// applyTurn installs a handleInput or continueAfterCheck response. A response
// that requires a roll opens a new pending check for action.
func applyTurn(s *entities.Session, out *narrator.TurnOutput, action string) error {
	s.Narrative.AppendNarratorText(out.StorySituation)

	if !out.RequiresRoll {
		s.Narrative.SetSuggestions(out.ActionSuggestions)
		return nil
	}

	if !out.RelevantStat.Checkable() {
		return errors.Validationf(errors.ReasonUnknownStat, "stat %q cannot be checked", out.RelevantStat)
	}
	if err := s.Narrative.OpenPendingRoll(out.RelevantStat, action); err != nil {
		return err
	}
	s.CheckDice = nil
	return nil
}

func requireLoopState(s *entities.Session, state entities.LoopState) error {
	if err := requirePhase(s, entities.PhaseNarrativeLoop); err != nil {
		return err
	}
	if s.LoopState() != state {
		return errors.WrongPhasef("narrative loop is %s, not %s", s.LoopState(), state).
			WithMeta("loop_state", string(s.LoopState()))
	}
	return nil
}

// SubmitAction sends a free-form player action to the narrator
func (o *orchestrator) SubmitAction(ctx context.Context, input *SubmitActionInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.callNarrator(ctx, input.SessionID, "handle_input", func(s *entities.Session) (narratorCall, error) {
		if err := requireLoopState(s, entities.LoopAwaitingPlayerInput); err != nil {
			return nil, err
		}

		action, err := resolveAction(s, input)
		if err != nil {
			return nil, err
		}

		req := &narrator.HandleInputInput{
			Character:         o.character(s),
			PreviousNarration: s.Narrative.LastNarration(),
			Action:            action,
		}
		s.Narrative.AppendPlayerAction(action)

		slog.Info("Action submitted", "session_id", s.ID, "action", action)

		return func(ctx context.Context) (applyFunc, error) {
			out, err := o.narrator.HandleInput(ctx, req)
			if err != nil {
				return nil, err
			}
			return func(s *entities.Session) error {
				return applyTurn(s, out, action)
			}, nil
		}, nil
	})
}

func resolveAction(s *entities.Session, input *SubmitActionInput) (string, error) {
	if input.SuggestionIndex != nil {
		idx := *input.SuggestionIndex
		if idx < 0 || idx >= len(s.Narrative.Suggestions) {
			return "", errors.Validationf(errors.ReasonInvalidSelection,
				"suggestion %d out of range (have %d)", idx, len(s.Narrative.Suggestions))
		}
		return s.Narrative.Suggestions[idx], nil
	}

	action := strings.TrimSpace(input.Text)
	if action == "" {
		return "", errors.InvalidArgument("action text is required")
	}
	return action, nil
}

// RollCheck rolls the three check dice for the pending check. The dice are
// rolled once per check; the result stands until it is confirmed.
func (o *orchestrator) RollCheck(ctx context.Context, input *SessionInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var faces []int
	s, err := o.mutate(ctx, input.SessionID, func(s *entities.Session) error {
		if err := requireLoopState(s, entities.LoopAwaitingStatCheck); err != nil {
			return err
		}
		if len(s.CheckDice) > 0 {
			return errors.FailedPrecondition("check dice were already rolled").
				WithMeta("dice_sum", sum(s.CheckDice))
		}

		values, err := o.engine.RollDice(checkDiceCount)
		if err != nil {
			return errors.Wrap(err, "failed to roll check dice")
		}

		faces = values
		s.CheckDice = values
		return nil
	})
	if err != nil {
		return nil, err
	}

	pending, _ := s.Narrative.PendingCheck()
	o.recordRolls(ctx, s.ID, dice.ContextCheck, string(pending.RelevantStat)+" check", faces)

	slog.Info("Check rolled",
		"session_id", s.ID,
		"stat", pending.RelevantStat,
		"dice", faces,
	)

	return &RollOutput{Session: o.view(s), Faces: faces}, nil
}

// ConfirmCheck resolves the pending check with the rolled dice and asks the
// narrator to continue. The outcome is committed only together with the
// narration; on failure the check stays pending with its dice.
func (o *orchestrator) ConfirmCheck(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.callNarrator(ctx, input.SessionID, "continue_after_check", func(s *entities.Session) (narratorCall, error) {
		if err := requireLoopState(s, entities.LoopAwaitingStatCheck); err != nil {
			return nil, err
		}
		if len(s.CheckDice) == 0 {
			return nil, errors.FailedPrecondition("roll the check dice before confirming")
		}

		pending, _ := s.Narrative.PendingCheck()
		diceSum := sum(s.CheckDice)
		result, err := o.engine.CheckStat(&engine.CheckStatInput{
			DiceSum: diceSum,
			Stat:    pending.RelevantStat,
			Sheet:   &s.Sheet,
		})
		if err != nil {
			return nil, err
		}

		slog.Info("Check confirmed",
			"session_id", s.ID,
			"stat", pending.RelevantStat,
			"dice_sum", diceSum,
			"target", result.Target,
			"success", result.Success,
		)

		req := &narrator.ContinueAfterCheckInput{
			Character:         o.character(s),
			PreviousNarration: s.Narrative.LastNarration(),
			Action:            pending.Action,
			DiceSum:           diceSum,
			RelevantStat:      pending.RelevantStat,
			Success:           result.Success,
		}

		return func(ctx context.Context) (applyFunc, error) {
			out, err := o.narrator.ContinueAfterCheck(ctx, req)
			if err != nil {
				return nil, err
			}
			return func(s *entities.Session) error {
				if err := s.Narrative.ResolvePendingRoll(diceSum, result.Success); err != nil {
					return err
				}
				s.CheckDice = nil
				return applyTurn(s, out, pending.Action)
			}, nil
		}, nil
	})
}
