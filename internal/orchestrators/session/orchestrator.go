// Package session drives a tale session through character creation and the
// narrative loop. It is the only code that mutates a session.
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionmock github.com/KirkDiggler/rpg-tale/internal/orchestrators/session Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-tale/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-tale/internal/engine"
	"github.com/KirkDiggler/rpg-tale/internal/entities"
	"github.com/KirkDiggler/rpg-tale/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-tale/internal/errors"
	"github.com/KirkDiggler/rpg-tale/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-tale/internal/pkg/idgen"
	sessionrepo "github.com/KirkDiggler/rpg-tale/internal/repositories/session"
)

// RetryNotice is the system notice logged when a narrator call fails.
const RetryNotice = "The narrator could not be reached. Please try again."

// Service defines the session flow. Every mutating operation is rejected
// with errors.ReasonNarratorBusy while a narrator call is in flight for the
// session.
type Service interface {
	CreateSession(ctx context.Context, input *CreateSessionInput) (*SessionOutput, error)
	GetSession(ctx context.Context, input *SessionInput) (*SessionOutput, error)
	ListThemes(ctx context.Context, input *ListThemesInput) (*ListThemesOutput, error)

	// Character creation
	SetNickname(ctx context.Context, input *SetNicknameInput) (*SessionOutput, error)
	SelectTheme(ctx context.Context, input *SelectThemeInput) (*SessionOutput, error)
	RollRace(ctx context.Context, input *SessionInput) (*RollOutput, error)
	ConfirmRace(ctx context.Context, input *SessionInput) (*SessionOutput, error)
	RollJob(ctx context.Context, input *SessionInput) (*RollOutput, error)
	ConfirmJob(ctx context.Context, input *SessionInput) (*SessionOutput, error)
	RollStats(ctx context.Context, input *SessionInput) (*RollOutput, error)
	// ConfirmStats asks the narrator for the opening scene and enters the loop
	ConfirmStats(ctx context.Context, input *SessionInput) (*SessionOutput, error)

	// Narrative loop
	SubmitAction(ctx context.Context, input *SubmitActionInput) (*SessionOutput, error)
	RollCheck(ctx context.Context, input *SessionInput) (*RollOutput, error)
	ConfirmCheck(ctx context.Context, input *SessionInput) (*SessionOutput, error)
}

// Config holds the dependencies for the session orchestrator
type Config struct {
	SessionRepo sessionrepo.Repository
	Engine      engine.Engine
	Catalog     *catalog.Catalog
	Narrator    narrator.Gateway
	// DiceService records every authoritative roll for the renderer
	DiceService dice.Service
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Narrator == nil {
		vb.RequiredField("Narrator")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	repo     sessionrepo.Repository
	engine   engine.Engine
	catalog  *catalog.Catalog
	narrator narrator.Gateway
	dice     dice.Service
	idGen    idgen.Generator

	locks *keyedMutex
}

// NewOrchestrator creates a new session orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:     cfg.SessionRepo,
		engine:   cfg.Engine,
		catalog:  cfg.Catalog,
		narrator: cfg.Narrator,
		dice:     cfg.DiceService,
		idGen:    cfg.IDGenerator,
		locks:    newKeyedMutex(),
	}, nil
}

var _ Service = (*orchestrator)(nil)

// CreateSession starts a session at nickname entry
func (o *orchestrator) CreateSession(ctx context.Context, _ *CreateSessionInput) (*SessionOutput, error) {
	s := &entities.Session{
		ID:    o.idGen.Generate(),
		Phase: entities.PhaseNicknameEntry,
	}

	out, err := o.repo.Create(ctx, sessionrepo.CreateInput{Session: s})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	slog.Info("Session created", "session_id", out.Session.ID)

	return &SessionOutput{Session: o.view(out.Session)}, nil
}

// GetSession returns the current state of a session
func (o *orchestrator) GetSession(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &SessionOutput{Session: o.view(s)}, nil
}

// ListThemes returns the theme catalog
func (o *orchestrator) ListThemes(_ context.Context, _ *ListThemesInput) (*ListThemesOutput, error) {
	return &ListThemesOutput{Themes: o.catalog.Themes()}, nil
}

func (o *orchestrator) lock(id string) func() {
	return o.locks.lock(id)
}

func (o *orchestrator) load(ctx context.Context, id string) (*entities.Session, error) {
	if id == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	out, err := o.repo.Get(ctx, sessionrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get session %s", id)
	}
	return out.Session, nil
}

func (o *orchestrator) save(ctx context.Context, s *entities.Session) (*entities.Session, error) {
	out, err := o.repo.Update(ctx, sessionrepo.UpdateInput{Session: s})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save session %s", s.ID)
	}
	return out.Session, nil
}

// mutate applies fn to the stored session under the session's lock. Nothing
// is saved when fn fails, and fn never runs while a narrator call is in
// flight.
func (o *orchestrator) mutate(ctx context.Context, id string, fn func(s *entities.Session) error) (*entities.Session, error) {
	// unknown IDs are rejected before they ever touch the lock table
	if _, err := o.load(ctx, id); err != nil {
		return nil, err
	}

	unlock := o.lock(id)
	defer unlock()

	s, err := o.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Narrative.AwaitingNarrator {
		return nil, errors.NarratorBusy().WithMeta("session_id", id)
	}

	if err := fn(s); err != nil {
		return nil, err
	}

	return o.save(ctx, s)
}

// recordRolls stores faces for the renderer. The session flow does not
// depend on the record, so failures are only logged.
func (o *orchestrator) recordRolls(ctx context.Context, sessionID, rollContext, description string, faces []int) {
	_, err := o.dice.RecordRolls(ctx, &dice.RecordRollsInput{
		EntityID: sessionID,
		Context:  rollContext,
		Rolls: []dice.RecordedRoll{{
			Faces:       faces,
			DieSize:     engine.DieSize,
			Description: description,
		}},
	})
	if err != nil {
		slog.Warn("Failed to record rolls",
			"session_id", sessionID,
			"context", rollContext,
			"error", err,
		)
	}
}

func (o *orchestrator) view(s *entities.Session) *View {
	v := &View{
		Session:   s,
		LoopState: s.LoopState(),
	}

	if s.Sheet.Theme != "" {
		if theme, err := o.catalog.Theme(s.Sheet.Theme); err == nil {
			v.RaceOptions = theme.RaceNames()
			v.JobOptions = theme.JobNames()
			v.FixedRace = theme.FixedRace
		}
	}
	if s.Sheet.Race != "" {
		v.RaceSkills = o.catalog.RaceSkills(s.Sheet.Theme, s.Sheet.Race)
	}
	if s.Sheet.Job != "" {
		v.JobSkills = o.catalog.JobSkills(s.Sheet.Theme, s.Sheet.Job)
	}

	if pending, ok := s.Narrative.PendingCheck(); ok {
		check := &CheckGuidance{Stat: pending.RelevantStat}
		check.Target, _ = s.Sheet.Stats.Value(pending.RelevantStat)
		if len(s.CheckDice) > 0 {
			check.Dice = append([]int(nil), s.CheckDice...)
			check.DiceSum = sum(s.CheckDice)
		}
		v.Check = check
	}

	return v
}

func (o *orchestrator) character(s *entities.Session) narrator.Character {
	themeName := s.Sheet.Theme
	if theme, err := o.catalog.Theme(s.Sheet.Theme); err == nil && theme.Name != "" {
		themeName = theme.Name
	}

	return narrator.Character{
		Nickname:   s.Sheet.Nickname,
		Theme:      themeName,
		Race:       s.Sheet.Race,
		Job:        s.Sheet.Job,
		Stats:      s.Sheet.Stats,
		RaceSkills: o.catalog.RaceSkills(s.Sheet.Theme, s.Sheet.Race),
		JobSkills:  o.catalog.JobSkills(s.Sheet.Theme, s.Sheet.Job),
	}
}

func sum(faces []int) int {
	total := 0
	for _, f := range faces {
		total += f
	}
	return total
}
