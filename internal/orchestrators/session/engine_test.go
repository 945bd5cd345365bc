package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	narratormock "github.com/KirkDiggler/rpg-tale/internal/clients/narrator/mock"
	enginemock "github.com/KirkDiggler/rpg-tale/internal/engine/mock"
	"github.com/KirkDiggler/rpg-tale/internal/entities"
	"github.com/KirkDiggler/rpg-tale/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-tale/internal/errors"
	"github.com/KirkDiggler/rpg-tale/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/rpg-tale/internal/orchestrators/dice/mock"
	"github.com/KirkDiggler/rpg-tale/internal/orchestrators/session"
	"github.com/KirkDiggler/rpg-tale/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-tale/internal/pkg/idgen"
	sessionrepo "github.com/KirkDiggler/rpg-tale/internal/repositories/session"
	"github.com/KirkDiggler/rpg-tale/internal/testutils/builders"
)

// EngineFailureTestSuite drives the orchestrator with a mocked engine and
// dice service to pin down what happens around rolls.
type EngineFailureTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockEngine *enginemock.MockEngine
	mockDice   *dicemock.MockService
	repo       sessionrepo.Repository
	svc        session.Service
	ctx        context.Context
}

func TestEngineFailureSuite(t *testing.T) {
	suite.Run(t, new(EngineFailureTestSuite))
}

func (s *EngineFailureTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	repo, err := sessionrepo.NewMemoryRepository(&sessionrepo.Config{
		Clock: clock.NewFixed(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)
	s.repo = repo

	svc, err := session.NewOrchestrator(&session.Config{
		SessionRepo: repo,
		Engine:      s.mockEngine,
		Catalog:     catalog.Default(),
		Narrator:    narratormock.NewMockGateway(s.ctrl),
		DiceService: s.mockDice,
		IDGenerator: idgen.NewSequential("sess"),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *EngineFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EngineFailureTestSuite) seed(sess *entities.Session) {
	_, err := s.repo.Create(s.ctx, sessionrepo.CreateInput{Session: sess})
	s.Require().NoError(err)
}

func (s *EngineFailureTestSuite) TestRollStatsEngineFailureLeavesSessionUntouched() {
	s.seed(builders.NewSessionBuilder().
		WithID("sess_1").
		WithNickname("Kai").
		WithTheme("fantasy").
		WithRace("elf").
		WithJob("mage").
		Build())

	s.mockEngine.EXPECT().RollDice(3).Return(nil, errors.Internal("entropy source closed"))

	_, err := s.svc.RollStats(s.ctx, &session.SessionInput{SessionID: "sess_1"})
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))

	got, err := s.svc.GetSession(s.ctx, &session.SessionInput{SessionID: "sess_1"})
	s.Require().NoError(err)
	s.Assert().False(got.Session.Session.Sheet.Stats.IsResolved())
	s.Assert().Empty(got.Session.Session.StatDice)
}

func (s *EngineFailureTestSuite) TestRollCheckRecordsOnce() {
	s.seed(builders.LoopSession().
		WithNarration("The wall is slick.").
		WithPendingCheck(entities.StatDexterity, "climb").
		Build())

	s.mockEngine.EXPECT().RollDice(3).Return([]int{1, 2, 3}, nil)
	s.mockDice.EXPECT().
		RecordRolls(gomock.Any(), &dice.RecordRollsInput{
			EntityID: "sess_1",
			Context:  dice.ContextCheck,
			Rolls: []dice.RecordedRoll{{
				Faces:       []int{1, 2, 3},
				DieSize:     6,
				Description: "dexterity check",
			}},
		}).
		Return(&dice.RecordRollsOutput{}, nil)

	out, err := s.svc.RollCheck(s.ctx, &session.SessionInput{SessionID: "sess_1"})
	s.Require().NoError(err)
	s.Assert().Equal([]int{1, 2, 3}, out.Faces)
	s.Require().NotNil(out.Session.Check)
	s.Assert().Equal(6, out.Session.Check.DiceSum)
	s.Assert().Equal(10, out.Session.Check.Target)

	_, err = s.svc.RollCheck(s.ctx, &session.SessionInput{SessionID: "sess_1"})
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *EngineFailureTestSuite) TestRecordingFailureDoesNotFailRoll() {
	s.seed(builders.LoopSession().
		WithPendingCheck(entities.StatStrength, "").
		Build())

	s.mockEngine.EXPECT().RollDice(3).Return([]int{6, 6, 6}, nil)
	s.mockDice.EXPECT().RecordRolls(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	out, err := s.svc.RollCheck(s.ctx, &session.SessionInput{SessionID: "sess_1"})
	s.Require().NoError(err)
	s.Assert().Equal([]int{6, 6, 6}, out.Session.Session.CheckDice)
}
