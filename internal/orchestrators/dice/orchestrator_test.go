package dice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-tale/internal/errors"
	"github.com/KirkDiggler/rpg-tale/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-tale/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/rpg-tale/internal/repositories/dice_session"
	dicesessionmock "github.com/KirkDiggler/rpg-tale/internal/repositories/dice_session/mock"
)

// scriptedRoller returns faces in order and records what it was asked.
type scriptedRoller struct {
	faces []int
	sizes []int
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	face := r.faces[0]
	r.faces = r.faces[1:]
	return face, nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		face, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = face
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *dicesessionmock.MockRepository
	roller   *scriptedRoller
	svc      dice.Service
	ctx      context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = dicesessionmock.NewMockRepository(s.ctrl)
	s.roller = &scriptedRoller{}
	s.ctx = context.Background()

	svc, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: s.mockRepo,
		IDGenerator:     idgen.NewSequential("roll"),
		Roller:          s.roller,
		SessionTTL:      10 * time.Minute,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func echoAppend(_ context.Context, input dicesession.AppendInput) (*dicesession.AppendOutput, error) {
	return &dicesession.AppendOutput{Session: &dicesession.DiceSession{
		EntityID: input.EntityID,
		Context:  input.Context,
		Rolls:    input.Rolls,
	}}, nil
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := dice.NewOrchestrator(&dice.Config{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = dice.NewOrchestrator(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRollDice() {
	s.roller.faces = []int{2, 5}

	s.mockRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, input dicesession.AppendInput) (*dicesession.AppendOutput, error) {
			s.Assert().Equal("sess_1", input.EntityID)
			s.Assert().Equal("tools", input.Context)
			s.Assert().Equal(10*time.Minute, input.TTL)
			return echoAppend(ctx, input)
		})

	out, err := s.svc.RollDice(s.ctx, &dice.RollDiceInput{
		EntityID: "sess_1",
		Context:  "tools",
		Notation: "2d6+3",
	})
	s.Require().NoError(err)

	s.Assert().Equal([]int{6, 6}, s.roller.sizes)
	s.Assert().Equal("roll_1", out.Roll.RollID)
	s.Assert().Equal([]int32{2, 5}, out.Roll.Dice)
	s.Assert().Equal(int32(7), out.Roll.DiceTotal)
	s.Assert().Equal(int32(3), out.Roll.Modifier)
	s.Assert().Equal(int32(10), out.Roll.Total)
	s.Assert().Len(out.Session.Rolls, 1)
}

func (s *OrchestratorTestSuite) TestRollDiceInputTTLOverrides() {
	s.roller.faces = []int{4}

	s.mockRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, input dicesession.AppendInput) (*dicesession.AppendOutput, error) {
			s.Assert().Equal(time.Minute, input.TTL)
			return echoAppend(ctx, input)
		})

	_, err := s.svc.RollDice(s.ctx, &dice.RollDiceInput{
		EntityID: "sess_1", Context: "tools", Notation: "1d20", TTL: time.Minute,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestRollDiceInvalidNotation() {
	testCases := []string{"d6", "2x6", "0d6", "2d0", "101d6", "1d1001", "2d6+"}

	for _, notation := range testCases {
		s.Run(notation, func() {
			_, err := s.svc.RollDice(s.ctx, &dice.RollDiceInput{
				EntityID: "sess_1", Context: "tools", Notation: notation,
			})
			s.Assert().True(errors.IsInvalidArgument(err), "notation %q", notation)
		})
	}
}

func (s *OrchestratorTestSuite) TestRollDiceMissingFields() {
	_, err := s.svc.RollDice(s.ctx, &dice.RollDiceInput{Notation: "1d6"})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "entity_id")
	s.Assert().Contains(err.Error(), "context")
}

func (s *OrchestratorTestSuite) TestRollDiceRepositoryError() {
	s.roller.faces = []int{1}
	s.mockRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.svc.RollDice(s.ctx, &dice.RollDiceInput{EntityID: "e", Context: "c", Notation: "1d6"})
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestRecordRolls() {
	s.mockRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, input dicesession.AppendInput) (*dicesession.AppendOutput, error) {
			s.Assert().Equal(dice.ContextStats, input.Context)
			s.Require().Len(input.Rolls, 3)
			s.Assert().Equal("1d6", input.Rolls[0].Notation)
			s.Assert().Equal("strength", input.Rolls[0].Description)
			return echoAppend(ctx, input)
		})

	out, err := s.svc.RecordRolls(s.ctx, &dice.RecordRollsInput{
		EntityID: "sess_1",
		Context:  dice.ContextStats,
		Rolls: []dice.RecordedRoll{
			{Faces: []int{4}, DieSize: 6, Description: "strength"},
			{Faces: []int{2}, DieSize: 6, Description: "dexterity"},
			{Faces: []int{6}, DieSize: 6, Description: "intelligence"},
		},
	})
	s.Require().NoError(err)
	s.Assert().Equal(int32(6), out.Rolls[2].Total)
	s.Assert().Empty(s.roller.sizes, "recording must never roll")
}

func (s *OrchestratorTestSuite) TestRecordRollsValidation() {
	_, err := s.svc.RecordRolls(s.ctx, &dice.RecordRollsInput{EntityID: "sess_1", Context: dice.ContextCheck})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.svc.RecordRolls(s.ctx, &dice.RecordRollsInput{
		EntityID: "sess_1",
		Context:  dice.ContextCheck,
		Rolls:    []dice.RecordedRoll{{Faces: []int{3, 3}}},
	})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetRollSession() {
	session := &dicesession.DiceSession{EntityID: "sess_1", Context: dice.ContextRace}
	s.mockRepo.EXPECT().
		Get(s.ctx, dicesession.GetInput{EntityID: "sess_1", Context: dice.ContextRace}).
		Return(&dicesession.GetOutput{Session: session}, nil)

	out, err := s.svc.GetRollSession(s.ctx, &dice.GetRollSessionInput{EntityID: "sess_1", Context: dice.ContextRace})
	s.Require().NoError(err)
	s.Assert().Equal(session, out.Session)
}

func (s *OrchestratorTestSuite) TestGetRollSessionNotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("dice session not found"))

	_, err := s.svc.GetRollSession(s.ctx, &dice.GetRollSessionInput{EntityID: "sess_1", Context: dice.ContextJob})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestClearRollSession() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, dicesession.DeleteInput{EntityID: "sess_1", Context: dice.ContextCheck}).
		Return(&dicesession.DeleteOutput{RollsDeleted: 2}, nil)

	out, err := s.svc.ClearRollSession(s.ctx, &dice.ClearRollSessionInput{EntityID: "sess_1", Context: dice.ContextCheck})
	s.Require().NoError(err)
	s.Assert().Equal(int32(2), out.RollsDeleted)

	_, err = s.svc.ClearRollSession(s.ctx, &dice.ClearRollSessionInput{EntityID: "sess_1"})
	s.Assert().True(errors.IsInvalidArgument(err))
}
