package v1alpha1_test

import (
	"context"
	"testing"
	"time"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/KirkDiggler/rpg-tale/internal/errors"
	"github.com/KirkDiggler/rpg-tale/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/rpg-tale/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/rpg-tale/internal/orchestrators/dice/mock"
	dicesession "github.com/KirkDiggler/rpg-tale/internal/repositories/dice_session"
)

type DiceHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockDice *dicemock.MockService
	handler  *v1alpha1.DiceHandler
	ctx      context.Context
	now      time.Time
}

func TestDiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DiceHandlerTestSuite))
}

func (s *DiceHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	handler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{
		DiceService: s.mockDice,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *DiceHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DiceHandlerTestSuite) statsSession() *dicesession.DiceSession {
	return &dicesession.DiceSession{
		EntityID: "sess_1",
		Context:  dice.ContextStats,
		Rolls: []dicesession.DiceRoll{
			{RollID: "roll_1", Notation: "1d6", Dice: []int32{4}, Total: 4, DiceTotal: 4, Description: "strength"},
			{RollID: "roll_2", Notation: "1d6", Dice: []int32{2}, Total: 2, DiceTotal: 2, Description: "dexterity"},
			{RollID: "roll_3", Notation: "1d6", Dice: []int32{6}, Total: 6, DiceTotal: 6, Description: "intelligence"},
		},
		CreatedAt: s.now.Add(-time.Minute),
		ExpiresAt: s.now.Add(14 * time.Minute),
	}
}

func (s *DiceHandlerTestSuite) TestNewDiceHandlerValidation() {
	_, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *DiceHandlerTestSuite) TestRollDice() {
	session := &dicesession.DiceSession{
		EntityID: "sess_1",
		Context:  "tools",
		Rolls: []dicesession.DiceRoll{
			{RollID: "roll_1", Notation: "2d6+1", Dice: []int32{3, 5}, Total: 9, DiceTotal: 8, Modifier: 1, Description: "bonus"},
		},
		ExpiresAt: s.now.Add(15 * time.Minute),
	}

	s.mockDice.EXPECT().
		RollDice(s.ctx, &dice.RollDiceInput{
			EntityID:    "sess_1",
			Context:     "tools",
			Notation:    "2d6+1",
			Description: "bonus",
		}).
		Return(&dice.RollDiceOutput{Roll: &session.Rolls[0], Session: session}, nil)

	resp, err := s.handler.RollDice(s.ctx, &apiv1alpha1.RollDiceRequest{
		EntityId:            "sess_1",
		Context:             "tools",
		Notation:            "2d6+1",
		ModifierDescription: "bonus",
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Rolls, 1)

	roll := resp.Rolls[0]
	s.Assert().Equal("roll_1", roll.RollId)
	s.Assert().Equal([]int32{3, 5}, roll.Dice)
	s.Assert().Equal(int32(9), roll.Total)
	s.Assert().Equal(int32(8), roll.DiceTotal)
	s.Assert().Equal(int32(1), roll.Modifier)
	s.Assert().Equal(session.ExpiresAt.Unix(), resp.ExpiresAt)
}

func (s *DiceHandlerTestSuite) TestRollDiceValidation() {
	testCases := []struct {
		name   string
		req    *apiv1alpha1.RollDiceRequest
		errMsg string
	}{
		{"missing entity_id", &apiv1alpha1.RollDiceRequest{Context: "tools", Notation: "1d6"}, "entity_id"},
		{"missing context", &apiv1alpha1.RollDiceRequest{EntityId: "sess_1", Notation: "1d6"}, "context"},
		{"missing notation", &apiv1alpha1.RollDiceRequest{EntityId: "sess_1", Context: "tools"}, "notation is required"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.handler.RollDice(s.ctx, tc.req)
			s.Require().Error(err)
			s.Assert().Nil(resp)

			st, ok := status.FromError(err)
			s.Require().True(ok)
			s.Assert().Equal(codes.InvalidArgument, st.Code())
			s.Assert().Contains(st.Message(), tc.errMsg)
		})
	}
}

func (s *DiceHandlerTestSuite) TestGetRollSession() {
	session := s.statsSession()

	s.mockDice.EXPECT().
		GetRollSession(s.ctx, &dice.GetRollSessionInput{EntityID: "sess_1", Context: dice.ContextStats}).
		Return(&dice.GetRollSessionOutput{Session: session}, nil)

	resp, err := s.handler.GetRollSession(s.ctx, &apiv1alpha1.GetRollSessionRequest{
		EntityId: "sess_1",
		Context:  dice.ContextStats,
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Rolls, 3)
	s.Assert().Equal("dexterity", resp.Rolls[1].Description)
	s.Assert().Equal([]int32{6}, resp.Rolls[2].Dice)
	s.Assert().True(proto.Equal(&apiv1alpha1.DiceRoll{
		RollId:      "roll_3",
		Notation:    "1d6",
		Dice:        []int32{6},
		Total:       6,
		DiceTotal:   6,
		Description: "intelligence",
	}, resp.Rolls[2]))
	s.Assert().Equal(session.CreatedAt.Unix(), resp.CreatedAt)
	s.Assert().Equal(session.ExpiresAt.Unix(), resp.ExpiresAt)
}

func (s *DiceHandlerTestSuite) TestGetRollSessionNotFound() {
	s.mockDice.EXPECT().
		GetRollSession(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("dice session not found"))

	_, err := s.handler.GetRollSession(s.ctx, &apiv1alpha1.GetRollSessionRequest{
		EntityId: "sess_1",
		Context:  dice.ContextCheck,
	})

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Assert().Equal(codes.NotFound, st.Code())
}

func (s *DiceHandlerTestSuite) TestClearRollSession() {
	s.mockDice.EXPECT().
		ClearRollSession(s.ctx, &dice.ClearRollSessionInput{EntityID: "sess_1", Context: dice.ContextRace}).
		Return(&dice.ClearRollSessionOutput{RollsDeleted: 1}, nil)

	resp, err := s.handler.ClearRollSession(s.ctx, &apiv1alpha1.ClearRollSessionRequest{
		EntityId: "sess_1",
		Context:  dice.ContextRace,
	})
	s.Require().NoError(err)
	s.Assert().Equal(int32(1), resp.RollsCleared)
	s.Assert().NotEmpty(resp.Message)
}

func (s *DiceHandlerTestSuite) TestClearRollSessionValidation() {
	_, err := s.handler.ClearRollSession(s.ctx, &apiv1alpha1.ClearRollSessionRequest{EntityId: "sess_1"})

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Assert().Equal(codes.InvalidArgument, st.Code())
}
