package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tale/internal/entities"
	"github.com/KirkDiggler/rpg-tale/internal/errors"
)

type NarrativeSessionTestSuite struct {
	suite.Suite
	narrative *entities.NarrativeSession
}

func TestNarrativeSessionSuite(t *testing.T) {
	suite.Run(t, new(NarrativeSessionTestSuite))
}

func (s *NarrativeSessionTestSuite) SetupTest() {
	s.narrative = &entities.NarrativeSession{}
	s.narrative.AppendSceneText("place", "a rain-soaked harbour")
	s.narrative.AppendNarratorText("a guard blocks the gate")
	s.narrative.SetSuggestions([]string{"bribe the guard", "climb the wall"})
}

func (s *NarrativeSessionTestSuite) TestAppendPlayerActionClearsSuggestions() {
	s.narrative.AppendPlayerAction("climb the wall")

	last := s.narrative.Log[len(s.narrative.Log)-1]
	s.Assert().Equal(entities.EntryPlayerAction, last.Kind)
	s.Assert().Equal("climb the wall", last.Text)
	s.Assert().Empty(s.narrative.Suggestions)
}

func (s *NarrativeSessionTestSuite) TestLastNarration() {
	s.Assert().Equal("a guard blocks the gate", s.narrative.LastNarration())

	s.narrative.AppendPlayerAction("wave")
	s.narrative.AppendSystemNotice("try again")
	s.Assert().Equal("a guard blocks the gate", s.narrative.LastNarration())

	s.Assert().Empty((&entities.NarrativeSession{}).LastNarration())
}

func (s *NarrativeSessionTestSuite) TestOpenPendingRoll() {
	s.Require().NoError(s.narrative.OpenPendingRoll(entities.StatDexterity, "climb the wall"))

	check, ok := s.narrative.PendingCheck()
	s.Require().True(ok)
	s.Assert().Equal(entities.StatDexterity, check.RelevantStat)
	s.Assert().Equal("climb the wall", check.Action)
	s.Assert().Equal(1, s.narrative.UnresolvedPrompts())
	s.Assert().Empty(s.narrative.Suggestions)

	err := s.narrative.OpenPendingRoll(entities.StatStrength, "again")
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Equal(1, s.narrative.UnresolvedPrompts())
}

func (s *NarrativeSessionTestSuite) TestResolvePendingRollCompactsLog() {
	s.Require().NoError(s.narrative.OpenPendingRoll(entities.StatDexterity, "climb the wall"))
	before := len(s.narrative.Log)

	s.Require().NoError(s.narrative.ResolvePendingRoll(10, true))

	s.Assert().Len(s.narrative.Log, before)
	s.Assert().Equal(0, s.narrative.UnresolvedPrompts())
	_, ok := s.narrative.PendingCheck()
	s.Assert().False(ok)

	last := s.narrative.Log[len(s.narrative.Log)-1]
	s.Assert().Equal(entities.EntryRollOutcome, last.Kind)
	s.Assert().Equal(10, last.DiceSum)
	s.Assert().Equal(entities.StatDexterity, last.RelevantStat)
	s.Assert().True(last.Success)
}

func (s *NarrativeSessionTestSuite) TestResolveWithoutPending() {
	err := s.narrative.ResolvePendingRoll(5, false)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *NarrativeSessionTestSuite) TestSingleUnresolvedPromptOverManyChecks() {
	stats := []entities.StatName{entities.StatStrength, entities.StatDexterity, entities.StatIntelligence}
	for i, stat := range stats {
		s.Require().NoError(s.narrative.OpenPendingRoll(stat, ""))
		s.Assert().Equal(1, s.narrative.UnresolvedPrompts())
		s.Require().NoError(s.narrative.ResolvePendingRoll(i+3, i%2 == 0))
		s.Assert().Equal(0, s.narrative.UnresolvedPrompts())
	}
}
