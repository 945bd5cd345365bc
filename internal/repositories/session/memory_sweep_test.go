package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tale/internal/entities"
	"github.com/KirkDiggler/rpg-tale/internal/pkg/clock"
)

type MemorySweepTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.Fixed
	repo  *memoryRepository
}

func TestMemorySweepSuite(t *testing.T) {
	suite.Run(t, new(MemorySweepTestSuite))
}

func (s *MemorySweepTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	repo, err := NewMemoryRepository(&Config{Clock: s.clock, IdleTTL: time.Hour})
	s.Require().NoError(err)
	s.repo = repo.(*memoryRepository)
}

func (s *MemorySweepTestSuite) create(id string) {
	_, err := s.repo.Create(s.ctx, CreateInput{Session: &entities.Session{ID: id}})
	s.Require().NoError(err)
}

func (s *MemorySweepTestSuite) TestAbandonedSessionsSweptOnCreate() {
	for i := 0; i < 100; i++ {
		s.create(fmt.Sprintf("abandoned_%d", i))
	}
	s.Require().Len(s.repo.sessions, 100)

	s.clock.Advance(2 * time.Hour)
	s.create("fresh")

	s.Assert().Len(s.repo.sessions, 1)
	s.Assert().Contains(s.repo.sessions, "fresh")
}

func (s *MemorySweepTestSuite) TestSweepSparesActiveSessions() {
	s.create("idle")
	s.create("active")

	s.clock.Advance(40 * time.Minute)
	_, err := s.repo.Update(s.ctx, UpdateInput{Session: &entities.Session{ID: "active"}})
	s.Require().NoError(err)

	s.clock.Advance(40 * time.Minute)
	s.create("fresh")

	s.Assert().Len(s.repo.sessions, 2)
	s.Assert().Contains(s.repo.sessions, "active")
	s.Assert().NotContains(s.repo.sessions, "idle")
}

func (s *MemorySweepTestSuite) TestSweepRunsAtMostOncePerTTL() {
	s.create("old")
	s.clock.Advance(30 * time.Minute)
	s.create("middle")

	s.clock.Advance(40 * time.Minute)
	s.create("trigger")
	s.Require().Len(s.repo.sessions, 2)
	s.Require().NotContains(s.repo.sessions, "old")

	// "middle" is now idle past the TTL but the last sweep was 30 minutes ago
	s.clock.Advance(30 * time.Minute)
	s.create("late")
	s.Assert().Len(s.repo.sessions, 3)
	s.Assert().Contains(s.repo.sessions, "middle")
}
