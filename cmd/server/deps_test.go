package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tale/internal/config"
	"github.com/KirkDiggler/rpg-tale/internal/entities"
	"github.com/KirkDiggler/rpg-tale/internal/orchestrators/dice"
)

type sessionBody struct {
	ID        string              `json:"id"`
	Phase     entities.Phase      `json:"phase"`
	LoopState entities.LoopState  `json:"loop_state"`
	Log       []entities.LogEntry `json:"log"`
	Check     *struct {
		Stat entities.StatName `json:"stat"`
		Dice []int             `json:"dice"`
	} `json:"check"`
	Suggestions    []string `json:"suggestions"`
	NarratorFailed bool     `json:"narrator_failed"`
}

type rollBody struct {
	Faces   []int       `json:"faces"`
	Session sessionBody `json:"session"`
}

type DependenciesTestSuite struct {
	suite.Suite
	cfg     *config.Config
	deps    *dependencies
	cleanup func()
	server  *httptest.Server
}

func (s *DependenciesTestSuite) SetupTest() {
	s.cfg = &config.Config{
		NarratorMode:    config.NarratorModeScripted,
		NarratorTimeout: time.Second,
		RollTTL:         time.Minute,
		SessionIdleTTL:  time.Hour,
		DiceSeed:        42,
		RateLimit:       1000,
	}
}

func (s *DependenciesTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
		s.server = nil
	}
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
}

func (s *DependenciesTestSuite) build() {
	deps, cleanup, err := buildDependencies(context.Background(), s.cfg)
	s.Require().NoError(err)
	s.deps = deps
	s.cleanup = cleanup
	s.server = httptest.NewServer(deps.httpHandler)
}

// post sends body as JSON and decodes the response into a fresh T, so fields
// the server omits never carry over from an earlier response.
func post[T any](s *DependenciesTestSuite, path string, body any) T {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	resp, err := http.Post(s.server.URL+"/api/v1"+path, "application/json", &buf)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Require().Less(resp.StatusCode, 300, "POST %s returned %d", path, resp.StatusCode)

	var out T
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (s *DependenciesTestSuite) playThroughCreation() sessionBody {
	sess := post[sessionBody](s, "/sessions", nil)
	s.Require().NotEmpty(sess.ID)
	base := fmt.Sprintf("/sessions/%s", sess.ID)

	post[sessionBody](s, base+"/nickname", map[string]string{"nickname": "Ash"})
	sess = post[sessionBody](s, base+"/theme", map[string]string{"theme_id": "fantasy"})
	s.Require().Equal(entities.PhaseRaceResolution, sess.Phase)

	roll := post[rollBody](s, base+"/race/roll", nil)
	s.Len(roll.Faces, 2)
	post[sessionBody](s, base+"/race/confirm", nil)

	roll = post[rollBody](s, base+"/job/roll", nil)
	s.Len(roll.Faces, 2)
	post[sessionBody](s, base+"/job/confirm", nil)

	roll = post[rollBody](s, base+"/stats/roll", nil)
	s.Len(roll.Faces, 3)
	sess = post[sessionBody](s, base+"/stats/confirm", nil)

	s.Require().Equal(entities.PhaseNarrativeLoop, sess.Phase)
	s.Require().Equal(entities.LoopAwaitingPlayerInput, sess.LoopState)
	s.Require().False(sess.NarratorFailed)
	return sess
}

func (s *DependenciesTestSuite) TestHealthz() {
	s.build()

	resp, err := http.Get(s.server.URL + "/healthz")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *DependenciesTestSuite) TestScriptedSessionEndToEnd() {
	s.build()
	sess := s.playThroughCreation()
	s.NotEmpty(sess.Suggestions)

	base := fmt.Sprintf("/sessions/%s", sess.ID)
	sess = post[sessionBody](s, base+"/actions", map[string]string{"text": "climb the bell tower"})
	s.Require().Equal(entities.LoopAwaitingStatCheck, sess.LoopState)
	s.Require().NotNil(sess.Check)
	s.Equal(entities.StatDexterity, sess.Check.Stat)

	roll := post[rollBody](s, base+"/check/roll", nil)
	s.Len(roll.Faces, 3)

	logBefore := len(roll.Session.Log)
	sess = post[sessionBody](s, base+"/check/confirm", nil)
	s.Equal(entities.LoopAwaitingPlayerInput, sess.LoopState)
	s.Nil(sess.Check)
	s.Greater(len(sess.Log), logBefore)
}

func (s *DependenciesTestSuite) TestRollsRecordedInRedis() {
	mr := miniredis.RunT(s.T())
	s.cfg.RedisAddr = mr.Addr()
	s.build()

	sess := s.playThroughCreation()

	for _, rollContext := range []string{"race", "job", "stats"} {
		out, err := s.deps.diceService.GetRollSession(context.Background(), &dice.GetRollSessionInput{
			EntityID: sess.ID,
			Context:  rollContext,
		})
		s.Require().NoError(err, rollContext)
		s.Len(out.Session.Rolls, 1, rollContext)
	}
	s.NotEmpty(mr.Keys())
}

func (s *DependenciesTestSuite) TestRedisUnreachable() {
	s.cfg.RedisAddr = "127.0.0.1:1"

	_, _, err := buildDependencies(context.Background(), s.cfg)
	s.Error(err)
}

func (s *DependenciesTestSuite) TestUnknownNarratorMode() {
	s.cfg.NarratorMode = "oracle"

	_, _, err := buildDependencies(context.Background(), s.cfg)
	s.Error(err)
}

func (s *DependenciesTestSuite) TestHTTPNarratorMode() {
	s.cfg.NarratorMode = config.NarratorModeHTTP
	s.cfg.NarratorURL = "http://narrator.invalid"
	s.build()

	s.NotNil(s.deps.sessionService)
	s.NotNil(s.deps.diceHandler)
}

func TestDependenciesTestSuite(t *testing.T) {
	suite.Run(t, new(DependenciesTestSuite))
}
