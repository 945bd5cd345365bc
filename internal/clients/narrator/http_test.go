package narrator_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/KirkDiggler/rpg-tale/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-tale/internal/entities"
	"github.com/KirkDiggler/rpg-tale/internal/errors"
)

type HTTPClientTestSuite struct {
	suite.Suite
	mu       sync.Mutex
	server   *httptest.Server
	handlers map[string]http.HandlerFunc
	requests map[string][]byte
	spans    *tracetest.SpanRecorder
	client   narrator.Gateway
	ctx      context.Context
}

func TestHTTPClientSuite(t *testing.T) {
	suite.Run(t, new(HTTPClientTestSuite))
}

func (s *HTTPClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.handlers = make(map[string]http.HandlerFunc)
	s.requests = make(map[string][]byte)

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests[r.URL.Path] = body
		h, ok := s.handlers[r.URL.Path]
		s.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))

	s.spans = tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(s.spans))

	client, err := narrator.NewHTTPClient(&narrator.HTTPConfig{
		BaseURL:        s.server.URL + "/",
		Timeout:        time.Second,
		TracerProvider: tp,
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *HTTPClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *HTTPClientTestSuite) handle(path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[path] = h
}

func (s *HTTPClientTestSuite) sent(path string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().NoError(json.Unmarshal(s.requests[path], v))
}

func (s *HTTPClientTestSuite) respond(path string, status int, body string) {
	s.handle(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func character() narrator.Character {
	return narrator.Character{
		Nickname:   "Kai",
		Theme:      "fantasy",
		Race:       "dragonborn",
		Job:        "rogue",
		Stats:      entities.Stats{Strength: 3, Dexterity: 5, Intelligence: 8, HitPoints: 14},
		RaceSkills: []string{"breath weapon"},
		JobSkills:  []string{"backstab"},
	}
}

func (s *HTTPClientTestSuite) TestConfigValidation() {
	_, err := narrator.NewHTTPClient(&narrator.HTTPConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = narrator.NewHTTPClient(&narrator.HTTPConfig{BaseURL: "ftp://narrator"})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *HTTPClientTestSuite) TestInitialize() {
	s.respond(narrator.PathInitialize, http.StatusOK, `{
		"story_theme": "dark fantasy",
		"story_era": "the third age",
		"story_place": "a harbour city",
		"story_mood": "tense",
		"story_start_situation": "fog rolls in",
		"examples": ["look around", " ", "find an inn"]
	}`)

	out, err := s.client.Initialize(s.ctx, &narrator.InitializeInput{Character: character()})
	s.Require().NoError(err)
	s.Assert().Equal("dark fantasy", out.StoryTheme)
	s.Assert().Equal("fog rolls in", out.StoryStartSituation)
	s.Assert().Equal([]string{"look around", "find an inn"}, out.ActionSuggestions)

	var sent map[string]map[string]any
	s.sent(narrator.PathInitialize, &sent)
	s.Assert().Equal("Kai", sent["character"]["nickname"])
	s.Assert().Equal([]any{"backstab"}, sent["character"]["job_skills"])

	ended := s.spans.Ended()
	s.Require().Len(ended, 1)
	s.Assert().Equal("narrator.initialize", ended[0].Name())
	s.Assert().NotEqual(codes.Error, ended[0].Status().Code)
}

func (s *HTTPClientTestSuite) TestInitializeMissingField() {
	s.respond(narrator.PathInitialize, http.StatusOK, `{
		"story_theme": "dark fantasy",
		"story_era": "the third age",
		"story_place": "",
		"story_mood": "tense",
		"story_start_situation": "fog rolls in",
		"examples": []
	}`)

	_, err := s.client.Initialize(s.ctx, &narrator.InitializeInput{Character: character()})
	s.Require().Error(err)
	s.Assert().True(errors.IsMalformedResponse(err))
	s.Assert().Contains(err.Error(), "story_place")

	ended := s.spans.Ended()
	s.Require().Len(ended, 1)
	s.Assert().Equal(codes.Error, ended[0].Status().Code)
}

func (s *HTTPClientTestSuite) TestHandleInputNoRoll() {
	s.respond(narrator.PathHandleInput, http.StatusOK, `{
		"story_situation": "the guard waves you through",
		"examples": ["enter", "wait"],
		"requires_roll": false
	}`)

	out, err := s.client.HandleInput(s.ctx, &narrator.HandleInputInput{
		Character:         character(),
		PreviousNarration: "a guard blocks the gate",
		Action:            "show my papers",
	})
	s.Require().NoError(err)
	s.Assert().False(out.RequiresRoll)
	s.Assert().Empty(out.RelevantStat)
	s.Assert().Equal([]string{"enter", "wait"}, out.ActionSuggestions)

	var sent map[string]any
	s.sent(narrator.PathHandleInput, &sent)
	s.Assert().Equal("a guard blocks the gate", sent["previous_narration"])
	s.Assert().Equal("show my papers", sent["action"])
}

func (s *HTTPClientTestSuite) TestHandleInputRollWithAlias() {
	s.respond(narrator.PathHandleInput, http.StatusOK, `{
		"story_situation": "the wall is slick",
		"examples": [],
		"requires_roll": true,
		"relevant_stat": "민첩"
	}`)

	out, err := s.client.HandleInput(s.ctx, &narrator.HandleInputInput{Character: character(), Action: "climb"})
	s.Require().NoError(err)
	s.Assert().True(out.RequiresRoll)
	s.Assert().Equal(entities.StatDexterity, out.RelevantStat)
}

func (s *HTTPClientTestSuite) TestContinueAfterCheck() {
	s.respond(narrator.PathContinue, http.StatusOK, `{
		"story_situation": "you reach the top",
		"examples": ["look down"],
		"requires_roll": false
	}`)

	out, err := s.client.ContinueAfterCheck(s.ctx, &narrator.ContinueAfterCheckInput{
		Character:         character(),
		PreviousNarration: "the wall is slick",
		Action:            "climb",
		DiceSum:           9,
		RelevantStat:      entities.StatDexterity,
		Success:           false,
	})
	s.Require().NoError(err)
	s.Assert().Equal("you reach the top", out.StorySituation)

	var sent map[string]any
	s.sent(narrator.PathContinue, &sent)
	s.Assert().Equal(float64(9), sent["dice_sum"])
	s.Assert().Equal("dexterity", sent["relevant_stat"])
	s.Assert().Equal(false, sent["success"])
}

func (s *HTTPClientTestSuite) TestMalformedTurnReplies() {
	testCases := []struct {
		name string
		body string
	}{
		{"invalid json", `{"story_situation": `},
		{"missing situation", `{"examples": [], "requires_roll": false}`},
		{"missing examples", `{"story_situation": "x", "requires_roll": false}`},
		{"missing requires_roll", `{"story_situation": "x", "examples": []}`},
		{"roll without stat", `{"story_situation": "x", "examples": [], "requires_roll": true}`},
		{"roll on hit points", `{"story_situation": "x", "examples": [], "requires_roll": true, "relevant_stat": "hp"}`},
		{"roll on unknown stat", `{"story_situation": "x", "examples": [], "requires_roll": true, "relevant_stat": "luck"}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.respond(narrator.PathHandleInput, http.StatusOK, tc.body)

			_, err := s.client.HandleInput(s.ctx, &narrator.HandleInputInput{Character: character(), Action: "x"})
			s.Require().Error(err)
			s.Assert().True(errors.IsMalformedResponse(err), err.Error())
		})
	}
}

func (s *HTTPClientTestSuite) TestTransportFailures() {
	s.respond(narrator.PathHandleInput, http.StatusBadGateway, `{"error": "upstream"}`)

	_, err := s.client.HandleInput(s.ctx, &narrator.HandleInputInput{Character: character(), Action: "x"})
	s.Require().Error(err)
	s.Assert().True(errors.IsTransportFailure(err))

	s.handle(narrator.PathContinue, func(_ http.ResponseWriter, _ *http.Request) {
		time.Sleep(1500 * time.Millisecond)
	})
	_, err = s.client.ContinueAfterCheck(s.ctx, &narrator.ContinueAfterCheckInput{Character: character()})
	s.Require().Error(err)
	s.Assert().True(errors.IsTransportFailure(err))
}

func (s *HTTPClientTestSuite) TestServerDown() {
	s.server.Close()

	_, err := s.client.Initialize(s.ctx, &narrator.InitializeInput{Character: character()})
	s.Require().Error(err)
	s.Assert().True(errors.IsTransportFailure(err))
}
