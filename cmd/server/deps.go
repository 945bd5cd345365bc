package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/KirkDiggler/rpg-tale/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-tale/internal/config"
	"github.com/KirkDiggler/rpg-tale/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-tale/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-tale/internal/handlers/api/v1alpha1"
	mw "github.com/KirkDiggler/rpg-tale/internal/handlers/http/middleware"
	v1 "github.com/KirkDiggler/rpg-tale/internal/handlers/http/v1"
	"github.com/KirkDiggler/rpg-tale/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-tale/internal/orchestrators/session"
	"github.com/KirkDiggler/rpg-tale/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-tale/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-tale/internal/redis"
	dicesession "github.com/KirkDiggler/rpg-tale/internal/repositories/dice_session"
	sessionrepo "github.com/KirkDiggler/rpg-tale/internal/repositories/session"
)

const redisPingTimeout = 5 * time.Second

// dependencies is the wired application behind both servers.
type dependencies struct {
	diceService    dice.Service
	sessionService session.Service
	diceHandler    *v1alpha1.DiceHandler
	httpHandler    http.Handler
}

// buildDependencies wires repositories, orchestrators and handlers from cfg.
// The returned cleanup releases external connections.
func buildDependencies(ctx context.Context, cfg *config.Config) (*dependencies, func(), error) {
	clk := clock.New()
	cleanup := func() {}

	diceRepo, closeRepo, err := newDiceSessionRepo(ctx, cfg, clk)
	if err != nil {
		return nil, nil, err
	}
	cleanup = closeRepo

	roller := rpgtoolkit.NewRoller(cfg.DiceSeed)

	diceService, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: diceRepo,
		IDGenerator:     idgen.NewUUID("roll"),
		Roller:          roller,
		SessionTTL:      cfg.RollTTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create dice orchestrator: %w", err)
	}

	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: roller})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create engine: %w", err)
	}

	gateway, err := newNarrator(cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	sessionRepo, err := sessionrepo.NewMemoryRepository(&sessionrepo.Config{
		Clock:   clk,
		IdleTTL: cfg.SessionIdleTTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	sessionService, err := session.NewOrchestrator(&session.Config{
		SessionRepo: sessionRepo,
		Engine:      eng,
		Catalog:     catalog.Default(),
		Narrator:    gateway,
		DiceService: diceService,
		IDGenerator: idgen.NewUUID("sess"),
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create session orchestrator: %w", err)
	}

	diceHandler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{DiceService: diceService})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create dice handler: %w", err)
	}

	sessionHandler, err := v1.NewSessionHandler(&v1.SessionHandlerConfig{SessionService: sessionService})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create session handler: %w", err)
	}

	router, err := v1.NewRouter(&v1.RouterConfig{
		SessionHandler: sessionHandler,
		RateLimit:      mw.RateLimiterConfig{RequestsPerSecond: cfg.RateLimit},
		Logger:         slog.Default(),
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create router: %w", err)
	}

	return &dependencies{
		diceService:    diceService,
		sessionService: sessionService,
		diceHandler:    diceHandler,
		httpHandler:    router,
	}, cleanup, nil
}

func newDiceSessionRepo(ctx context.Context, cfg *config.Config, clk clock.Clock) (dicesession.Repository, func(), error) {
	if cfg.RedisAddr == "" {
		slog.Info("Keeping roll records in memory")
		return dicesession.NewMemoryRepository(clk), func() {}, nil
	}

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	closeClient := func() { _ = client.Close() }

	if err := redis.Ping(ctx, client, redisPingTimeout); err != nil {
		closeClient()
		return nil, nil, err
	}

	repo, err := dicesession.NewRedisRepository(&dicesession.Config{Client: client, Clock: clk})
	if err != nil {
		closeClient()
		return nil, nil, fmt.Errorf("failed to create dice session repository: %w", err)
	}

	slog.Info("Storing roll records in redis", "addr", cfg.RedisAddr)
	return repo, closeClient, nil
}

func newNarrator(cfg *config.Config) (narrator.Gateway, error) {
	switch cfg.NarratorMode {
	case config.NarratorModeHTTP:
		gateway, err := narrator.NewHTTPClient(&narrator.HTTPConfig{
			BaseURL: cfg.NarratorURL,
			Timeout: cfg.NarratorTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create narrator client: %w", err)
		}
		return gateway, nil
	case config.NarratorModeScripted:
		return narrator.NewScripted(), nil
	default:
		return nil, fmt.Errorf("unknown narrator mode %q", cfg.NarratorMode)
	}
}
