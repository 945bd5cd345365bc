package narrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-tale/internal/errors"
)

// Paths of the narrator service operations.
const (
	PathInitialize   = "/api/gpt/preferences"
	PathHandleInput  = "/api/gpt/handleUserInput"
	PathContinue     = "/api/gpt/continueStory"
	defaultTimeout   = 60 * time.Second
	maxResponseBytes = 1 << 20
)

// HTTPConfig configures the HTTP narrator client
type HTTPConfig struct {
	BaseURL string
	// Timeout bounds a whole call; the session surfaces it as a transport
	// failure like any other.
	Timeout    time.Duration
	HTTPClient *http.Client
	// TracerProvider defaults to the global provider
	TracerProvider trace.TracerProvider
}

// Validate ensures the configuration is usable
func (c *HTTPConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("BaseURL", c.BaseURL, vb)
	if c.BaseURL != "" && !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		vb.Field("BaseURL", "must be an http or https URL")
	}
	if c.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}
	return vb.Build()
}

type httpClient struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewHTTPClient creates a Gateway that talks JSON to a narrator service.
func NewHTTPClient(cfg *HTTPConfig) (Gateway, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &httpClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: client,
		tracer:     tp.Tracer("github.com/KirkDiggler/rpg-tale/internal/clients/narrator"),
	}, nil
}

var _ Gateway = (*httpClient)(nil)

func (c *httpClient) Initialize(ctx context.Context, input *InitializeInput) (*InitializeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out *InitializeOutput
	err := c.call(ctx, "initialize", PathInitialize, input, func(body []byte) error {
		var err error
		out, err = DecodeInitialize(body)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) HandleInput(ctx context.Context, input *HandleInputInput) (*TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return c.turn(ctx, "handle_input", PathHandleInput, input)
}

func (c *httpClient) ContinueAfterCheck(ctx context.Context, input *ContinueAfterCheckInput) (*TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return c.turn(ctx, "continue_after_check", PathContinue, input)
}

func (c *httpClient) turn(ctx context.Context, op, path string, payload any) (*TurnOutput, error) {
	var out *TurnOutput
	err := c.call(ctx, op, path, payload, func(body []byte) error {
		var err error
		out, err = DecodeTurn(body)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// call POSTs payload and hands a 2xx body to decode. Anything that stops a
// body from arriving is a transport failure.
func (c *httpClient) call(ctx context.Context, op, path string, payload any, decode func([]byte) error) (err error) {
	ctx, span := c.tracer.Start(ctx, "narrator."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("narrator.operation", op)),
	)
	start := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, errors.GetMessage(err))
			slog.Warn("Narrator call failed",
				"operation", op,
				"reason", errors.GetReason(err),
				"duration", time.Since(start),
				"error", err,
			)
		}
		span.End()
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal narrator request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create narrator request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.TransportFailure(err, "narrator request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.TransportFailure(err, "failed to read narrator response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.TransportFailure(nil, fmt.Sprintf("narrator returned status %d", resp.StatusCode)).
			WithMeta("status", resp.StatusCode)
	}

	return decode(respBody)
}
