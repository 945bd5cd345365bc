// Package v1 serves the tale session HTTP API.
package v1

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/rpg-tale/internal/errors"
	"github.com/KirkDiggler/rpg-tale/internal/orchestrators/session"
)

// SessionHandlerConfig holds dependencies for the session handler
type SessionHandlerConfig struct {
	SessionService session.Service
}

// Validate ensures all required dependencies are present
func (c *SessionHandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.SessionService == nil {
		vb.RequiredField("SessionService")
	}
	return vb.Build()
}

// SessionHandler maps the session API onto the session service
type SessionHandler struct {
	sessionService session.Service
}

// NewSessionHandler creates a new session handler with the given configuration
func NewSessionHandler(cfg *SessionHandlerConfig) (*SessionHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &SessionHandler{
		sessionService: cfg.SessionService,
	}, nil
}

// Routes mounts the session API on r
func (h *SessionHandler) Routes(r chi.Router) {
	r.Get("/themes", h.ListThemes)

	r.Post("/sessions", h.CreateSession)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", h.GetSession)
		r.Post("/nickname", h.SetNickname)
		r.Post("/theme", h.SelectTheme)
		r.Post("/race/roll", h.roll(h.sessionService.RollRace))
		r.Post("/race/confirm", h.step(h.sessionService.ConfirmRace))
		r.Post("/job/roll", h.roll(h.sessionService.RollJob))
		r.Post("/job/confirm", h.step(h.sessionService.ConfirmJob))
		r.Post("/stats/roll", h.roll(h.sessionService.RollStats))
		r.Post("/stats/confirm", h.step(h.sessionService.ConfirmStats))
		r.Post("/actions", h.SubmitAction)
		r.Post("/check/roll", h.roll(h.sessionService.RollCheck))
		r.Post("/check/confirm", h.step(h.sessionService.ConfirmCheck))
	})
}

// ListThemes returns the theme catalog
func (h *SessionHandler) ListThemes(w http.ResponseWriter, r *http.Request) {
	out, err := h.sessionService.ListThemes(r.Context(), &session.ListThemesInput{})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"themes": convertThemes(out.Themes)})
}

// CreateSession starts a new session
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	out, err := h.sessionService.CreateSession(r.Context(), &session.CreateSessionInput{})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSession(w, http.StatusCreated, out)
}

// GetSession returns a session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	out, err := h.sessionService.GetSession(r.Context(), &session.SessionInput{SessionID: chi.URLParam(r, "id")})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSession(w, http.StatusOK, out)
}

// SetNickname names the character
func (h *SessionHandler) SetNickname(w http.ResponseWriter, r *http.Request) {
	var req nicknameRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	out, err := h.sessionService.SetNickname(r.Context(), &session.SetNicknameInput{
		SessionID: chi.URLParam(r, "id"),
		Nickname:  req.Nickname,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSession(w, http.StatusOK, out)
}

// SelectTheme chooses the theme
func (h *SessionHandler) SelectTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	out, err := h.sessionService.SelectTheme(r.Context(), &session.SelectThemeInput{
		SessionID: chi.URLParam(r, "id"),
		ThemeID:   req.ThemeID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSession(w, http.StatusOK, out)
}

// SubmitAction sends a player action to the narrator
func (h *SessionHandler) SubmitAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	out, err := h.sessionService.SubmitAction(r.Context(), &session.SubmitActionInput{
		SessionID:       chi.URLParam(r, "id"),
		Text:            req.Text,
		SuggestionIndex: req.SuggestionIndex,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSession(w, http.StatusOK, out)
}

type stepFunc func(ctx context.Context, input *session.SessionInput) (*session.SessionOutput, error)

type rollFunc func(ctx context.Context, input *session.SessionInput) (*session.RollOutput, error)

func (h *SessionHandler) step(fn stepFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := fn(r.Context(), &session.SessionInput{SessionID: chi.URLParam(r, "id")})
		if err != nil {
			writeError(w, err)
			return
		}
		writeSession(w, http.StatusOK, out)
	}
}

func (h *SessionHandler) roll(fn rollFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := fn(r.Context(), &session.SessionInput{SessionID: chi.URLParam(r, "id")})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rollResponse{
			Faces:   out.Faces,
			Session: convertView(out.Session),
		})
	}
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && err != io.EOF {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body")
	}
	return nil
}

func writeSession(w http.ResponseWriter, status int, out *session.SessionOutput) {
	resp := convertView(out.Session)
	resp.NarratorFailed = out.NarratorFailed
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}

// writeError maps an error to its HTTP status. Internal details are not
// exposed for server-side failures.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	message := errors.GetMessage(err)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "code", code, "error", err)
		if code == errors.CodeInternal {
			message = "internal server error"
		}
	}

	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:    code.String(),
		Message: message,
		Reason:  string(errors.GetReason(err)),
	}})
}
