// Package themeapi exposes the theme resolver to browsers: JSON endpoints for
// one-shot reads and changes, and a websocket that keeps a resolver alive for
// the page's lifetime and forwards host color-scheme changes to it.
package themeapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/ziadkadry99/serviqo/internal/activity"
	"github.com/ziadkadry99/serviqo/internal/hostsignal"
	"github.com/ziadkadry99/serviqo/internal/theme"
	"github.com/ziadkadry99/serviqo/internal/visitor"
	"go.uber.org/zap"
)

// StateMessage is the wire form of a resolved theme.
type StateMessage struct {
	Type        string           `json:"type,omitempty"`
	Preference  theme.Preference `json:"preference"`
	IsDark      bool             `json:"is_dark"`
	ColorScheme string           `json:"color_scheme"`
	ThemeColor  string           `json:"theme_color"`
}

// NewStateMessage converts a state for the wire.
func NewStateMessage(s theme.State) StateMessage {
	return StateMessage{
		Preference:  s.Preference,
		IsDark:      s.IsDark,
		ColorScheme: s.ColorScheme(),
		ThemeColor:  s.ThemeColor(),
	}
}

type preferenceRequest struct {
	Preference string `json:"preference"`
}

// API serves the theme endpoints.
type API struct {
	sessions *Sessions
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// New returns an API. Unless allowAllOrigins is set, websocket upgrades are
// limited to same-origin pages.
func New(sessions *Sessions, logger *zap.Logger, allowAllOrigins bool) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &API{sessions: sessions, logger: logger}
	if allowAllOrigins {
		a.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return a
}

// RegisterRoutes mounts the JSON theme endpoints on the given router.
func RegisterRoutes(r chi.Router, a *API) {
	r.Route("/api/theme", func(r chi.Router) {
		r.Get("/", a.handleGet)
		r.Put("/", a.handleSet)
		r.Post("/toggle", a.handleToggle)
		r.Post("/cycle", a.handleCycle)
	})
}

// RegisterSocket mounts the theme websocket. It lives for the page's
// lifetime, so it must not sit behind a request timeout.
func RegisterSocket(r chi.Router, a *API) {
	r.Get("/ws/theme", a.handleSocket)
}

// open initializes a request-scoped resolver. The host signal is seeded from
// the request's color-scheme client hint.
func (a *API) open(r *http.Request) (*theme.Resolver, *activity.Recorder) {
	host := hostsignal.New(hostsignal.FromRequest(r))
	resolver, rec := a.sessions.Open(r.Context(), visitor.FromContext(r.Context()), activity.SourceAPI, host, nil)
	resolver.Initialize()
	return resolver, rec
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	resolver, _ := a.open(r)
	defer resolver.Close()

	writeJSON(w, http.StatusOK, NewStateMessage(resolver.State()))
}

func (a *API) handleSet(w http.ResponseWriter, r *http.Request) {
	var req preferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	resolver, rec := a.open(r)
	defer resolver.Close()

	previous := resolver.Preference()
	state, err := resolver.SetPreference(theme.Preference(req.Preference))
	if errors.Is(err, theme.ErrInvalidPreference) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	recordChange(r, rec, previous, state, "set")

	writeJSON(w, http.StatusOK, NewStateMessage(state))
}

func (a *API) handleToggle(w http.ResponseWriter, r *http.Request) {
	resolver, rec := a.open(r)
	defer resolver.Close()

	previous := resolver.Preference()
	state := resolver.Toggle()
	recordChange(r, rec, previous, state, "toggle")

	writeJSON(w, http.StatusOK, NewStateMessage(state))
}

func (a *API) handleCycle(w http.ResponseWriter, r *http.Request) {
	resolver, rec := a.open(r)
	defer resolver.Close()

	previous := resolver.Preference()
	state := resolver.Cycle()
	recordChange(r, rec, previous, state, "cycle")

	writeJSON(w, http.StatusOK, NewStateMessage(state))
}

func recordChange(r *http.Request, rec *activity.Recorder, previous theme.Preference, state theme.State, op string) {
	if previous == state.Preference {
		return
	}
	rec.Changed(r.Context(), string(previous), string(state.Preference), op)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
