package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ziadkadry99/serviqo/internal/activity"
	"github.com/ziadkadry99/serviqo/internal/content"
	"github.com/ziadkadry99/serviqo/internal/hostsignal"
	"github.com/ziadkadry99/serviqo/internal/themeapi"
	"github.com/ziadkadry99/serviqo/internal/visitor"
	"go.uber.org/zap"
)

// Handler serves the live page and its assets.
type Handler struct {
	renderer *Renderer
	source   *content.Source
	sessions *themeapi.Sessions
	logger   *zap.Logger
}

// NewHandler returns a Handler.
func NewHandler(renderer *Renderer, source *content.Source, sessions *themeapi.Sessions, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{renderer: renderer, source: source, sessions: sessions, logger: logger}
}

// RegisterRoutes mounts the page and asset routes.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.handlePage)
	r.Get("/assets/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/assets/script.js", serveAsset("text/javascript; charset=utf-8", jsContent))
}

// handlePage resolves the visitor's theme from their stored preference and
// the request's color-scheme hint, then renders the page in that theme.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := visitor.FromContext(ctx)

	scope := NewScope()
	host := hostsignal.New(hostsignal.FromRequest(r))
	resolver, _ := h.sessions.Open(ctx, clientID, activity.SourcePage, host, scope)
	defer resolver.Close()
	state := resolver.Initialize()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	err := h.renderer.Render(w, h.source.Current(), state, scope.View(), Options{
		Live:       true,
		StorageKey: h.sessions.Key(),
	})
	if err != nil {
		h.logger.Error("rendering page", zap.String("client_id", clientID), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write([]byte(body))
	}
}
