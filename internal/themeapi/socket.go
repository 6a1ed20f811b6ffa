package themeapi

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ziadkadry99/serviqo/internal/activity"
	"github.com/ziadkadry99/serviqo/internal/hostsignal"
	"github.com/ziadkadry99/serviqo/internal/theme"
	"github.com/ziadkadry99/serviqo/internal/visitor"
	"go.uber.org/zap"
)

const writeWait = 5 * time.Second

// clientMessage is the incoming websocket message format.
type clientMessage struct {
	Type        string `json:"type"` // "hello", "host", "set", "toggle" or "cycle"
	PrefersDark bool   `json:"prefers_dark"`
	Preference  string `json:"preference"`
}

// errorMessage is sent when a client message cannot be handled.
type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// socket is one page's live theme session.
type socket struct {
	conn   *websocket.Conn
	logger *zap.Logger

	writeMu sync.Mutex

	host     *hostsignal.Signal
	resolver *theme.Resolver
	rec      *activity.Recorder
}

// Apply implements theme.Presentation by pushing the state to the page.
func (s *socket) Apply(state theme.State) {
	msg := NewStateMessage(state)
	msg.Type = "theme"
	s.write(msg)
}

func (s *socket) sendError(message string) {
	s.write(errorMessage{Type: "error", Error: message})
}

func (s *socket) write(v any) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(v); err != nil {
		s.logger.Debug("theme socket write", zap.Error(err))
	}
}

func (a *API) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.logger.Warn("theme socket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	clientID := visitor.FromContext(r.Context())
	s := &socket{conn: conn, logger: a.logger.With(zap.String("client_id", clientID))}
	defer func() {
		if s.resolver != nil {
			s.resolver.Close()
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("theme socket read", zap.Error(err))
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("invalid message format")
			continue
		}

		if msg.Type == "hello" {
			if s.resolver != nil {
				s.sendError("session already initialized")
				continue
			}
			s.host = hostsignal.New(msg.PrefersDark)
			s.resolver, s.rec = a.sessions.Open(r.Context(), clientID, activity.SourceSocket, s.host, s)
			s.resolver.Initialize()
			s.resolver.Subscribe()
			continue
		}

		if s.resolver == nil {
			s.sendError("send hello first")
			continue
		}

		switch msg.Type {
		case "host":
			s.host.Set(msg.PrefersDark)
		case "set":
			previous := s.resolver.Preference()
			state, err := s.resolver.SetPreference(theme.Preference(msg.Preference))
			if err != nil {
				s.sendError(err.Error())
				continue
			}
			s.recordChange(r, previous, state, "set")
		case "toggle":
			previous := s.resolver.Preference()
			s.recordChange(r, previous, s.resolver.Toggle(), "toggle")
		case "cycle":
			previous := s.resolver.Preference()
			s.recordChange(r, previous, s.resolver.Cycle(), "cycle")
		default:
			s.sendError("unknown message type: " + msg.Type)
		}
	}
}

func (s *socket) recordChange(r *http.Request, previous theme.Preference, state theme.State, op string) {
	if previous == state.Preference {
		return
	}
	s.rec.Changed(r.Context(), string(previous), string(state.Preference), op)
}
