package themeapi

import (
	"context"

	"github.com/ziadkadry99/serviqo/internal/activity"
	"github.com/ziadkadry99/serviqo/internal/prefs"
	"github.com/ziadkadry99/serviqo/internal/theme"
	"go.uber.org/zap"
)

// Sessions builds per-visitor resolvers backed by the preference store and
// reporting diagnostics to the activity log.
type Sessions struct {
	prefs    *prefs.Store
	activity *activity.Store
	logger   *zap.Logger
	key      string
}

// NewSessions returns a Sessions. Either store may be nil; a nil preference
// store leaves resolvers without persistence.
func NewSessions(prefStore *prefs.Store, activityStore *activity.Store, logger *zap.Logger, key string) *Sessions {
	if logger == nil {
		logger = zap.NewNop()
	}
	if key == "" {
		key = theme.DefaultKey
	}
	return &Sessions{prefs: prefStore, activity: activityStore, logger: logger, key: key}
}

// Key returns the preference slot key.
func (s *Sessions) Key() string { return s.key }

// Open returns a resolver for one visitor plus the recorder its changes
// should be logged through. The resolver is not yet initialized; callers
// must Close it.
func (s *Sessions) Open(ctx context.Context, clientID string, source activity.Source, host theme.HostSignal, scope theme.Presentation) (*theme.Resolver, *activity.Recorder) {
	logger := s.logger.With(zap.String("client_id", clientID), zap.String("source", string(source)))
	rec := activity.NewRecorder(s.activity, logger, clientID, source)

	var storage theme.Storage
	if s.prefs != nil && clientID != "" {
		storage = s.prefs.Slot(ctx, clientID)
	}

	r := theme.NewResolver(storage, host, scope,
		theme.WithLogger(logger),
		theme.WithKey(s.key),
		theme.WithInvalidStoredHook(func(raw string) { rec.Corrupted(ctx, raw) }),
		theme.WithStorageErrorHook(func(err error) { rec.StorageFailed(ctx, err) }),
	)
	return r, rec
}
