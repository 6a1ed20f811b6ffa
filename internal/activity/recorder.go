package activity

import (
	"context"

	"go.uber.org/zap"
)

// Recorder logs theme activity for one visitor and source. Write failures
// are logged and dropped so they never affect the page.
type Recorder struct {
	store    *Store
	logger   *zap.Logger
	clientID string
	source   Source
}

// NewRecorder returns a Recorder. A nil store yields a Recorder that only
// logs.
func NewRecorder(store *Store, logger *zap.Logger, clientID string, source Source) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{store: store, logger: logger, clientID: clientID, source: source}
}

// Changed records a preference change.
func (r *Recorder) Changed(ctx context.Context, previous, next, detail string) {
	r.record(ctx, Entry{
		Action:        ActionPreferenceChanged,
		PreviousValue: previous,
		NewValue:      next,
		Detail:        detail,
	})
}

// Corrupted records a stored value that was not a known preference.
func (r *Recorder) Corrupted(ctx context.Context, raw string) {
	r.record(ctx, Entry{Action: ActionPreferenceCorrupted, PreviousValue: raw})
}

// StorageFailed records a failed read or write of the preference slot.
func (r *Recorder) StorageFailed(ctx context.Context, err error) {
	r.record(ctx, Entry{Action: ActionStorageUnavailable, Detail: err.Error()})
}

func (r *Recorder) record(ctx context.Context, e Entry) {
	if r.store == nil {
		return
	}
	e.ClientID = r.clientID
	e.Source = r.source
	if err := r.store.Log(ctx, e); err != nil {
		r.logger.Warn("recording theme activity",
			zap.String("action", string(e.Action)),
			zap.String("client_id", r.clientID),
			zap.Error(err),
		)
	}
}
