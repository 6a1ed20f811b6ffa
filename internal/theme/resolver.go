package theme

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Storage is the persisted key/value slot. Load returns an empty string when
// the key has never been written.
type Storage interface {
	Load(key string) (string, error)
	Save(key, value string) error
}

// Subscription is a registration handle. Release is safe to call more than
// once.
type Subscription interface {
	Release()
}

// HostSignal reports the host environment's color-scheme preference and
// notifies listeners when it changes.
type HostSignal interface {
	PrefersDark() bool
	Subscribe(fn func(prefersDark bool)) Subscription
}

// Presentation receives the resolved state every time it is (re)applied.
// Implementations must not call back into the Resolver.
type Presentation interface {
	Apply(State)
}

// PresentationFunc adapts a function to Presentation.
type PresentationFunc func(State)

// Apply calls f(s).
func (f PresentationFunc) Apply(s State) { f(s) }

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for recovered storage failures and
// corrupted stored values.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithKey overrides the persisted slot key.
func WithKey(key string) Option {
	return func(r *Resolver) {
		if key != "" {
			r.key = key
		}
	}
}

// WithInvalidStoredHook is called with the raw value when the persisted slot
// holds something other than a known preference.
func WithInvalidStoredHook(fn func(raw string)) Option {
	return func(r *Resolver) { r.onInvalidStored = fn }
}

// WithStorageErrorHook is called whenever a read or write of the slot fails.
// The error wraps ErrStorageUnavailable.
func WithStorageErrorHook(fn func(err error)) Option {
	return func(r *Resolver) { r.onStorageError = fn }
}

// Resolver owns one visitor's theme preference.
type Resolver struct {
	storage Storage
	host    HostSignal
	scope   Presentation
	logger  *zap.Logger
	key     string

	onInvalidStored func(raw string)
	onStorageError  func(err error)

	mu     sync.Mutex
	pref   Preference
	isDark bool
	sub    Subscription
	closed bool
}

// NewResolver creates a Resolver. It does nothing observable until
// Initialize is called.
func NewResolver(storage Storage, host HostSignal, scope Presentation, opts ...Option) *Resolver {
	r := &Resolver{
		storage: storage,
		host:    host,
		scope:   scope,
		logger:  zap.NewNop(),
		key:     DefaultKey,
		pref:    System,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Initialize reads the persisted preference, falling back to System when the
// slot is empty, invalid or unreadable, and applies the resolved state.
func (r *Resolver) Initialize() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pref = r.loadPreference()
	r.isDark = resolve(r.pref, r.hostPrefersDark())
	state := r.stateLocked()
	r.apply(state)
	return state
}

// SetPreference is the only mutator. Invalid values fail with
// ErrInvalidPreference and leave the current state unchanged. A failed write
// is logged and the new preference is kept in memory only.
func (r *Resolver) SetPreference(p Preference) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.setLocked(p)
}

// Toggle switches to the opposite of the currently resolved theme. It always
// produces Light or Dark, never System.
func (r *Resolver) Toggle() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	target := Dark
	if r.isDark {
		target = Light
	}
	state, _ := r.setLocked(target)
	return state
}

// Cycle steps through light, dark and system in that order.
func (r *Resolver) Cycle() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, _ := r.setLocked(r.pref.next())
	return state
}

// Subscribe registers for host color-scheme changes. While the preference is
// System each change re-resolves and re-applies the state; otherwise changes
// are ignored. Calling Subscribe again, or after Close, is a no-op.
func (r *Resolver) Subscribe() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sub != nil || r.closed || r.host == nil {
		return
	}
	r.sub = r.host.Subscribe(r.handleHostChange)
}

// Close releases the host subscription. It is safe to call more than once.
func (r *Resolver) Close() {
	r.mu.Lock()
	sub := r.sub
	r.sub = nil
	r.closed = true
	r.mu.Unlock()

	if sub != nil {
		sub.Release()
	}
}

// State returns the current resolved state.
func (r *Resolver) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateLocked()
}

// Preference returns the current preference.
func (r *Resolver) Preference() Preference {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pref
}

// IsDark returns the current resolved theme.
func (r *Resolver) IsDark() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isDark
}

func (r *Resolver) handleHostChange(prefersDark bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.pref != System {
		return
	}
	r.isDark = resolve(System, prefersDark)
	r.apply(r.stateLocked())
}

func (r *Resolver) setLocked(p Preference) (State, error) {
	if !p.Valid() {
		return r.stateLocked(), fmt.Errorf("%w: %q", ErrInvalidPreference, string(p))
	}

	isDark := resolve(p, r.hostPrefersDark())
	state := State{Preference: p, IsDark: isDark}
	r.apply(state)
	r.savePreference(p)

	r.pref = p
	r.isDark = isDark
	return state, nil
}

func (r *Resolver) loadPreference() Preference {
	if r.storage == nil {
		return System
	}

	raw, err := r.storage.Load(r.key)
	if err != nil {
		r.storageFailed("read", err)
		return System
	}
	if raw == "" {
		return System
	}

	p, err := ParsePreference(raw)
	if err != nil {
		r.logger.Warn("ignoring corrupted theme preference",
			zap.String("key", r.key),
			zap.String("value", raw),
		)
		if r.onInvalidStored != nil {
			r.onInvalidStored(raw)
		}
		return System
	}
	return p
}

func (r *Resolver) savePreference(p Preference) {
	if r.storage == nil {
		return
	}
	if err := r.storage.Save(r.key, string(p)); err != nil {
		r.storageFailed("write", err)
	}
}

func (r *Resolver) storageFailed(op string, err error) {
	wrapped := fmt.Errorf("%w: %s %q: %v", ErrStorageUnavailable, op, r.key, err)
	r.logger.Warn("theme storage unavailable",
		zap.String("op", op),
		zap.String("key", r.key),
		zap.Error(err),
	)
	if r.onStorageError != nil {
		r.onStorageError(wrapped)
	}
}

func (r *Resolver) hostPrefersDark() bool {
	if r.host == nil {
		return false
	}
	return r.host.PrefersDark()
}

func (r *Resolver) apply(s State) {
	if r.scope != nil {
		r.scope.Apply(s)
	}
}

func (r *Resolver) stateLocked() State {
	return State{Preference: r.pref, IsDark: r.isDark}
}
