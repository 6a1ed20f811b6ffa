package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	values   map[string]string
	readErr  error
	writeErr error
	writes   int
}

func newMemStorage() *memStorage {
	return &memStorage{values: map[string]string{}}
}

func (m *memStorage) Load(key string) (string, error) {
	if m.readErr != nil {
		return "", m.readErr
	}
	return m.values[key], nil
}

func (m *memStorage) Save(key, value string) error {
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.values[key] = value
	return nil
}

type fakeHost struct {
	dark      bool
	listeners map[int]func(bool)
	nextID    int
}

func newFakeHost(dark bool) *fakeHost {
	return &fakeHost{dark: dark, listeners: map[int]func(bool){}}
}

func (h *fakeHost) PrefersDark() bool { return h.dark }

func (h *fakeHost) Subscribe(fn func(bool)) Subscription {
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return releaseFunc(func() { delete(h.listeners, id) })
}

func (h *fakeHost) flip(dark bool) {
	h.dark = dark
	for _, fn := range h.listeners {
		fn(dark)
	}
}

type releaseFunc func()

func (f releaseFunc) Release() { f() }

type recorder struct {
	applied []State
}

func (r *recorder) Apply(s State) { r.applied = append(r.applied, s) }

func (r *recorder) last() State {
	if len(r.applied) == 0 {
		return State{}
	}
	return r.applied[len(r.applied)-1]
}

func TestInitializeTruthTable(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		host   bool
		want   State
	}{
		{name: "light", stored: "light", host: true, want: State{Preference: Light, IsDark: false}},
		{name: "dark", stored: "dark", host: false, want: State{Preference: Dark, IsDark: true}},
		{name: "system host dark", stored: "system", host: true, want: State{Preference: System, IsDark: true}},
		{name: "system host light", stored: "system", host: false, want: State{Preference: System, IsDark: false}},
		{name: "empty slot", stored: "", host: true, want: State{Preference: System, IsDark: true}},
		{name: "corrupted slot", stored: "sepia", host: false, want: State{Preference: System, IsDark: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStorage()
			if tt.stored != "" {
				store.values[DefaultKey] = tt.stored
			}
			scope := &recorder{}
			r := NewResolver(store, newFakeHost(tt.host), scope)

			got := r.Initialize()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.IsDark, r.IsDark())
			assert.Equal(t, tt.want, scope.last())
		})
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	store := newMemStorage()
	store.values[DefaultKey] = "dark"
	scope := &recorder{}
	r := NewResolver(store, newFakeHost(false), scope)

	first := r.Initialize()
	second := r.Initialize()

	assert.Equal(t, first, second)
	require.Len(t, scope.applied, 2)
	assert.Equal(t, scope.applied[0], scope.applied[1])
	assert.Zero(t, store.writes, "initialize must not write the slot")
}

func TestSetPreferenceIsIdempotent(t *testing.T) {
	store := newMemStorage()
	scope := &recorder{}
	r := NewResolver(store, newFakeHost(true), scope)
	r.Initialize()

	first, err := r.SetPreference(Light)
	require.NoError(t, err)
	second, err := r.SetPreference(Light)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, State{Preference: Light, IsDark: false}, r.State())
	assert.Equal(t, "light", store.values[DefaultKey])
}

func TestSetPreferencePersistsAcrossSessions(t *testing.T) {
	store := newMemStorage()
	host := newFakeHost(false)

	r := NewResolver(store, host, nil)
	r.Initialize()
	_, err := r.SetPreference(Dark)
	require.NoError(t, err)
	r.Close()

	fresh := NewResolver(store, host, nil)
	state := fresh.Initialize()
	assert.Equal(t, Dark, state.Preference)
	assert.True(t, state.IsDark)
}

func TestSetPreferenceRejectsUnknownValue(t *testing.T) {
	store := newMemStorage()
	store.values[DefaultKey] = "dark"
	scope := &recorder{}
	r := NewResolver(store, newFakeHost(false), scope)
	before := r.Initialize()
	applied := len(scope.applied)

	got, err := r.SetPreference(Preference("sepia"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPreference))
	assert.Contains(t, err.Error(), "sepia")

	assert.Equal(t, before, got)
	assert.Equal(t, before, r.State())
	assert.Equal(t, "dark", store.values[DefaultKey])
	assert.Len(t, scope.applied, applied, "invalid preference must not reapply")
}

func TestToggleNeverProducesSystem(t *testing.T) {
	for _, start := range []Preference{Light, Dark, System} {
		for _, hostDark := range []bool{false, true} {
			store := newMemStorage()
			store.values[DefaultKey] = string(start)
			r := NewResolver(store, newFakeHost(hostDark), nil)
			before := r.Initialize()

			got := r.Toggle()
			assert.NotEqual(t, System, got.Preference, "start=%s host=%v", start, hostDark)
			assert.Equal(t, !before.IsDark, got.IsDark, "start=%s host=%v", start, hostDark)
			assert.Equal(t, string(got.Preference), store.values[DefaultKey])
		}
	}
}

func TestCycleOrder(t *testing.T) {
	store := newMemStorage()
	store.values[DefaultKey] = "light"
	r := NewResolver(store, newFakeHost(true), nil)
	r.Initialize()

	assert.Equal(t, State{Preference: Dark, IsDark: true}, r.Cycle())
	assert.Equal(t, State{Preference: System, IsDark: true}, r.Cycle())
	assert.Equal(t, State{Preference: Light, IsDark: false}, r.Cycle())
}

func TestHostChangeFollowedWhileSystem(t *testing.T) {
	store := newMemStorage()
	host := newFakeHost(false)
	scope := &recorder{}
	r := NewResolver(store, host, scope)
	r.Initialize()
	r.Subscribe()
	defer r.Close()

	require.False(t, r.IsDark())
	host.flip(true)

	assert.True(t, r.IsDark())
	assert.Equal(t, State{Preference: System, IsDark: true}, scope.last())
	assert.Zero(t, store.writes, "host changes must not touch the slot")
	assert.Empty(t, store.values[DefaultKey])
}

func TestHostChangeIgnoredWhenExplicit(t *testing.T) {
	for _, p := range []Preference{Light, Dark} {
		t.Run(string(p), func(t *testing.T) {
			store := newMemStorage()
			store.values[DefaultKey] = string(p)
			host := newFakeHost(p == Light)
			scope := &recorder{}
			r := NewResolver(store, host, scope)
			before := r.Initialize()
			r.Subscribe()
			defer r.Close()
			applied := len(scope.applied)

			host.flip(!host.dark)

			assert.Equal(t, before, r.State())
			assert.Len(t, scope.applied, applied)
		})
	}
}

func TestCloseReleasesSubscription(t *testing.T) {
	host := newFakeHost(false)
	r := NewResolver(newMemStorage(), host, nil)
	r.Initialize()
	r.Subscribe()
	r.Subscribe()
	require.Len(t, host.listeners, 1)

	r.Close()
	r.Close()
	assert.Empty(t, host.listeners)

	r.Subscribe()
	assert.Empty(t, host.listeners, "subscribe after close must not register")
}

func TestStorageReadFailureFallsBackToSystem(t *testing.T) {
	store := newMemStorage()
	store.readErr = errors.New("disk gone")
	var hooked error
	r := NewResolver(store, newFakeHost(true), nil, WithStorageErrorHook(func(err error) { hooked = err }))

	state := r.Initialize()
	assert.Equal(t, State{Preference: System, IsDark: true}, state)
	require.Error(t, hooked)
	assert.True(t, errors.Is(hooked, ErrStorageUnavailable))
}

func TestStorageWriteFailureKeepsMemoryState(t *testing.T) {
	store := newMemStorage()
	store.writeErr = errors.New("read-only")
	r := NewResolver(store, newFakeHost(false), nil)
	r.Initialize()

	state, err := r.SetPreference(Dark)
	require.NoError(t, err)
	assert.Equal(t, State{Preference: Dark, IsDark: true}, state)
	assert.Equal(t, Dark, r.Preference())
}

func TestInvalidStoredHook(t *testing.T) {
	store := newMemStorage()
	store.values["ui-theme"] = "neon"
	var raw string
	r := NewResolver(store, newFakeHost(false), nil,
		WithKey("ui-theme"),
		WithInvalidStoredHook(func(v string) { raw = v }),
	)

	r.Initialize()
	assert.Equal(t, "neon", raw)
	assert.Equal(t, System, r.Preference())
}

func TestPaddedStoredValueTreatedAsCorrupted(t *testing.T) {
	for _, stored := range []string{" dark", "dark\n", "\tlight "} {
		t.Run(stored, func(t *testing.T) {
			store := newMemStorage()
			store.values[DefaultKey] = stored
			var raw string
			r := NewResolver(store, newFakeHost(false), nil,
				WithInvalidStoredHook(func(v string) { raw = v }),
			)

			got := r.Initialize()
			assert.Equal(t, State{Preference: System, IsDark: false}, got)
			assert.Equal(t, stored, raw)
		})
	}
}

func TestExampleScenario(t *testing.T) {
	store := newMemStorage()
	r := NewResolver(store, newFakeHost(true), nil)

	state := r.Initialize()
	assert.Equal(t, System, state.Preference)
	assert.True(t, state.IsDark)

	state, err := r.SetPreference(Light)
	require.NoError(t, err)
	assert.False(t, state.IsDark)
	assert.Equal(t, "light", store.values[DefaultKey])
}

func TestNilCollaborators(t *testing.T) {
	r := NewResolver(nil, nil, nil)
	assert.Equal(t, State{Preference: System}, r.Initialize())
	r.Subscribe()
	assert.Equal(t, State{Preference: Dark, IsDark: true}, r.Toggle())
	r.Close()
}
