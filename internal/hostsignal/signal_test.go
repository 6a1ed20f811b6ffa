package hostsignal

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ziadkadry99/serviqo/internal/theme"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSetNotifiesInRegistrationOrder(t *testing.T) {
	s := New(false)
	var order []string
	s.Subscribe(func(bool) { order = append(order, "first") })
	s.Subscribe(func(bool) { order = append(order, "second") })

	s.Set(true)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.True(t, s.PrefersDark())
}

func TestSetWithoutChangeDoesNotNotify(t *testing.T) {
	s := New(true)
	calls := 0
	s.Subscribe(func(bool) { calls++ })

	s.Set(true)
	assert.Zero(t, calls)

	s.Set(false)
	s.Set(false)
	assert.Equal(t, 1, calls)
}

func TestReleaseRemovesListener(t *testing.T) {
	s := New(false)
	calls := 0
	sub := s.Subscribe(func(bool) { calls++ })
	other := s.Subscribe(func(bool) {})
	require.Equal(t, 2, s.Listeners())

	sub.Release()
	sub.Release()
	assert.Equal(t, 1, s.Listeners())

	s.Set(true)
	assert.Zero(t, calls)

	other.Release()
	assert.Zero(t, s.Listeners())
}

func TestListenerMayQuerySignal(t *testing.T) {
	s := New(false)
	var seen bool
	s.Subscribe(func(bool) { seen = s.PrefersDark() })

	s.Set(true)
	assert.True(t, seen)
}

func TestConcurrentSetsAreSerialized(t *testing.T) {
	s := New(false)
	var (
		mu       sync.Mutex
		inFlight int
		overlap  bool
	)
	s.Subscribe(func(bool) {
		mu.Lock()
		inFlight++
		if inFlight > 1 {
			overlap = true
		}
		mu.Unlock()

		mu.Lock()
		inFlight--
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(dark bool) {
			defer wg.Done()
			s.Set(dark)
		}(i%2 == 0)
	}
	wg.Wait()
	assert.False(t, overlap)
}

func TestResolverFollowsSignal(t *testing.T) {
	s := New(false)
	var applied []theme.State
	r := theme.NewResolver(nil, s, theme.PresentationFunc(func(st theme.State) {
		applied = append(applied, st)
	}))
	r.Initialize()
	r.Subscribe()

	s.Set(true)
	assert.True(t, r.IsDark())
	require.Len(t, applied, 2)
	assert.Equal(t, theme.State{Preference: theme.System, IsDark: true}, applied[1])

	r.Close()
	assert.Zero(t, s.Listeners())
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{header: "dark", want: true},
		{header: `"dark"`, want: true},
		{header: "Dark", want: true},
		{header: "light", want: false},
		{header: "", want: false},
		{header: "no-preference", want: false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set(ClientHintHeader, tt.header)
		}
		assert.Equal(t, tt.want, FromRequest(req), "header %q", tt.header)
	}
}

func TestAdvertiseHints(t *testing.T) {
	h := AdvertiseHints(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, ClientHintHeader, w.Header().Get("Accept-CH"))
	assert.Equal(t, ClientHintHeader, w.Header().Get("Critical-CH"))
	assert.Contains(t, w.Header().Values("Vary"), ClientHintHeader)
}
