package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const minimal = `
name: Acme Advisory
booking_link: https://cal.example.com/acme
hero:
  title: Hello
faq:
  categories:
    - id: general
      name: General
      items:
        - question: Why?
          answer: Because **reasons**.
`

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestDefaultIsValid(t *testing.T) {
	s := Default()

	assert.Equal(t, "Serviqo", s.Name)
	assert.NoError(t, s.Validate())
	assert.Len(t, s.Systems.Items, 3)
	assert.NotEmpty(t, s.FAQ.Categories)
	assert.NotEmpty(t, s.CaseStudies.Items)
	assert.True(t, strings.HasPrefix(s.BookingLink, "https://"))
}

func TestSystemSlug(t *testing.T) {
	assert.Equal(t, "client-acquisition-engine", System{Title: "Client  Acquisition Engine"}.Slug())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	writeFile(t, path, minimal)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme Advisory", s.Name)
	assert.Equal(t, "general", s.FAQ.Categories[0].ID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte(minimal + "heroo:\n  title: typo\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		site Site
		want string
	}{
		{"missing name", Site{BookingLink: "https://x.example"}, "name is required"},
		{"missing link", Site{Name: "x"}, "booking_link"},
		{"bad scheme", Site{Name: "x", BookingLink: "javascript:alert(1)"}, "scheme"},
		{"relative link", Site{Name: "x", BookingLink: "/book"}, "scheme"},
		{"faq without id", Site{Name: "x", BookingLink: "https://x.example", FAQ: FAQ{Categories: []FAQCategory{{Name: "n"}}}}, "id is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.site.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSourceWithoutPathServesDefault(t *testing.T) {
	src, err := NewSource("", nil)
	require.NoError(t, err)

	assert.Equal(t, "Serviqo", src.Current().Name)
	assert.NoError(t, src.Reload())
	assert.NoError(t, src.Watch(context.Background()))
}

func TestSourceRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	writeFile(t, path, "name: [unterminated")

	_, err := NewSource(path, nil)
	assert.Error(t, err)
}

func TestSourceWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	writeFile(t, path, minimal)

	src, err := NewSource(path, nil)
	require.NoError(t, err)
	src.debounce = 20 * time.Millisecond

	reloaded := make(chan string, 4)
	src.OnReload(func(s *Site) { reloaded <- s.Name })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- src.Watch(ctx) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// The watcher registers asynchronously; keep rewriting until it sees one.
	updated := strings.Replace(minimal, "Acme Advisory", "Acme Legal", 1)
	assert.Eventually(t, func() bool {
		writeFile(t, path, updated)
		return src.Current().Name == "Acme Legal"
	}, 5*time.Second, 50*time.Millisecond)

	assert.Equal(t, "Acme Legal", <-reloaded)
}

func TestSourceWatchKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	writeFile(t, path, minimal)

	src, err := NewSource(path, nil)
	require.NoError(t, err)
	src.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- src.Watch(ctx) }()

	writeFile(t, path, "name: [broken")
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, "Acme Advisory", src.Current().Name)

	cancel()
	require.NoError(t, <-done)
}
