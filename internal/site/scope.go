package site

import (
	"sync"

	"github.com/ziadkadry99/serviqo/internal/theme"
)

// ScopeView is what the page root and the browser chrome hint are rendered
// from.
type ScopeView struct {
	RootClass   string `json:"root_class"`
	ColorScheme string `json:"color_scheme"`
	ThemeColor  string `json:"theme_color"`
}

// ViewFor returns the scope values for a resolved state.
func ViewFor(s theme.State) ScopeView {
	return ScopeView{
		RootClass:   s.ColorScheme(),
		ColorScheme: s.ColorScheme(),
		ThemeColor:  s.ThemeColor(),
	}
}

// Scope is the presentation target of a server-side resolver. It records the
// last applied state so the page can be rendered from it.
type Scope struct {
	mu   sync.Mutex
	view ScopeView
}

// NewScope returns a Scope holding the light defaults.
func NewScope() *Scope {
	return &Scope{view: ViewFor(theme.State{Preference: theme.System})}
}

// Apply implements theme.Presentation.
func (s *Scope) Apply(state theme.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewFor(state)
}

// View returns the current scope values.
func (s *Scope) View() ScopeView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}
