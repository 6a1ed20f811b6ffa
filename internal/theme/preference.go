package theme

import (
	"errors"
	"fmt"
)

// Preference is the visitor's stored theme choice.
type Preference string

const (
	Light  Preference = "light"
	Dark   Preference = "dark"
	System Preference = "system"
)

// DefaultKey is the persisted slot the resolver reads and writes.
const DefaultKey = "theme"

// Advisory chrome colors published alongside the resolved theme.
const (
	DarkThemeColor  = "#111827"
	LightThemeColor = "#ffffff"
)

var (
	// ErrInvalidPreference is returned when a value outside light, dark and
	// system is passed to the resolver.
	ErrInvalidPreference = errors.New("invalid theme preference")

	// ErrStorageUnavailable marks a failed read or write of the persisted
	// slot. The resolver recovers from it and never returns it to callers.
	ErrStorageUnavailable = errors.New("theme storage unavailable")
)

// cycleOrder is the order the theme switch control steps through.
var cycleOrder = [...]Preference{Light, Dark, System}

// Valid reports whether p is one of the three known preferences.
func (p Preference) Valid() bool {
	switch p {
	case Light, Dark, System:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (p Preference) String() string { return string(p) }

// ParsePreference converts a raw value into a Preference. Only the exact
// strings light, dark and system are accepted.
func ParsePreference(raw string) (Preference, error) {
	p := Preference(raw)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPreference, raw)
	}
	return p, nil
}

// next returns the preference following p in the switch cycle.
func (p Preference) next() Preference {
	for i, v := range cycleOrder {
		if v == p {
			return cycleOrder[(i+1)%len(cycleOrder)]
		}
	}
	return cycleOrder[0]
}

// State is the resolved theme published to consumers.
type State struct {
	Preference Preference `json:"preference"`
	IsDark     bool       `json:"is_dark"`
}

// ColorScheme returns the effective scheme, "dark" or "light".
func (s State) ColorScheme() string {
	if s.IsDark {
		return string(Dark)
	}
	return string(Light)
}

// ThemeColor returns the advisory browser chrome color.
func (s State) ThemeColor() string {
	if s.IsDark {
		return DarkThemeColor
	}
	return LightThemeColor
}

// resolve is the pure function from (preference, host signal) to IsDark.
func resolve(p Preference, hostPrefersDark bool) bool {
	switch p {
	case Dark:
		return true
	case System:
		return hostPrefersDark
	default:
		return false
	}
}
