// Package theme owns the visitor's theme preference and resolves it into the
// light/dark state the page is rendered with.
//
// A Resolver is created per visitor session from three collaborators: a
// Storage holding the persisted preference slot, a HostSignal reporting the
// browser's prefers-color-scheme value, and a Presentation that receives the
// resolved state whenever it changes.
//
//	r := theme.NewResolver(slot, host, scope, theme.WithLogger(logger))
//	defer r.Close()
//	state := r.Initialize()
//	r.Subscribe()
//
// Consumers read the resolved State and pass IsDark down explicitly; only
// SetPreference, Toggle and Cycle change the preference.
package theme
