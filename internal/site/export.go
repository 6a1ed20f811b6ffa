package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ziadkadry99/serviqo/internal/content"
	"github.com/ziadkadry99/serviqo/internal/progress"
	"github.com/ziadkadry99/serviqo/internal/theme"
)

// Exporter writes a static copy of the site. Static pages resolve the theme
// in the browser from local storage and the color-scheme media query.
type Exporter struct {
	Renderer   *Renderer
	OutputDir  string
	StorageKey string

	// AssetsDir is copied into the output, limited to files matching
	// AssetPatterns (doublestar syntax, relative to AssetsDir).
	AssetsDir     string
	AssetPatterns []string

	Reporter progress.Reporter
}

// Export renders the page and assets. It returns the number of files written.
func (e *Exporter) Export(site *content.Site) (int, error) {
	reporter := e.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	extra, err := e.matchAssets()
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Join(e.OutputDir, "assets"), 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	total := 3 + len(extra)
	reporter.Start(total)
	defer reporter.Finish()
	written := 0

	page, err := os.Create(filepath.Join(e.OutputDir, "index.html"))
	if err != nil {
		return written, err
	}
	// The server-side default is light; the head script corrects it before
	// first paint.
	state := theme.State{Preference: theme.System}
	renderErr := e.Renderer.Render(page, site, state, ViewFor(state), Options{
		StorageKey: e.StorageKey,
		AssetBase:  "assets/",
	})
	if closeErr := page.Close(); renderErr == nil {
		renderErr = closeErr
	}
	if renderErr != nil {
		return written, fmt.Errorf("writing index.html: %w", renderErr)
	}
	written++
	reporter.Update(written, "index.html")

	assets := []struct{ name, body string }{
		{"assets/style.css", cssContent},
		{"assets/script.js", jsContent},
	}
	for _, a := range assets {
		if err := os.WriteFile(filepath.Join(e.OutputDir, filepath.FromSlash(a.name)), []byte(a.body), 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", a.name, err)
		}
		written++
		reporter.Update(written, a.name)
	}

	for _, rel := range extra {
		if err := copyFile(filepath.Join(e.AssetsDir, filepath.FromSlash(rel)), filepath.Join(e.OutputDir, filepath.FromSlash(rel))); err != nil {
			return written, fmt.Errorf("copying %s: %w", rel, err)
		}
		written++
		reporter.Update(written, rel)
	}

	return written, nil
}

// matchAssets returns slash-separated paths under AssetsDir matching any
// pattern, sorted and de-duplicated.
func (e *Exporter) matchAssets() ([]string, error) {
	if e.AssetsDir == "" {
		return nil, nil
	}
	if _, err := os.Stat(e.AssetsDir); os.IsNotExist(err) {
		return nil, nil
	}
	patterns := e.AssetPatterns
	if len(patterns) == 0 {
		patterns = []string{"**/*"}
	}

	fsys := os.DirFS(e.AssetsDir)
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid asset pattern %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
