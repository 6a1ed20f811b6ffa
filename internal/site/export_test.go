package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/serviqo/internal/content"
)

type countingReporter struct {
	total    int
	messages []string
	finished bool
}

func (r *countingReporter) Start(total int) { r.total = total }
func (r *countingReporter) Update(_ int, msg string) { r.messages = append(r.messages, msg) }
func (r *countingReporter) Finish() { r.finished = true }

func writeAsset(t *testing.T, dir, rel string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(rel), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestExport(t *testing.T) {
	assets := t.TempDir()
	writeAsset(t, assets, "images/logo.png")
	writeAsset(t, assets, "images/team/founder.jpg")
	writeAsset(t, assets, "pdfs/client-acquisition-engine.pdf")
	writeAsset(t, assets, "notes.txt")

	out := filepath.Join(t.TempDir(), "public")
	reporter := &countingReporter{}
	e := &Exporter{
		Renderer:      newTestRenderer(t),
		OutputDir:     out,
		StorageKey:    "theme",
		AssetsDir:     assets,
		AssetPatterns: []string{"images/**", "pdfs/*.pdf", "images/*.png"},
		Reporter:      reporter,
	}

	n, err := e.Export(content.Default())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != 6 {
		t.Errorf("wrote %d files, want 6", n)
	}
	if reporter.total != 6 || len(reporter.messages) != 6 || !reporter.finished {
		t.Errorf("reporter = %+v", reporter)
	}

	for _, rel := range []string{
		"index.html",
		"assets/style.css",
		"assets/script.js",
		"images/logo.png",
		"images/team/founder.jpg",
		"pdfs/client-acquisition-engine.pdf",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "notes.txt")); !os.IsNotExist(err) {
		t.Error("notes.txt should not be exported")
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), `href="assets/style.css"`) {
		t.Error("index.html should reference relative assets")
	}
	if !strings.Contains(string(index), "matchMedia") {
		t.Error("index.html missing the head theme script")
	}
}

func TestExportWithoutAssetsDir(t *testing.T) {
	out := t.TempDir()
	e := &Exporter{Renderer: newTestRenderer(t), OutputDir: out, AssetsDir: filepath.Join(out, "missing")}

	n, err := e.Export(content.Default())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != 3 {
		t.Errorf("wrote %d files, want 3", n)
	}
}

func TestExportRejectsBadPattern(t *testing.T) {
	assets := t.TempDir()
	e := &Exporter{
		Renderer:      newTestRenderer(t),
		OutputDir:     t.TempDir(),
		AssetsDir:     assets,
		AssetPatterns: []string{"images/[unclosed"},
	}
	if _, err := e.Export(content.Default()); err == nil {
		t.Error("expected an error for an invalid pattern")
	}
}
