package site

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ziadkadry99/serviqo/internal/content"
	"github.com/ziadkadry99/serviqo/internal/theme"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestPageCarriesIsDarkToEverySection(t *testing.T) {
	r := newTestRenderer(t)

	for _, state := range []theme.State{
		{Preference: theme.Dark, IsDark: true},
		{Preference: theme.Light, IsDark: false},
		{Preference: theme.System, IsDark: true},
	} {
		page, err := r.Page(content.Default(), state, ViewFor(state), Options{})
		if err != nil {
			t.Fatalf("Page: %v", err)
		}

		v := reflect.ValueOf(*page)
		sections := 0
		for i := 0; i < v.NumField(); i++ {
			field := v.Field(i)
			if field.Kind() != reflect.Struct || v.Type().Field(i).Name == "Theme" {
				continue
			}
			isDark := field.FieldByName("IsDark")
			if !isDark.IsValid() || isDark.Kind() != reflect.Bool {
				continue
			}
			sections++
			if isDark.Bool() != state.IsDark {
				t.Errorf("%s.IsDark = %v, want %v", v.Type().Field(i).Name, isDark.Bool(), state.IsDark)
			}
		}
		if sections != 11 {
			t.Errorf("found %d sections with IsDark, want 11", sections)
		}
	}
}

func TestRenderAppliesScopeToRoot(t *testing.T) {
	r := newTestRenderer(t)
	state := theme.State{Preference: theme.Dark, IsDark: true}

	var buf bytes.Buffer
	if err := r.Render(&buf, content.Default(), state, ViewFor(state), Options{Live: true}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`<html lang="en" class="dark"`,
		`--color-scheme: dark`,
		`data-theme-preference="dark"`,
		`<meta name="theme-color" content="#111827">`,
		`data-dark="true"`,
		`id="newsletter"`,
		`src="/assets/script.js"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, `data-dark="false"`) {
		t.Error("a section rendered as light on a dark page")
	}
	if strings.Contains(out, "localStorage") {
		t.Error("live pages should not resolve the theme from browser storage")
	}
}

func TestRenderStaticPageResolvesInBrowser(t *testing.T) {
	r := newTestRenderer(t)
	state := theme.State{Preference: theme.System}

	var buf bytes.Buffer
	err := r.Render(&buf, content.Default(), state, ViewFor(state), Options{StorageKey: "ui-theme", AssetBase: "assets/"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `storageKey: "ui-theme"`) {
		t.Error("storage key not passed to the page script")
	}
	if !strings.Contains(out, "localStorage.getItem(c.storageKey)") {
		t.Error("static page missing the head theme script")
	}
	if strings.Contains(out, `id="newsletter"`) {
		t.Error("static page should not render the newsletter form")
	}
	if !strings.Contains(out, `href="assets/style.css"`) {
		t.Error("static page should use relative asset paths")
	}
}

func TestRenderMarkdown(t *testing.T) {
	r := newTestRenderer(t)
	site := content.Default()
	site.FAQ.Categories = []content.FAQCategory{{
		ID:   "general",
		Name: "General",
		Items: []content.FAQItem{
			{Question: "Bold?", Answer: "Yes, **very**."},
			{Question: "Raw?", Answer: "<script>alert(1)</script>"},
		},
	}}

	page, err := r.Page(site, theme.State{}, ScopeView{}, Options{})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	items := page.FAQ.Categories[0].Items
	if items[0].ID != "general-1" || items[1].ID != "general-2" {
		t.Errorf("ids = %q, %q", items[0].ID, items[1].ID)
	}
	if !strings.Contains(string(items[0].AnswerHTML), "<strong>very</strong>") {
		t.Errorf("answer = %q, want bold", items[0].AnswerHTML)
	}
	if strings.Contains(string(items[1].AnswerHTML), "<script>") {
		t.Errorf("raw HTML was not omitted: %q", items[1].AnswerHTML)
	}
}

func TestPageSystemsAndFooter(t *testing.T) {
	r := newTestRenderer(t)
	site := content.Default()
	site.Systems.RotateSeconds = 0

	page, err := r.Page(site, theme.State{}, ScopeView{}, Options{
		Now: func() time.Time { return time.Date(2031, 1, 2, 0, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}

	if page.Systems.RotateSeconds != 5 {
		t.Errorf("RotateSeconds = %d, want default 5", page.Systems.RotateSeconds)
	}
	if len(page.Systems.Slides) != 3 || !page.Systems.Slides[0].Active || page.Systems.Slides[1].Active {
		t.Errorf("unexpected slides: %+v", page.Systems.Slides)
	}
	if got := page.Systems.Slides[0].Brochure; got != "/pdfs/client-acquisition-engine.pdf" {
		t.Errorf("Brochure = %q", got)
	}
	if page.Footer.Year != 2031 {
		t.Errorf("Year = %d, want 2031", page.Footer.Year)
	}
	if page.StorageKey != theme.DefaultKey {
		t.Errorf("StorageKey = %q, want %q", page.StorageKey, theme.DefaultKey)
	}
}

func TestThemeOptions(t *testing.T) {
	opts := themeOptions(theme.Dark)
	if len(opts) != 3 {
		t.Fatalf("got %d options", len(opts))
	}
	for _, o := range opts {
		if o.Current != (o.Value == theme.Dark) {
			t.Errorf("option %s Current = %v", o.Value, o.Current)
		}
	}
	if opts[2].Label != "System preference" {
		t.Errorf("system label = %q", opts[2].Label)
	}
	if themeLabel(theme.Preference("sepia")) != "sepia" {
		t.Errorf("unknown label = %q", themeLabel(theme.Preference("sepia")))
	}
}

func TestScope(t *testing.T) {
	s := NewScope()
	if got := s.View(); got.RootClass != "light" || got.ThemeColor != theme.LightThemeColor {
		t.Errorf("default view = %+v", got)
	}

	s.Apply(theme.State{Preference: theme.System, IsDark: true})
	got := s.View()
	if got.RootClass != "dark" || got.ColorScheme != "dark" || got.ThemeColor != theme.DarkThemeColor {
		t.Errorf("view = %+v", got)
	}
}
