package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/yuin/goldmark"
	"github.com/ziadkadry99/serviqo/internal/content"
	"github.com/ziadkadry99/serviqo/internal/theme"
)

// Page is the template data for the whole document. Every section view
// receives the resolved IsDark explicitly.
type Page struct {
	Title      string
	Theme      theme.State
	Scope      ScopeView
	Live       bool
	StorageKey string
	AssetBase  string

	Header         HeaderView
	Hero           HeroView
	Systems        SystemsView
	Services       ServicesView
	WhyChoose      WhyChooseView
	Implementation ImplementationView
	CaseStudies    CaseStudiesView
	FAQ            FAQView
	FinalCTA       FinalCTAView
	Footer         FooterView
	BookingModal   BookingModalView
}

type HeaderView struct {
	IsDark  bool
	Name    string
	CTA     string
	Tabs    []SystemTab
	Theme   theme.State
	Toggles []ThemeOption
}

type SystemTab struct {
	Index  int
	Name   string
	Active bool
}

// ThemeOption is one step of the theme switch control.
type ThemeOption struct {
	Value   theme.Preference
	Label   string
	Current bool
}

type HeroView struct {
	IsDark bool
	content.Hero
}

type SystemsView struct {
	IsDark bool
	content.Systems
	Slides []SystemSlide
}

type SystemSlide struct {
	content.System
	Index    int
	Active   bool
	Brochure string
}

type ServicesView struct {
	IsDark bool
	content.Services
}

type WhyChooseView struct {
	IsDark bool
	content.WhyChoose
}

type ImplementationView struct {
	IsDark bool
	content.Implementation
}

type CaseStudiesView struct {
	IsDark bool
	Title  string
	Items  []CaseStudyView
}

type CaseStudyView struct {
	content.CaseStudy
	DescriptionHTML template.HTML
}

type FAQView struct {
	IsDark     bool
	Title      string
	Subtitle   string
	Categories []FAQCategoryView
}

type FAQCategoryView struct {
	ID     string
	Name   string
	Active bool
	Items  []FAQItemView
}

type FAQItemView struct {
	ID         string
	Question   string
	AnswerHTML template.HTML
}

type FinalCTAView struct {
	IsDark bool
	content.FinalCTA
}

type FooterView struct {
	IsDark  bool
	Name    string
	Tagline string
	Contact content.Contact
	Year    int
	Live    bool
	content.Footer
}

type BookingModalView struct {
	IsDark      bool
	BookingLink string
	content.BookingModal
}

// Options control page assembly.
type Options struct {
	// Live pages talk to the theme websocket and the subscribe API; static
	// pages resolve the theme in the browser.
	Live       bool
	StorageKey string
	AssetBase  string
	Now        func() time.Time
}

// Renderer turns site content and a resolved theme into HTML.
type Renderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

// NewRenderer parses the page template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Renderer{tmpl: tmpl, md: newMarkdown()}, nil
}

// Page assembles the template data.
func (r *Renderer) Page(site *content.Site, state theme.State, scope ScopeView, opts Options) (*Page, error) {
	if opts.StorageKey == "" {
		opts.StorageKey = theme.DefaultKey
	}
	if opts.AssetBase == "" {
		opts.AssetBase = "/assets/"
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	dark := state.IsDark

	p := &Page{
		Title:      pageTitle(site),
		Theme:      state,
		Scope:      scope,
		Live:       opts.Live,
		StorageKey: opts.StorageKey,
		AssetBase:  opts.AssetBase,
		Header: HeaderView{
			IsDark:  dark,
			Name:    site.Name,
			CTA:     site.Header.CTA,
			Theme:   state,
			Toggles: themeOptions(state.Preference),
		},
		Hero:           HeroView{IsDark: dark, Hero: site.Hero},
		Systems:        SystemsView{IsDark: dark, Systems: site.Systems},
		Services:       ServicesView{IsDark: dark, Services: site.Services},
		WhyChoose:      WhyChooseView{IsDark: dark, WhyChoose: site.WhyChoose},
		Implementation: ImplementationView{IsDark: dark, Implementation: site.Implement},
		CaseStudies:    CaseStudiesView{IsDark: dark, Title: site.CaseStudies.Title},
		FAQ:            FAQView{IsDark: dark, Title: site.FAQ.Title, Subtitle: site.FAQ.Subtitle},
		FinalCTA:       FinalCTAView{IsDark: dark, FinalCTA: site.FinalCTA},
		Footer: FooterView{
			IsDark:  dark,
			Name:    site.Name,
			Tagline: site.Tagline,
			Contact: site.Contact,
			Year:    now().Year(),
			Live:    opts.Live,
			Footer:  site.Footer,
		},
		BookingModal: BookingModalView{
			IsDark:       dark,
			BookingLink:  site.BookingLink,
			BookingModal: site.BookingModal,
		},
	}
	if p.Systems.RotateSeconds <= 0 {
		p.Systems.RotateSeconds = 5
	}

	for i, sys := range site.Systems.Items {
		p.Header.Tabs = append(p.Header.Tabs, SystemTab{Index: i, Name: sys.Name, Active: i == 0})
		p.Systems.Slides = append(p.Systems.Slides, SystemSlide{
			System:   sys,
			Index:    i,
			Active:   i == 0,
			Brochure: "/pdfs/" + sys.Slug() + ".pdf",
		})
	}

	for _, cs := range site.CaseStudies.Items {
		body, err := renderMarkdown(r.md, cs.Description)
		if err != nil {
			return nil, fmt.Errorf("case study %q: %w", cs.Title, err)
		}
		p.CaseStudies.Items = append(p.CaseStudies.Items, CaseStudyView{CaseStudy: cs, DescriptionHTML: body})
	}

	for ci, cat := range site.FAQ.Categories {
		cv := FAQCategoryView{ID: cat.ID, Name: cat.Name, Active: ci == 0}
		for i, item := range cat.Items {
			answer, err := renderMarkdown(r.md, item.Answer)
			if err != nil {
				return nil, fmt.Errorf("faq %q: %w", item.Question, err)
			}
			cv.Items = append(cv.Items, FAQItemView{
				ID:         fmt.Sprintf("%s-%d", cat.ID, i+1),
				Question:   item.Question,
				AnswerHTML: answer,
			})
		}
		p.FAQ.Categories = append(p.FAQ.Categories, cv)
	}

	return p, nil
}

// Render writes the full document.
func (r *Renderer) Render(w io.Writer, site *content.Site, state theme.State, scope ScopeView, opts Options) error {
	page, err := r.Page(site, state, scope, opts)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, page); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func pageTitle(site *content.Site) string {
	if site.Tagline == "" {
		return site.Name
	}
	return site.Name + " | " + site.Tagline
}

var themeLabels = map[theme.Preference]string{
	theme.Light:  "Light mode",
	theme.Dark:   "Dark mode",
	theme.System: "System preference",
}

func themeOptions(current theme.Preference) []ThemeOption {
	opts := make([]ThemeOption, 0, 3)
	for _, p := range []theme.Preference{theme.Light, theme.Dark, theme.System} {
		opts = append(opts, ThemeOption{Value: p, Label: themeLabel(p), Current: p == current})
	}
	return opts
}

// themeLabel returns the switch label for a preference.
func themeLabel(p theme.Preference) string {
	if l, ok := themeLabels[p]; ok {
		return l
	}
	return string(p)
}
