// Package content holds the marketing copy rendered by the site. A built-in
// copy ships embedded in the binary; an optional YAML file overrides it.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultYAML []byte

// Site is the full page copy.
type Site struct {
	Name         string         `yaml:"name"`
	Tagline      string         `yaml:"tagline"`
	BookingLink  string         `yaml:"booking_link"`
	Contact      Contact        `yaml:"contact"`
	Header       Header         `yaml:"header"`
	Hero         Hero           `yaml:"hero"`
	Systems      Systems        `yaml:"systems"`
	Services     Services       `yaml:"services"`
	WhyChoose    WhyChoose      `yaml:"why_choose"`
	Implement    Implementation `yaml:"implementation"`
	CaseStudies  CaseStudies    `yaml:"case_studies"`
	FAQ          FAQ            `yaml:"faq"`
	FinalCTA     FinalCTA       `yaml:"final_cta"`
	Footer       Footer         `yaml:"footer"`
	BookingModal BookingModal   `yaml:"booking_modal"`
}

type Contact struct {
	Phone string `yaml:"phone"`
	Email string `yaml:"email"`
}

type Header struct {
	CTA string `yaml:"cta"`
}

type Hero struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	CTA      string `yaml:"cta"`
	Stats    []Stat `yaml:"stats"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Systems is the carousel of the three core offerings.
type Systems struct {
	Title         string   `yaml:"title"`
	Subtitle      string   `yaml:"subtitle"`
	RotateSeconds int      `yaml:"rotate_seconds"`
	Items         []System `yaml:"items"`
}

type System struct {
	Name       string   `yaml:"name"`
	Title      string   `yaml:"title"`
	Subtitle   string   `yaml:"subtitle"`
	Features   []string `yaml:"features"`
	Results    []string `yaml:"results"`
	Advantages []string `yaml:"advantages"`
}

// Slug returns the lower-case hyphenated title, used for anchors and the
// brochure file name.
func (s System) Slug() string {
	return strings.ToLower(strings.Join(strings.Fields(s.Title), "-"))
}

type Services struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	Tiers    []ServiceTier `yaml:"tiers"`
	Ticker   []string      `yaml:"ticker"`
}

type ServiceTier struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Services    []string `yaml:"services"`
}

type WhyChoose struct {
	Title   string   `yaml:"title"`
	Reasons []Reason `yaml:"reasons"`
}

type Reason struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Implementation struct {
	Title   string   `yaml:"title"`
	Phases  []Phase  `yaml:"phases"`
	Metrics []string `yaml:"metrics"`
}

type Phase struct {
	Name        string `yaml:"name"`
	Duration    string `yaml:"duration"`
	Description string `yaml:"description"`
}

type CaseStudies struct {
	Title string      `yaml:"title"`
	Items []CaseStudy `yaml:"items"`
}

// CaseStudy descriptions are markdown.
type CaseStudy struct {
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Result      string `yaml:"result"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
	Source      string `yaml:"source"`
}

type FAQ struct {
	Title      string        `yaml:"title"`
	Subtitle   string        `yaml:"subtitle"`
	Categories []FAQCategory `yaml:"categories"`
}

type FAQCategory struct {
	ID    string    `yaml:"id"`
	Name  string    `yaml:"name"`
	Items []FAQItem `yaml:"items"`
}

// FAQItem answers are markdown.
type FAQItem struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type FinalCTA struct {
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
	Lead   string `yaml:"lead"`
	Button string `yaml:"button"`
	Note   string `yaml:"note"`
}

type Footer struct {
	Columns     []FooterColumn `yaml:"columns"`
	Badges      []string       `yaml:"badges"`
	Newsletter  Newsletter     `yaml:"newsletter"`
	Disclaimers []string       `yaml:"disclaimers"`
}

type FooterColumn struct {
	Title string   `yaml:"title"`
	Links []string `yaml:"links"`
}

type Newsletter struct {
	Title       string `yaml:"title"`
	Placeholder string `yaml:"placeholder"`
	Button      string `yaml:"button"`
}

type BookingModal struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Default returns the embedded copy.
func Default() *Site {
	s, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded content is invalid: %v", err))
	}
	return s
}

// Load reads and validates a YAML content file.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates YAML content. Unknown keys are rejected so
// typos in an override file surface instead of silently dropping copy.
func Parse(data []byte) (*Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Site
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the fields the page cannot render without.
func (s *Site) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if err := validateLink(s.BookingLink); err != nil {
		errs = append(errs, fmt.Errorf("booking_link: %w", err))
	}
	for i, c := range s.FAQ.Categories {
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("faq.categories[%d]: id is required", i))
		}
	}
	return errors.Join(errs...)
}

func validateLink(raw string) error {
	if raw == "" {
		return errors.New("is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("host is required")
	}
	return nil
}
