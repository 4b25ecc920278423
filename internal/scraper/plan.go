package scraper

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/namongk/fast-linkedin-scraper/internal/config"
	"github.com/namongk/fast-linkedin-scraper/pkg/models"
)

var (
	// ErrEmptySelection is returned when a person plan selects no section.
	ErrEmptySelection = errors.New("no sections selected")
	// ErrInvalidTarget is returned for a URL that cannot be planned.
	ErrInvalidTarget = errors.New("invalid target url")
)

// StepKind is how a step reaches its section.
type StepKind string

const (
	// KindPage navigates to the step URL.
	KindPage StepKind = "page"
	// KindModal clicks Selector on the page left by the previous step.
	KindModal StepKind = "modal"
	// KindScroll scrolls the current page to load the next batch.
	KindScroll StepKind = "scroll"
)

// Section names carried by steps and results.
const (
	SectionBasicInfo       = "basic_info"
	SectionExperience      = "experience"
	SectionEducation       = "education"
	SectionInterests       = "interests"
	SectionHonors          = "honors"
	SectionLanguages       = "languages"
	SectionContactInfo     = "contact_info"
	SectionAbout           = "about"
	SectionAffiliatedPages = "affiliated_pages"
	SectionFollowers       = "followers"
	SectionEmployees       = "employees"
)

// Step is a single navigation of a plan.
type Step struct {
	Section  string        `json:"section"`
	Kind     StepKind      `json:"kind"`
	URL      string        `json:"url"`
	Selector string        `json:"selector,omitempty"`
	Wait     time.Duration `json:"wait"`
	Estimate time.Duration `json:"estimate"`
}

// Plan is the ordered list of navigations for one target.
type Plan struct {
	Target models.Target `json:"target"`
	Steps  []Step        `json:"steps"`
}

// Estimate sums the step estimates. It is guidance for latency budgets only.
func (p Plan) Estimate() time.Duration {
	var total time.Duration
	for _, s := range p.Steps {
		total += s.Estimate
	}
	return total
}

type waitLevel int

const (
	waitShort waitLevel = iota
	waitMedium
	waitLong
)

func (w waitLevel) of(b config.BrowserConfig) time.Duration {
	return b.Waits()[w]
}

type sectionDef struct {
	section  string
	path     string
	kind     StepKind
	wait     waitLevel
	estimate time.Duration
}

type personSection struct {
	flag models.PersonScrapingFields
	sectionDef
}

// Ordered by flag declaration; accomplishments takes two navigations.
var personSections = []personSection{
	{models.PersonBasicInfo, sectionDef{SectionBasicInfo, "", KindPage, waitMedium, 2 * time.Second}},
	{models.PersonExperience, sectionDef{SectionExperience, "details/experience/", KindPage, waitMedium, 5 * time.Second}},
	{models.PersonEducation, sectionDef{SectionEducation, "details/education/", KindPage, waitMedium, 5 * time.Second}},
	{models.PersonInterests, sectionDef{SectionInterests, "details/interests/", KindPage, waitMedium, 5 * time.Second}},
	{models.PersonAccomplishments, sectionDef{SectionHonors, "details/honors/", KindPage, waitMedium, 3 * time.Second}},
	{models.PersonAccomplishments, sectionDef{SectionLanguages, "details/languages/", KindPage, waitMedium, 3 * time.Second}},
	{models.PersonContacts, sectionDef{SectionContactInfo, "overlay/contact-info/", KindPage, waitMedium, 8 * time.Second}},
}

var (
	companyAbout      = sectionDef{SectionAbout, "about/", KindPage, waitMedium, 3 * time.Second}
	companyAffiliated = sectionDef{SectionAffiliatedPages, "about/", KindModal, waitShort, 5 * time.Second}
	companyFollowers  = sectionDef{SectionFollowers, "followers/", KindPage, waitLong, 10 * time.Second}
	companyEmployees  = sectionDef{SectionEmployees, "people/", KindPage, waitLong, 4 * time.Second}
)

// Planner turns field selections into navigation plans using the waits of
// a launch profile.
type Planner struct {
	Browser         config.BrowserConfig
	ShowAllSelector string
}

// NewPlanner creates a planner from the application configuration.
func NewPlanner(cfg *config.AppConfig) *Planner {
	return &Planner{
		Browser:         cfg.Browser,
		ShowAllSelector: cfg.Scraper.ShowAllSelector,
	}
}

// PersonPlan lists the navigations for a person profile, one group per
// selected flag in declaration order.
func (p *Planner) PersonPlan(profileURL string, fields models.PersonScrapingFields) (Plan, error) {
	if !fields.Valid() {
		return Plan{}, fmt.Errorf("person fields %s: %w", fields, models.ErrUnknownField)
	}
	if fields == 0 {
		return Plan{}, ErrEmptySelection
	}
	base, err := normalizeTarget(profileURL, models.TargetPerson)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{Target: models.Target{Kind: models.TargetPerson, URL: base}}
	for _, ps := range personSections {
		if fields.Has(ps.flag) {
			plan.Steps = append(plan.Steps, p.step(base, ps.sectionDef))
		}
	}
	return plan, nil
}

// CompanyPlan lists the navigations for a company. The about page always
// comes first. maxPages is the employee list depth and is independent of
// fields.
func (p *Planner) CompanyPlan(companyURL string, fields models.CompanyScrapingFields, maxPages int) (Plan, error) {
	if !fields.Valid() {
		return Plan{}, fmt.Errorf("company fields %s: %w", fields, models.ErrUnknownField)
	}
	if maxPages < 0 {
		return Plan{}, fmt.Errorf("max pages must not be negative, got %d", maxPages)
	}
	base, err := normalizeTarget(companyURL, models.TargetCompany)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{Target: models.Target{Kind: models.TargetCompany, URL: base}}
	plan.Steps = append(plan.Steps, p.step(base, companyAbout))

	if fields.Has(models.CompanyAffiliatedPages) {
		s := p.step(base, companyAffiliated)
		s.Selector = p.ShowAllSelector
		plan.Steps = append(plan.Steps, s)
	}
	if fields.Has(models.CompanyFollowerDetails) {
		plan.Steps = append(plan.Steps, p.step(base, companyFollowers))
	}
	for page := 0; page < maxPages; page++ {
		s := p.step(base, companyEmployees)
		if page > 0 {
			s.Kind = KindScroll
		}
		plan.Steps = append(plan.Steps, s)
	}
	return plan, nil
}

// PlanFor plans a target with the selections of sc.
func (p *Planner) PlanFor(t models.Target, sc config.ScraperConfig) (Plan, error) {
	switch t.Kind {
	case models.TargetPerson:
		return p.PersonPlan(t.URL, sc.PersonFields)
	case models.TargetCompany:
		return p.CompanyPlan(t.URL, sc.CompanyFields, sc.MaxPages)
	default:
		return Plan{}, fmt.Errorf("%w: unknown target kind %q", ErrInvalidTarget, t.Kind)
	}
}

func (p *Planner) step(base string, spec sectionDef) Step {
	return Step{
		Section:  spec.section,
		Kind:     spec.kind,
		URL:      base + spec.path,
		Wait:     spec.wait.of(p.Browser),
		Estimate: spec.estimate,
	}
}

// normalizeTarget keeps scheme, host and the profile root of kind, so a
// section URL such as ".../company/acme/about/" plans from ".../company/acme/".
func normalizeTarget(raw string, kind models.TargetKind) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not an absolute http(s) url", ErrInvalidTarget, raw)
	}
	if !models.OnSite(u.Hostname()) {
		return "", fmt.Errorf("%w: %q is not on %s", ErrInvalidTarget, raw, models.SiteHost)
	}
	root, ok := kind.ProfilePath(u.Path)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a %s profile url", ErrInvalidTarget, raw, kind)
	}
	u.Path = root
	u.RawPath = ""
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	return u.String(), nil
}
