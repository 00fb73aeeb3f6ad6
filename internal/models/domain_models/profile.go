package domain_models

import (
	"strconv"
	"strings"

	"travelai/pkg/utils"
)

const (
	ModeExplore = "Explore"
	ModePlan    = "Plan"

	LanguageEnglish    = "English"
	LanguageVietnamese = "Vietnamese"

	DetailConcise  = "Concise"
	DetailBalanced = "Balanced"
	DetailDetailed = "Detailed"

	MinTripDays = 1
	MaxTripDays = 21
)

// Fixed vocabularies for the trip profile. List-typed fields are kept in
// vocabulary order so the rendered profile is stable regardless of the
// order selections arrived in.
var (
	CitiesMaster = []string{
		"Hanoi", "Ha Long", "Ninh Binh", "Sa Pa", "Hue", "Da Nang", "Hoi An",
		"Nha Trang", "Da Lat", "Ho Chi Minh City", "Mekong Delta", "Phu Quoc",
	}
	BudgetOptions     = []string{"low", "mid", "high"}
	StyleOptions      = []string{"balanced", "foodie", "culture", "nature", "beach", "luxury"}
	PaceOptions       = []string{"slow", "balanced", "fast"}
	CompanionOptions  = []string{"solo", "couple", "friends", "family"}
	SeasonOptions     = []string{"any", "spring", "summer", "autumn", "winter"}
	InterestOptions   = []string{"food", "culture", "nature", "beach", "history", "nightlife", "photography", "adventure", "shopping"}
	ConstraintOptions = []string{"wheelchair-friendly", "kid-friendly", "no-motorbike", "no-seafood", "vegetarian", "halal"}
	LanguageOptions   = []string{LanguageEnglish, LanguageVietnamese}
	DetailOptions     = []string{DetailConcise, DetailBalanced, DetailDetailed}
	ExtrasOptions     = []string{"Local tips", "Scams to avoid", "Transport options", "Budget breakdown", "Best time to visit", "Local phrases"}
)

// Profile holds the trip preferences accumulated during one session.
// Nullable scalar fields hold "" (or nil for Days) when unset; the literal
// strings "none"/"null" are never stored as live values.
type Profile struct {
	Mode        string   `json:"mode"`
	Cities      []string `json:"cities"`
	Days        *int     `json:"days"`
	Budget      string   `json:"budget,omitempty"`
	Style       string   `json:"style,omitempty"`
	Pace        string   `json:"pace,omitempty"`
	Companions  string   `json:"companions,omitempty"`
	Season      string   `json:"season,omitempty"`
	Interests   []string `json:"interests"`
	Constraints []string `json:"constraints"`
	Language    string   `json:"language"`
	Detail      string   `json:"detail"`
	Extras      []string `json:"extras"`
}

func DefaultProfile() *Profile {
	return &Profile{
		Mode:        ModeExplore,
		Cities:      []string{},
		Interests:   []string{},
		Constraints: []string{},
		Language:    LanguageEnglish,
		Detail:      DetailDetailed,
		Extras:      []string{},
	}
}

// normNone maps the UI's "no selection" spellings to the absent marker.
func normNone(v string) string {
	s := strings.TrimSpace(v)
	switch strings.ToLower(s) {
	case "", "none", "null":
		return ""
	}
	return s
}

func inOptions(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

// canonicalList filters values down to the allowed vocabulary, drops
// duplicates, and returns them in vocabulary order. Never returns nil.
func canonicalList(options []string, values []string) []string {
	picked := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if inOptions(options, v) {
			picked[v] = true
		}
	}
	out := make([]string, 0, len(picked))
	for _, o := range options {
		if picked[o] {
			out = append(out, o)
		}
	}
	return out
}

// Update sets a single scalar field after validating the value against the
// field's domain. Out-of-domain values return ErrValidationRejected and
// leave the prior value in place; callers decide whether to surface that.
func (p *Profile) Update(field, value string) error {
	switch field {
	case "mode":
		if value != ModeExplore && value != ModePlan {
			return utils.ErrValidationRejected
		}
		p.Mode = value
	case "days":
		v := normNone(value)
		if v == "" {
			p.Days = nil
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < MinTripDays || n > MaxTripDays {
			return utils.ErrValidationRejected
		}
		p.Days = &n
	case "budget":
		return setEnum(&p.Budget, BudgetOptions, value)
	case "style":
		return setEnum(&p.Style, StyleOptions, value)
	case "pace":
		return setEnum(&p.Pace, PaceOptions, value)
	case "companions":
		return setEnum(&p.Companions, CompanionOptions, value)
	case "season":
		return setEnum(&p.Season, SeasonOptions, value)
	case "language":
		if !inOptions(LanguageOptions, value) {
			return utils.ErrValidationRejected
		}
		p.Language = value
	case "detail":
		if !inOptions(DetailOptions, value) {
			return utils.ErrValidationRejected
		}
		p.Detail = value
	default:
		return utils.ErrValidationRejected
	}
	return nil
}

func setEnum(dst *string, options []string, value string) error {
	v := normNone(value)
	if v == "" {
		*dst = ""
		return nil
	}
	if !inOptions(options, v) {
		return utils.ErrValidationRejected
	}
	*dst = v
	return nil
}

// UpdateList replaces a list-typed field with the canonical form of the
// given values. Unknown entries are dropped rather than rejected, matching
// how the selection UI behaves.
func (p *Profile) UpdateList(field string, values []string) error {
	switch field {
	case "cities":
		p.Cities = canonicalList(CitiesMaster, values)
	case "interests":
		p.Interests = canonicalList(InterestOptions, values)
	case "constraints":
		p.Constraints = canonicalList(ConstraintOptions, values)
	case "extras":
		p.Extras = canonicalList(ExtrasOptions, values)
	default:
		return utils.ErrValidationRejected
	}
	return nil
}

// Normalize repairs a profile after any external mutation (bulk load,
// deserialization). It is idempotent: a second pass is a no-op.
func (p *Profile) Normalize() {
	if p.Mode != ModePlan {
		p.Mode = ModeExplore
	}

	p.Budget = normEnum(BudgetOptions, p.Budget)
	p.Style = normEnum(StyleOptions, p.Style)
	p.Pace = normEnum(PaceOptions, p.Pace)
	p.Companions = normEnum(CompanionOptions, p.Companions)
	p.Season = normEnum(SeasonOptions, p.Season)

	if p.Days != nil && (*p.Days < MinTripDays || *p.Days > MaxTripDays) {
		p.Days = nil
	}

	p.Cities = canonicalList(CitiesMaster, p.Cities)
	p.Interests = canonicalList(InterestOptions, p.Interests)
	p.Constraints = canonicalList(ConstraintOptions, p.Constraints)
	p.Extras = canonicalList(ExtrasOptions, p.Extras)

	if !inOptions(LanguageOptions, p.Language) {
		p.Language = LanguageEnglish
	}
	if !inOptions(DetailOptions, p.Detail) {
		p.Detail = DetailDetailed
	}
}

func normEnum(options []string, value string) string {
	v := normNone(value)
	if v == "" || !inOptions(options, v) {
		return ""
	}
	return v
}

// ResetTripFields clears every trip-planning field back to its default and
// returns the mode to Explore. Answer settings (language, detail) survive.
func (p *Profile) ResetTripFields() {
	p.Mode = ModeExplore
	p.Cities = []string{}
	p.Days = nil
	p.Budget = ""
	p.Style = ""
	p.Pace = ""
	p.Companions = ""
	p.Season = ""
	p.Interests = []string{}
	p.Constraints = []string{}
	p.Extras = []string{}
}

// HasTripSignal reports whether at least one trip field carries a value.
// It decides which instruction branch the prompt composer emits.
func (p *Profile) HasTripSignal() bool {
	return len(p.Cities) > 0 ||
		p.Days != nil ||
		p.Budget != "" ||
		p.Style != "" ||
		p.Pace != "" ||
		p.Companions != "" ||
		p.Season != "" ||
		len(p.Interests) > 0 ||
		len(p.Constraints) > 0
}

func (p *Profile) Clone() *Profile {
	c := *p
	if p.Days != nil {
		d := *p.Days
		c.Days = &d
	}
	c.Cities = append([]string{}, p.Cities...)
	c.Interests = append([]string{}, p.Interests...)
	c.Constraints = append([]string{}, p.Constraints...)
	c.Extras = append([]string{}, p.Extras...)
	return &c
}
