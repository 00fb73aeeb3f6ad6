package services

import (
	"fmt"
	"strings"

	"travelai/internal/models/domain_models"
	"travelai/internal/models/response_models"
)

type PromptServiceInterface interface {
	Compose(profile *domain_models.Profile, userQuestion string) string
	Ideas(profile *domain_models.Profile, seed int) response_models.PromptIdeas
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

// tripField is one labelled line of the rendered trip profile. Listing
// order is fixed so the composed prompt is deterministic.
type tripField struct {
	Label string
	Value string
}

func tripFields(p *domain_models.Profile) []tripField {
	days := ""
	if p.Days != nil {
		days = fmt.Sprintf("%d days", *p.Days)
	}
	return []tripField{
		{"Cities", strings.Join(p.Cities, ", ")},
		{"Trip length", days},
		{"Budget", p.Budget},
		{"Style", p.Style},
		{"Pace", p.Pace},
		{"Companions", p.Companions},
		{"Season", p.Season},
		{"Interests", strings.Join(p.Interests, ", ")},
		{"Constraints", strings.Join(p.Constraints, ", ")},
	}
}

// Compose turns the profile plus a raw question into the single enriched
// instruction blob sent to the backend. Pure and deterministic: same
// profile and question always produce the same prompt.
func (s *PromptService) Compose(profile *domain_models.Profile, userQuestion string) string {
	language := profile.Language
	if language == "" {
		language = domain_models.LanguageEnglish
	}
	detail := profile.Detail
	if detail == "" {
		detail = domain_models.DetailDetailed
	}
	mode := profile.Mode
	if mode == "" {
		mode = domain_models.ModeExplore
	}

	base := []string{
		"You are Vietnam Travel AI.",
		"Be accurate, practical, and structured. Do not claim real-time access.",
		fmt.Sprintf("Output language: %s.", language),
		fmt.Sprintf("Response detail level: %s.", detail),
	}

	if len(profile.Extras) > 0 {
		base = append(base, "If relevant, include: "+strings.Join(profile.Extras, ", ")+".")
	}

	fields := tripFields(profile)
	anyTripSignal := false
	for _, f := range fields {
		if f.Value != "" {
			anyTripSignal = true
			break
		}
	}

	if mode == domain_models.ModeExplore && !anyTripSignal {
		base = append(base,
			"Primary role: help the user learn about Vietnam (culture, history, etiquette, regions, food, language, geography, tourism context).",
			"Do NOT proactively create itineraries or budgets unless the user explicitly asks for planning.",
			"If the user asks to plan, first ask 1–3 essential clarifying questions, then provide a best-effort draft plan with assumptions.",
		)
		return strings.Join(base, "\n") + "\n" + "User question:\n" + userQuestion
	}

	base = append(base,
		"Primary role: trip planning copilot when asked.",
		"If the user asks for an itinerary, produce a day-by-day plan with morning/afternoon/evening and practical transport + cost estimates.",
		"If important trip details are missing, make reasonable assumptions and list them clearly, or ask minimal clarifying questions.",
		"User trip profile (may be partial):",
	)

	for _, f := range fields {
		if f.Value != "" {
			base = append(base, fmt.Sprintf("- %s: %s", f.Label, f.Value))
		}
	}

	return strings.Join(base, "\n") + "\n" + "User question:\n" + userQuestion
}

var exploreQuickActions = []response_models.QuickAction{
	{Label: "Culture", Prompt: "Give me a concise overview of Vietnamese culture: values, family life, etiquette, and regional differences."},
	{Label: "Food 101", Prompt: "Explain Vietnamese cuisine by region (North/Central/South) and what dishes best represent each."},
	{Label: "Language", Prompt: "Teach me useful Vietnamese phrases for travelers, with pronunciation tips and when to use them."},
	{Label: "Destinations", Prompt: "What are the top destination regions in Vietnam and what is each best known for?"},
	{Label: "Festivals", Prompt: "What are Vietnam’s major festivals (Tet, Mid-Autumn, etc.) and what should a visitor know?"},
	{Label: "Do/Don't", Prompt: "List practical do’s and don’ts for foreigners in Vietnam: etiquette, tipping, bargaining, and common misunderstandings."},
}

var exploreSuggestions = []string{
	"Explain the cultural differences between Northern and Southern Vietnam.",
	"What is Vietnamese coffee culture and what should I try first?",
	"Give me a beginner guide to Vietnamese street food and how to order safely.",
	"Tell me about Vietnam’s history timeline in a way a traveler can understand.",
	"What are the most scenic landscapes in Vietnam and why are they special?",
	"What souvenirs are culturally meaningful (not just touristy)?",
	"Explain Vietnamese dining etiquette and table manners.",
	"How does religion and spirituality show up in everyday life in Vietnam?",
	"What should I know about Vietnamese family culture and social norms?",
	"Describe Hanoi vs Ho Chi Minh City vibes for first-time visitors.",
	"What are common scams in Vietnam and how do locals avoid them?",
	"Give me a regional overview: mountains, coast, delta, highlands.",
}

var planSuggestions = []string{
	"Compare Da Nang vs Hoi An: where should I stay for beach + culture?",
	"What is a realistic 5-day Hanoi + Ha Long + Ninh Binh route with transport timings?",
	"Give a weather-aware packing list and what to buy locally in Vietnam.",
	"Create a day-by-day plan for Ho Chi Minh City focused on food and history.",
	"What are common scams and how to avoid them with specific examples?",
	"Build a motorbike-free Northern Vietnam itinerary (Sa Pa / Ha Giang alternatives).",
	"Where should I stay in Hanoi and why? Recommend areas by vibe and budget.",
	"Design a couples itinerary with romantic spots and calmer evenings.",
	"Best street foods to try first and what phrases to use when ordering.",
	"How to split time between Hue, Da Nang, and Hoi An in 4 days?",
	"Create a premium/luxury itinerary with hotels and curated experiences.",
	"What are good day trips from Hanoi with a tight schedule?",
}

// Ideas picks the quick actions and suggestions for the side rail. The
// Explore set is only shown while the profile is still blank; once cities
// or days are set, the planning set takes over and interpolates them.
// The seed rotates the suggestion list; "shuffle" just re-seeds.
func (s *PromptService) Ideas(profile *domain_models.Profile, seed int) response_models.PromptIdeas {
	exploreBlank := profile.Mode == domain_models.ModeExplore &&
		len(profile.Cities) == 0 && profile.Days == nil

	var actions []response_models.QuickAction
	var suggestions []string

	if exploreBlank {
		actions = exploreQuickActions
		suggestions = exploreSuggestions
	} else {
		cities := "Vietnam"
		if len(profile.Cities) > 0 {
			cities = strings.Join(profile.Cities, ", ")
		}
		days := 5
		if profile.Days != nil {
			days = *profile.Days
		}
		actions = []response_models.QuickAction{
			{Label: "Itinerary", Prompt: fmt.Sprintf("Build a %d-day itinerary for %s. Include must-do spots, realistic transport, estimated costs, and booking tips.", days, cities)},
			{Label: "Budget", Prompt: fmt.Sprintf("Estimate a %d-day travel budget for %s. Break down accommodation, food, transport, activities, and buffer with low/mid/high ranges.", days, cities)},
			{Label: "Food", Prompt: fmt.Sprintf("Create a practical food guide for %s. What to eat, what to order, where to find it, and common tourist pitfalls.", cities)},
			{Label: "Transport", Prompt: fmt.Sprintf("Give transport guidance for traveling around %s. Apps, typical prices, airport transfers, intercity options, and safety tips.", cities)},
			{Label: "Safety", Prompt: fmt.Sprintf("Give a Vietnam travel safety checklist for %s. Include scams to avoid, money safety, taxi/app tips, and emergency steps.", cities)},
			{Label: "Hidden gems", Prompt: fmt.Sprintf("Suggest hidden gems and less-crowded experiences for %s. Provide specific neighborhoods/areas and best times to go.", cities)},
		}
		suggestions = planSuggestions
	}

	idx := seed % len(suggestions)
	if idx < 0 {
		idx += len(suggestions)
	}
	ordered := append(append([]string{}, suggestions[idx:]...), suggestions[:idx]...)

	mode := "plan"
	if exploreBlank {
		mode = "explore"
	}

	return response_models.PromptIdeas{
		Mode:         mode,
		QuickActions: actions,
		Suggestions:  ordered,
		Seed:         seed,
	}
}
