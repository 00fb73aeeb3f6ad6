package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelai/internal/models/domain_models"
)

const (
	educatorLine = "Do NOT proactively create itineraries or budgets unless the user explicitly asks for planning."
	copilotLine  = "Primary role: trip planning copilot when asked."
)

func TestComposeEducatorBranch(t *testing.T) {
	svc := NewPromptService()
	profile := domain_models.DefaultProfile()

	prompt := svc.Compose(profile, "Tell me about Tet.")

	assert.True(t, strings.HasPrefix(prompt, "You are Vietnam Travel AI.\n"))
	assert.Contains(t, prompt, "Output language: English.")
	assert.Contains(t, prompt, "Response detail level: Detailed.")
	assert.Contains(t, prompt, educatorLine)
	assert.NotContains(t, prompt, copilotLine)
	assert.True(t, strings.HasSuffix(prompt, "User question:\nTell me about Tet."))
}

func TestComposeCopilotBranch(t *testing.T) {
	svc := NewPromptService()
	profile := domain_models.DefaultProfile()
	require.NoError(t, profile.UpdateList("cities", []string{"Hue", "Hanoi"}))
	require.NoError(t, profile.Update("days", "5"))
	require.NoError(t, profile.Update("budget", "mid"))

	prompt := svc.Compose(profile, "Plan my trip.")

	assert.Contains(t, prompt, copilotLine)
	assert.NotContains(t, prompt, educatorLine)
	assert.Contains(t, prompt, "User trip profile (may be partial):")
	assert.Contains(t, prompt, "- Cities: Hanoi, Hue")
	assert.Contains(t, prompt, "- Trip length: 5 days")
	assert.Contains(t, prompt, "- Budget: mid")
	// unset fields never render an empty line
	assert.NotContains(t, prompt, "- Style:")
	assert.True(t, strings.HasSuffix(prompt, "User question:\nPlan my trip."))
}

func TestComposePlanModeWithoutSignalUsesCopilotBranch(t *testing.T) {
	svc := NewPromptService()
	profile := domain_models.DefaultProfile()
	require.NoError(t, profile.Update("mode", domain_models.ModePlan))

	prompt := svc.Compose(profile, "q")

	assert.Contains(t, prompt, copilotLine)
	assert.NotContains(t, prompt, educatorLine)
}

func TestComposeExtrasLine(t *testing.T) {
	svc := NewPromptService()
	profile := domain_models.DefaultProfile()
	require.NoError(t, profile.UpdateList("extras", []string{"Local tips", "Local phrases"}))

	prompt := svc.Compose(profile, "q")

	assert.Contains(t, prompt, "If relevant, include: Local tips, Local phrases.")
}

func TestComposeIsDeterministic(t *testing.T) {
	svc := NewPromptService()
	profile := domain_models.DefaultProfile()
	require.NoError(t, profile.UpdateList("cities", []string{"Da Nang", "Hoi An"}))
	require.NoError(t, profile.Update("pace", "slow"))

	first := svc.Compose(profile, "same question")
	second := svc.Compose(profile, "same question")

	assert.Equal(t, first, second)
}

func TestIdeasExploreBlank(t *testing.T) {
	svc := NewPromptService()
	profile := domain_models.DefaultProfile()

	ideas := svc.Ideas(profile, 0)

	assert.Equal(t, "explore", ideas.Mode)
	require.Len(t, ideas.QuickActions, 6)
	assert.Equal(t, "Culture", ideas.QuickActions[0].Label)
	assert.Len(t, ideas.Suggestions, 12)
}

func TestIdeasExploreTextFidelity(t *testing.T) {
	svc := NewPromptService()
	profile := domain_models.DefaultProfile()

	ideas := svc.Ideas(profile, 0)

	// the curated texts keep their typographic apostrophes
	assert.Equal(t, "What are Vietnam’s major festivals (Tet, Mid-Autumn, etc.) and what should a visitor know?", ideas.QuickActions[4].Prompt)
	assert.Equal(t, "List practical do’s and don’ts for foreigners in Vietnam: etiquette, tipping, bargaining, and common misunderstandings.", ideas.QuickActions[5].Prompt)
	assert.Contains(t, ideas.Suggestions, "Tell me about Vietnam’s history timeline in a way a traveler can understand.")
}

func TestIdeasPlanInterpolatesProfile(t *testing.T) {
	svc := NewPromptService()
	profile := domain_models.DefaultProfile()
	require.NoError(t, profile.UpdateList("cities", []string{"Hanoi"}))
	require.NoError(t, profile.Update("days", "3"))

	ideas := svc.Ideas(profile, 0)

	assert.Equal(t, "plan", ideas.Mode)
	require.Len(t, ideas.QuickActions, 6)
	assert.Equal(t, "Itinerary", ideas.QuickActions[0].Label)
	assert.Contains(t, ideas.QuickActions[0].Prompt, "3-day itinerary for Hanoi")
}

func TestIdeasPlanFallsBackToVietnam(t *testing.T) {
	svc := NewPromptService()
	profile := domain_models.DefaultProfile()
	require.NoError(t, profile.Update("mode", domain_models.ModePlan))

	ideas := svc.Ideas(profile, 0)

	assert.Equal(t, "plan", ideas.Mode)
	assert.Contains(t, ideas.QuickActions[0].Prompt, "5-day itinerary for Vietnam")
}

func TestIdeasSeedRotatesSuggestions(t *testing.T) {
	svc := NewPromptService()
	profile := domain_models.DefaultProfile()

	base := svc.Ideas(profile, 0)
	rotated := svc.Ideas(profile, 2)

	require.Len(t, rotated.Suggestions, len(base.Suggestions))
	assert.Equal(t, base.Suggestions[2], rotated.Suggestions[0])
	assert.ElementsMatch(t, base.Suggestions, rotated.Suggestions)
	assert.Equal(t, 2, rotated.Seed)
}
