package domain_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelai/pkg/utils"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()

	assert.Equal(t, ModeExplore, p.Mode)
	assert.Equal(t, LanguageEnglish, p.Language)
	assert.Equal(t, DetailDetailed, p.Detail)
	assert.Nil(t, p.Days)
	assert.Empty(t, p.Cities)
	assert.NotNil(t, p.Cities)
	assert.False(t, p.HasTripSignal())
}

func TestUpdateScalarValidation(t *testing.T) {
	p := DefaultProfile()

	require.NoError(t, p.Update("budget", "mid"))
	assert.Equal(t, "mid", p.Budget)

	// out-of-domain value is rejected and the prior value survives
	err := p.Update("budget", "premium")
	assert.ErrorIs(t, err, utils.ErrValidationRejected)
	assert.Equal(t, "mid", p.Budget)

	// "None" and friends clear the field instead of failing
	require.NoError(t, p.Update("budget", "None"))
	assert.Equal(t, "", p.Budget)
	require.NoError(t, p.Update("season", "null"))
	assert.Equal(t, "", p.Season)

	assert.ErrorIs(t, p.Update("mode", "Wander"), utils.ErrValidationRejected)
	assert.Equal(t, ModeExplore, p.Mode)
	require.NoError(t, p.Update("mode", ModePlan))
	assert.Equal(t, ModePlan, p.Mode)

	assert.ErrorIs(t, p.Update("not_a_field", "x"), utils.ErrValidationRejected)
}

func TestUpdateDays(t *testing.T) {
	p := DefaultProfile()

	require.NoError(t, p.Update("days", "5"))
	require.NotNil(t, p.Days)
	assert.Equal(t, 5, *p.Days)

	assert.ErrorIs(t, p.Update("days", "0"), utils.ErrValidationRejected)
	assert.ErrorIs(t, p.Update("days", "22"), utils.ErrValidationRejected)
	assert.ErrorIs(t, p.Update("days", "abc"), utils.ErrValidationRejected)
	require.NotNil(t, p.Days)
	assert.Equal(t, 5, *p.Days)

	require.NoError(t, p.Update("days", "None"))
	assert.Nil(t, p.Days)
}

func TestUpdateListCanonicalOrder(t *testing.T) {
	p := DefaultProfile()

	// arrival order and duplicates do not matter; unknown entries drop
	require.NoError(t, p.UpdateList("cities", []string{"Hue", "Hanoi", "Hue", "Atlantis"}))
	assert.Equal(t, []string{"Hanoi", "Hue"}, p.Cities)

	require.NoError(t, p.UpdateList("interests", []string{"history", "food"}))
	assert.Equal(t, []string{"food", "history"}, p.Interests)

	assert.ErrorIs(t, p.UpdateList("nope", nil), utils.ErrValidationRejected)
}

func TestNormalizeIdempotent(t *testing.T) {
	bad := 99
	p := &Profile{
		Mode:      "weird",
		Cities:    []string{"Hue", "Nowhere", "Hanoi"},
		Days:      &bad,
		Budget:    "premium",
		Style:     "foodie",
		Language:  "Klingon",
		Detail:    "",
		Interests: []string{"food", "food", "x"},
	}

	p.Normalize()

	assert.Equal(t, ModeExplore, p.Mode)
	assert.Equal(t, []string{"Hanoi", "Hue"}, p.Cities)
	assert.Nil(t, p.Days)
	assert.Equal(t, "", p.Budget)
	assert.Equal(t, "foodie", p.Style)
	assert.Equal(t, LanguageEnglish, p.Language)
	assert.Equal(t, DetailDetailed, p.Detail)
	assert.Equal(t, []string{"food"}, p.Interests)

	first := p.Clone()
	p.Normalize()
	assert.Equal(t, first, p.Clone())
}

func TestResetTripFieldsKeepsAnswerSettings(t *testing.T) {
	p := DefaultProfile()
	require.NoError(t, p.Update("mode", ModePlan))
	require.NoError(t, p.Update("days", "3"))
	require.NoError(t, p.Update("language", LanguageVietnamese))
	require.NoError(t, p.Update("detail", DetailConcise))
	require.NoError(t, p.UpdateList("cities", []string{"Da Nang"}))

	p.ResetTripFields()

	assert.Equal(t, ModeExplore, p.Mode)
	assert.Nil(t, p.Days)
	assert.Empty(t, p.Cities)
	assert.False(t, p.HasTripSignal())
	assert.Equal(t, LanguageVietnamese, p.Language)
	assert.Equal(t, DetailConcise, p.Detail)
}

func TestHasTripSignal(t *testing.T) {
	p := DefaultProfile()
	assert.False(t, p.HasTripSignal())

	require.NoError(t, p.Update("pace", "slow"))
	assert.True(t, p.HasTripSignal())

	require.NoError(t, p.Update("pace", "None"))
	assert.False(t, p.HasTripSignal())

	d := 7
	p.Days = &d
	assert.True(t, p.HasTripSignal())
}

func TestCloneIsDeep(t *testing.T) {
	p := DefaultProfile()
	require.NoError(t, p.Update("days", "4"))
	require.NoError(t, p.UpdateList("cities", []string{"Hanoi"}))

	c := p.Clone()
	*c.Days = 9
	c.Cities[0] = "Hue"

	assert.Equal(t, 4, *p.Days)
	assert.Equal(t, "Hanoi", p.Cities[0])
}
