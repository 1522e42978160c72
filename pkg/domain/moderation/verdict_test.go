package moderation_test

import (
	"testing"

	"github.com/feedguard/feedguard/pkg/domain/moderation"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, moderation.LevelNotToxic, moderation.ParseLevel("not_toxic"))
	assert.Equal(t, moderation.LevelToxic, moderation.ParseLevel("toxic"))
	assert.Equal(t, moderation.LevelVeryToxic, moderation.ParseLevel("very_toxic"))
	assert.Equal(t, moderation.LevelVeryToxic, moderation.ParseLevel(" VERY_TOXIC "))
	assert.Equal(t, moderation.LevelNotToxic, moderation.ParseLevel("whatever"))
}

func TestLevelOrdering(t *testing.T) {
	assert.True(t, moderation.LevelNotToxic < moderation.LevelToxic)
	assert.True(t, moderation.LevelToxic < moderation.LevelVeryToxic)
}

func TestVerdictValidate_NonToxicInvariants(t *testing.T) {
	v := moderation.Verdict{IsToxic: false, Level: moderation.LevelToxic}
	assert.Error(t, v.Validate())

	v = moderation.Verdict{IsToxic: false, DetectedCategories: []string{"insult"}}
	assert.Error(t, v.Validate())

	v = moderation.Verdict{IsToxic: false, Level: moderation.LevelNotToxic}
	assert.NoError(t, v.Validate())
}

func TestVerdictValidate_VeryToxicRequiresToxic(t *testing.T) {
	v := moderation.Verdict{
		IsToxic:            true,
		Level:              moderation.LevelVeryToxic,
		DetectedCategories: []string{"threat"},
	}
	assert.NoError(t, v.Validate())
}

func TestSafeDefault(t *testing.T) {
	v := moderation.SafeDefault("hello there")
	assert.False(t, v.IsToxic)
	assert.Equal(t, moderation.LevelNotToxic, v.Level)
	assert.Empty(t, v.DetectedCategories)
	assert.Equal(t, "hello there", v.CensoredText)
	assert.NoError(t, v.Validate())
}

func TestCategoryDisplayName(t *testing.T) {
	assert.Equal(t, "Insult", moderation.CategoryDisplayName("insult"))
	assert.Equal(t, "Severe Toxicity", moderation.CategoryDisplayName("severe_toxicity"))
	assert.Equal(t, "Sexually Explicit", moderation.CategoryDisplayName("sexual_explicit"))
	// unknown identifiers fall back to title-casing
	assert.Equal(t, "Spam Link", moderation.CategoryDisplayName("spam_link"))
}

func TestParseCensorLevel(t *testing.T) {
	lvl, err := moderation.ParseCensorLevel("heavy")
	assert.NoError(t, err)
	assert.Equal(t, moderation.CensorHeavy, lvl)

	lvl, err = moderation.ParseCensorLevel("")
	assert.NoError(t, err)
	assert.Equal(t, moderation.CensorAuto, lvl)

	_, err = moderation.ParseCensorLevel("extreme")
	assert.Error(t, err)
}
