package moderation

import (
	"fmt"
	"strings"
)

// Level is the toxicity severity reported by the classifier. The ordering
// NotToxic < Toxic < VeryToxic is authoritative for every consumer that
// renders or compares toxicity.
type Level int

const (
	LevelNotToxic Level = iota
	LevelToxic
	LevelVeryToxic
)

const (
	levelNotToxicName  = "not_toxic"
	levelToxicName     = "toxic"
	levelVeryToxicName = "very_toxic"
)

func (l Level) String() string {
	switch l {
	case LevelToxic:
		return levelToxicName
	case LevelVeryToxic:
		return levelVeryToxicName
	default:
		return levelNotToxicName
	}
}

// ParseLevel maps the classifier's toxicity_level field to a Level.
// Unknown values degrade to LevelNotToxic rather than failing.
func ParseLevel(s string) Level {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case levelToxicName:
		return LevelToxic
	case levelVeryToxicName:
		return LevelVeryToxic
	default:
		return LevelNotToxic
	}
}

// CategoryScore is the per-category classification outcome.
type CategoryScore struct {
	Probability float64 `json:"probability"`
	Detected    bool    `json:"is_detected"`
}

// Verdict is the structured outcome of classifying one piece of text.
type Verdict struct {
	IsToxic            bool                     `json:"is_toxic"`
	Level              Level                    `json:"level"`
	DetectedCategories []string                 `json:"detected_categories,omitempty"`
	CategoryScores     map[string]CategoryScore `json:"category_scores,omitempty"`
	CensoredText       string                   `json:"censored_text,omitempty"`
}

// SafeDefault is the fail-open verdict: on any classification failure the
// content is treated as clean and the text passes through unchanged.
func SafeDefault(text string) Verdict {
	return Verdict{
		IsToxic:      false,
		Level:        LevelNotToxic,
		CensoredText: text,
	}
}

func (v Verdict) Validate() error {
	if !v.IsToxic {
		if v.Level != LevelNotToxic {
			return fmt.Errorf("non-toxic verdict must have level %s, got %s", LevelNotToxic, v.Level)
		}
		if len(v.DetectedCategories) > 0 {
			return fmt.Errorf("non-toxic verdict must not carry detected categories")
		}
	}
	if v.Level == LevelVeryToxic && !v.IsToxic {
		return fmt.Errorf("level %s requires is_toxic", LevelVeryToxic)
	}
	return nil
}

// DisplayState is the UI projection contract: every composer renders one of
// three mutually exclusive states from the pipeline.
type DisplayState int

const (
	DisplayChecking DisplayState = iota
	DisplayFlagged
	DisplayClear
)

func (s DisplayState) String() string {
	switch s {
	case DisplayChecking:
		return "checking"
	case DisplayFlagged:
		return "flagged"
	default:
		return "clear"
	}
}

// categoryDisplayNames is the single category-label table shared by every
// surface that shows toxicity categories. Identifiers not listed here fall
// back to title-casing the snake_case identifier.
var categoryDisplayNames = map[string]string{
	"toxicity":        "Toxicity",
	"severe_toxicity": "Severe Toxicity",
	"obscene":         "Obscenity",
	"identity_attack": "Identity Attack",
	"insult":          "Insult",
	"threat":          "Threat",
	"sexual_explicit": "Sexually Explicit",
}

// CategoryDisplayName returns the human label for a snake_case category
// identifier.
func CategoryDisplayName(category string) string {
	if name, ok := categoryDisplayNames[category]; ok {
		return name
	}
	parts := strings.Split(category, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
