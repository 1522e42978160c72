package classifier

import "github.com/feedguard/feedguard/pkg/domain/moderation"

type predictRequest struct {
	Text string `json:"text"`
}

type categoryResult struct {
	Probability float64 `json:"probability"`
	Prediction  bool    `json:"prediction"`
}

type predictSummary struct {
	IsToxic            bool     `json:"is_toxic"`
	ToxicityLevel      string   `json:"toxicity_level"`
	DetectedCategories []string `json:"detected_categories"`
}

type predictResponse struct {
	Results      map[string]categoryResult `json:"results"`
	Summary      predictSummary            `json:"summary"`
	CensoredText string                    `json:"censored_text,omitempty"`
}

type censorRequest struct {
	Text  string `json:"text"`
	Level string `json:"level,omitempty"`
}

type censorResponse struct {
	OriginalText string `json:"original_text"`
	CensoredText string `json:"censored_text"`
}

// verdictFromPredict maps the wire payload into a Verdict. The service owns
// the toxicity judgment; only per-category detection flags are derived
// locally from the threshold.
func verdictFromPredict(resp predictResponse, threshold float64) moderation.Verdict {
	verdict := moderation.Verdict{
		IsToxic:            resp.Summary.IsToxic,
		Level:              moderation.ParseLevel(resp.Summary.ToxicityLevel),
		DetectedCategories: resp.Summary.DetectedCategories,
		CensoredText:       resp.CensoredText,
	}
	if len(resp.Results) > 0 {
		verdict.CategoryScores = make(map[string]moderation.CategoryScore, len(resp.Results))
		for category, result := range resp.Results {
			verdict.CategoryScores[category] = moderation.CategoryScore{
				Probability: result.Probability,
				Detected:    result.Probability >= threshold,
			}
		}
	}
	return verdict
}
