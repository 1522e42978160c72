package moderation

import "errors"

var (
	ErrEmptyContent   = errors.New("content must not be empty")
	ErrOriginalUnset  = errors.New("censored record must carry the original text")
	ErrOriginalStale  = errors.New("original text must only be set when the displayed text was censored")
	ErrVerdictInvalid = errors.New("record verdict violates level invariants")
)

// ContentRecord is the unit handed to the persistence collaborator for a post
// or comment. It is constructed once at submit time and never mutated; edits
// produce a new record.
type ContentRecord struct {
	// DisplayedText is what readers see. Never empty after a successful
	// submit.
	DisplayedText string `json:"displayed_text"`

	// OriginalText is the exact pre-censoring input. Set iff the verdict
	// flagged the content as toxic. When censoring itself failed the
	// displayed text may equal the original while OriginalText stays set.
	OriginalText string `json:"original_text,omitempty"`

	// Verdict is absent only when classification could not be determined
	// even via fallback.
	Verdict *Verdict `json:"verdict,omitempty"`
}

// Censored reports whether the displayed text differs from the user's input.
func (r ContentRecord) Censored() bool {
	return r.OriginalText != ""
}

func (r ContentRecord) Validate() error {
	if r.DisplayedText == "" {
		return ErrEmptyContent
	}
	if r.Verdict != nil {
		if err := r.Verdict.Validate(); err != nil {
			return ErrVerdictInvalid
		}
		if r.Verdict.IsToxic && r.OriginalText == "" {
			return ErrOriginalUnset
		}
		if !r.Verdict.IsToxic && r.OriginalText != "" {
			return ErrOriginalStale
		}
	}
	return nil
}

// DisplayState projects the record onto the three-state UI contract. A
// persisted record is always settled, so it is never DisplayChecking.
func (r ContentRecord) DisplayState() DisplayState {
	if r.Verdict != nil && r.Verdict.IsToxic {
		return DisplayFlagged
	}
	return DisplayClear
}
