package post

import (
	"fmt"
	"time"

	"github.com/feedguard/feedguard/pkg/domain"
	"github.com/feedguard/feedguard/pkg/domain/moderation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a feed entry. The moderation columns follow the content record
// contract: OriginalText is set only when the displayed text was censored.
type Post struct {
	ID             uuid.UUID           `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AuthorID       string              `json:"author_id" gorm:"index"`
	AuthorName     string              `json:"author_name"`
	AuthorPhotoURL string              `json:"author_photo_url"`
	DisplayedText  string              `json:"displayed_text"`
	OriginalText   string              `json:"original_text,omitempty"`
	Verdict        *domain.VerdictJSON `json:"verdict,omitempty" gorm:"type:jsonb"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	return p.Validate()
}

func (p *Post) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return p.Validate()
}

func (p *Post) Validate() error {
	if p.AuthorID == "" {
		return fmt.Errorf("author_id is required")
	}
	return p.Record().Validate()
}

// Record projects the entity onto the moderation contract.
func (p *Post) Record() moderation.ContentRecord {
	record := moderation.ContentRecord{
		DisplayedText: p.DisplayedText,
		OriginalText:  p.OriginalText,
	}
	if p.Verdict != nil {
		verdict := moderation.Verdict(*p.Verdict)
		record.Verdict = &verdict
	}
	return record
}

// SetRecord copies a resolved content record into the entity columns.
func (p *Post) SetRecord(record moderation.ContentRecord) {
	p.DisplayedText = record.DisplayedText
	p.OriginalText = record.OriginalText
	if record.Verdict != nil {
		verdict := domain.VerdictJSON(*record.Verdict)
		p.Verdict = &verdict
	} else {
		p.Verdict = nil
	}
}

func (p *Post) TableName() string {
	return "public.posts"
}
