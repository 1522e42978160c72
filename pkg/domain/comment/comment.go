package comment

import (
	"fmt"
	"time"

	"github.com/feedguard/feedguard/pkg/domain"
	"github.com/feedguard/feedguard/pkg/domain/moderation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a reply attached to a post. It carries the same moderation
// columns as the post itself.
type Comment struct {
	ID             uuid.UUID           `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID         uuid.UUID           `json:"post_id" gorm:"type:uuid;index"`
	AuthorID       string              `json:"author_id" gorm:"index"`
	AuthorName     string              `json:"author_name"`
	AuthorPhotoURL string              `json:"author_photo_url"`
	DisplayedText  string              `json:"displayed_text"`
	OriginalText   string              `json:"original_text,omitempty"`
	Verdict        *domain.VerdictJSON `json:"verdict,omitempty" gorm:"type:jsonb"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	return c.Validate()
}

func (c *Comment) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

func (c *Comment) Validate() error {
	if c.PostID == uuid.Nil {
		return fmt.Errorf("post_id is required")
	}
	if c.AuthorID == "" {
		return fmt.Errorf("author_id is required")
	}
	return c.Record().Validate()
}

func (c *Comment) Record() moderation.ContentRecord {
	record := moderation.ContentRecord{
		DisplayedText: c.DisplayedText,
		OriginalText:  c.OriginalText,
	}
	if c.Verdict != nil {
		verdict := moderation.Verdict(*c.Verdict)
		record.Verdict = &verdict
	}
	return record
}

func (c *Comment) SetRecord(record moderation.ContentRecord) {
	c.DisplayedText = record.DisplayedText
	c.OriginalText = record.OriginalText
	if record.Verdict != nil {
		verdict := domain.VerdictJSON(*record.Verdict)
		c.Verdict = &verdict
	} else {
		c.Verdict = nil
	}
}

func (c *Comment) TableName() string {
	return "public.comments"
}
