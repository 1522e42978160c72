package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	KindComment = "comment"
	KindFlagged = "content_flagged"
)

// Notification tells a user something happened to their content, e.g. a new
// comment on their post or one of their submissions being flagged.
type Notification struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipientID string    `json:"recipient_id" gorm:"index"`
	ActorName   string    `json:"actor_name"`
	Kind        string    `json:"kind"`
	PostID      uuid.UUID `json:"post_id" gorm:"type:uuid"`
	Message     string    `json:"message"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	n.CreatedAt = time.Now()
	return n.Validate()
}

func (n *Notification) Validate() error {
	if n.RecipientID == "" {
		return fmt.Errorf("recipient_id is required")
	}
	if n.Kind != KindComment && n.Kind != KindFlagged {
		return fmt.Errorf("invalid notification kind: %s", n.Kind)
	}
	return nil
}

func (n *Notification) TableName() string {
	return "public.notifications"
}
