package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

const ReferenceTypeOrder = "order"

// Comment is an audit note on a ledger entity, visible to the shop contact
// when flagged.
type Comment struct {
	ID                  snowflake.ID `json:"id" gorm:"primaryKey"`
	ReferenceType       string       `json:"reference_type" gorm:"type:text;not null;index:idx_order_comments_ref"`
	ReferenceValue      string       `json:"reference_value" gorm:"type:text;not null;index:idx_order_comments_ref"`
	Text                string       `json:"text" gorm:"type:text;not null"`
	IsVisibleForContact bool         `json:"is_visible_for_contact" gorm:"not null"`
	CreatedAt           time.Time    `json:"created_at" gorm:"not null"`
}

func (Comment) TableName() string { return "order_comments" }

// Service writes audit comments best-effort: failures are logged, never
// propagated to the reconciliation flow.
type Service interface {
	Create(ctx context.Context, comment Comment)
}
