package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/modos-studio/quotepilot-backend/pkg/types"
)

// QuoteShare is an immutable public snapshot of a quotation, addressable by
// an unguessable token. The snapshot is frozen at share time so later edits
// to the live quote never leak into an already shared link.
type QuoteShare struct {
	ID        uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID           `gorm:"type:uuid;column:user_id;not null;index"`
	Token     string              `gorm:"column:token;not null;uniqueIndex"`
	QuoteNo   string              `gorm:"column:quote_no;not null"`
	Document  types.QuoteDocument `gorm:"type:jsonb;column:document;not null"`
	ViewCount int64               `gorm:"column:view_count;not null;default:0"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the name used by the migrations.
func (QuoteShare) TableName() string { return "quote_shares" }
