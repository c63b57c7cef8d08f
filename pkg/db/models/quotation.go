package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/modos-studio/quotepilot-backend/pkg/types"
)

// Quotation is one saved revision of a quote document. Revisions are
// append-only; the newest row per quote number is the live version.
type Quotation struct {
	ID         uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID     uuid.UUID            `gorm:"type:uuid;column:user_id;not null;index"`
	QuoteNo    string               `gorm:"column:quote_no;not null;index"`
	Title      string               `gorm:"column:title;not null"`
	Document   types.QuoteDocument  `gorm:"type:jsonb;column:document;not null"`
	Transcript types.ChatTranscript `gorm:"type:jsonb;column:transcript;not null;default:'[]'"`
	Tags       pq.StringArray       `gorm:"type:text[];column:tags;not null;default:ARRAY[]::text[]"`
	CreatedAt  time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the plural used by the migrations.
func (Quotation) TableName() string { return "quotations" }
