package models

import (
	"time"

	"github.com/google/uuid"
)

// APICredential stores a user's own generative model API key. One row per
// user and provider. The key is kept server side and never returned to the
// browser after it has been saved.
type APICredential struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;column:user_id;not null;uniqueIndex:idx_api_credentials_user_provider"`
	Provider  string    `gorm:"column:provider;not null;uniqueIndex:idx_api_credentials_user_provider"`
	APIKey    string    `gorm:"column:api_key;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the name used by the migrations.
func (APICredential) TableName() string { return "api_credentials" }
