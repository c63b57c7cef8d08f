package keys

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/modos-studio/quotepilot-backend/pkg/db/models"
)

// Repository handles credential persistence.
type Repository interface {
	Upsert(ctx context.Context, cred *models.APICredential) error
	Find(ctx context.Context, userID uuid.UUID, provider string) (*models.APICredential, error)
	Delete(ctx context.Context, userID uuid.UUID, provider string) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a credentials repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, cred *models.APICredential) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{"api_key", "updated_at"}),
		}).
		Create(cred).Error
}

func (r *repository) Find(ctx context.Context, userID uuid.UUID, provider string) (*models.APICredential, error) {
	var cred models.APICredential
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		First(&cred).Error; err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *repository) Delete(ctx context.Context, userID uuid.UUID, provider string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		Delete(&models.APICredential{}).Error
}
