package history

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modos-studio/quotepilot-backend/pkg/db/models"
)

// Repository handles quotation revision and share persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateRevision(ctx context.Context, quotation *models.Quotation) error
	ListRevisions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Quotation, error)
	FindRevision(ctx context.Context, userID, id uuid.UUID) (*models.Quotation, error)
	LatestRevision(ctx context.Context, userID uuid.UUID) (*models.Quotation, error)
	CreateShare(ctx context.Context, share *models.QuoteShare) error
	FindShareByToken(ctx context.Context, token string) (*models.QuoteShare, error)
	IncrementShareViews(ctx context.Context, token string) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a history repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateRevision(ctx context.Context, quotation *models.Quotation) error {
	return r.db.WithContext(ctx).Create(quotation).Error
}

func (r *repository) ListRevisions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Quotation, error) {
	if limit <= 0 {
		limit = 50
	}
	var revisions []models.Quotation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&revisions).Error; err != nil {
		return nil, err
	}
	return revisions, nil
}

func (r *repository) FindRevision(ctx context.Context, userID, id uuid.UUID) (*models.Quotation, error) {
	var revision models.Quotation
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&revision).Error; err != nil {
		return nil, err
	}
	return &revision, nil
}

func (r *repository) LatestRevision(ctx context.Context, userID uuid.UUID) (*models.Quotation, error) {
	var revision models.Quotation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&revision).Error; err != nil {
		return nil, err
	}
	return &revision, nil
}

func (r *repository) CreateShare(ctx context.Context, share *models.QuoteShare) error {
	return r.db.WithContext(ctx).Create(share).Error
}

func (r *repository) FindShareByToken(ctx context.Context, token string) (*models.QuoteShare, error) {
	var share models.QuoteShare
	if err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&share).Error; err != nil {
		return nil, err
	}
	return &share, nil
}

func (r *repository) IncrementShareViews(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Model(&models.QuoteShare{}).
		Where("token = ?", token).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
