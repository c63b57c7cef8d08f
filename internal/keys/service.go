package keys

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modos-studio/quotepilot-backend/pkg/db"
	"github.com/modos-studio/quotepilot-backend/pkg/db/models"
	pkgerrors "github.com/modos-studio/quotepilot-backend/pkg/errors"
)

// ProviderGemini is the only credential provider supported today.
const ProviderGemini = "gemini"

// SetKeyRequest carries a user supplied model API key.
type SetKeyRequest struct {
	APIKey string `json:"api_key" validate:"required,min=10"`
}

// KeyStatus reports whether a key is on file without revealing it.
type KeyStatus struct {
	Provider   string `json:"provider"`
	Configured bool   `json:"configured"`
	Hint       string `json:"hint,omitempty"`
}

// Service stores and resolves per-user model credentials.
type Service struct {
	repo Repository
}

// ServiceParams groups dependencies for the keys service.
type ServiceParams struct {
	Repo Repository
}

// NewService builds a credentials service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	return &Service{repo: params.Repo}, nil
}

// Set upserts the user's key for the provider.
func (s *Service) Set(ctx context.Context, userID uuid.UUID, req SetKeyRequest) error {
	key := strings.TrimSpace(req.APIKey)
	if key == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "api key is required")
	}
	if err := s.repo.Upsert(ctx, &models.APICredential{
		UserID:   userID,
		Provider: ProviderGemini,
		APIKey:   key,
	}); err != nil {
		if db.IsUniqueViolation(err, "idx_api_credentials_user_provider") {
			return pkgerrors.New(pkgerrors.CodeConflict, "credential already exists")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store credential")
	}
	return nil
}

// Status reports whether the user has a key on file, with a masked hint.
func (s *Service) Status(ctx context.Context, userID uuid.UUID) (*KeyStatus, error) {
	cred, err := s.repo.Find(ctx, userID, ProviderGemini)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &KeyStatus{Provider: ProviderGemini, Configured: false}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load credential")
	}
	return &KeyStatus{
		Provider:   ProviderGemini,
		Configured: true,
		Hint:       maskKey(cred.APIKey),
	}, nil
}

// Resolve returns the user's stored key, or empty when none is configured.
func (s *Service) Resolve(ctx context.Context, userID uuid.UUID) (string, error) {
	cred, err := s.repo.Find(ctx, userID, ProviderGemini)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load credential")
	}
	return cred.APIKey, nil
}

// Delete removes the user's stored key.
func (s *Service) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, ProviderGemini); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete credential")
	}
	return nil
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
