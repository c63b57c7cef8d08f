package history

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modos-studio/quotepilot-backend/internal/quote"
	"github.com/modos-studio/quotepilot-backend/pkg/config"
	pkgerrors "github.com/modos-studio/quotepilot-backend/pkg/errors"
	"github.com/modos-studio/quotepilot-backend/pkg/logger"
	"github.com/modos-studio/quotepilot-backend/pkg/security"
)

const shareTokenBytes = 16

// viewCounter is the optional Redis surface used for fast view counts.
type viewCounter interface {
	Incr(ctx context.Context, key string) (int64, error)
	ShareViewKey(token string) string
}

// ServiceParams groups dependencies for the history service.
type ServiceParams struct {
	Repo        Repository
	Logger      *logger.Logger
	ViewCounter viewCounter
	ShareConfig config.ShareConfig
	QuoteConfig config.QuoteConfig
}

// Service owns revision history, quote numbering, and public sharing.
type Service struct {
	repo     Repository
	logg     *logger.Logger
	views    viewCounter
	shareCfg config.ShareConfig
	quoteCfg config.QuoteConfig
}

// NewService builds a history service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	return &Service{
		repo:     params.Repo,
		logg:     params.Logger,
		views:    params.ViewCounter,
		shareCfg: params.ShareConfig,
		quoteCfg: params.QuoteConfig,
	}, nil
}

// Template returns a fresh working document. The quote number continues the
// user's sequence when they have saved revisions before, otherwise the
// configured starting number is used.
func (s *Service) Template(ctx context.Context, userID uuid.UUID) (quote.Document, error) {
	doc := quote.DefaultDocument()
	doc.QuoteNo = s.quoteCfg.DefaultNumber

	latest, err := s.repo.LatestRevision(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return doc, nil
		}
		return quote.Document{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load latest revision")
	}

	if next := NextNumber(latest.QuoteNo); next != "" {
		doc.QuoteNo = next
	}
	return doc, nil
}

// SaveSnapshot appends one revision. The document is recalculated before
// persisting so stored totals are always consistent.
func (s *Service) SaveSnapshot(ctx context.Context, userID uuid.UUID, req SaveRequest) (*RevisionDTO, error) {
	doc := req.Document.Clone()
	quote.Recalculate(&doc)

	revision := newRevisionModel(userID, doc, req)
	if err := s.repo.CreateRevision(ctx, revision); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist revision")
	}

	return &RevisionDTO{
		ID:        revision.ID,
		QuoteNo:   revision.QuoteNo,
		Title:     revision.Title,
		Document:  doc,
		Tags:      append([]string(nil), revision.Tags...),
		CreatedAt: revision.CreatedAt,
	}, nil
}

// List returns the user's most recent revisions, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, limit int) ([]RevisionSummary, error) {
	revisions, err := s.repo.ListRevisions(ctx, userID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list revisions")
	}

	out := make([]RevisionSummary, 0, len(revisions))
	for _, rev := range revisions {
		out = append(out, RevisionSummary{
			ID:         rev.ID,
			QuoteNo:    rev.QuoteNo,
			Title:      rev.Title,
			GrandTotal: rev.Document.GrandTotal,
			Tags:       append([]string(nil), rev.Tags...),
			CreatedAt:  rev.CreatedAt,
		})
	}
	return out, nil
}

// Get loads one full revision owned by the user.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*RevisionDTO, error) {
	revision, err := s.repo.FindRevision(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "revision not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load revision")
	}
	return &RevisionDTO{
		ID:        revision.ID,
		QuoteNo:   revision.QuoteNo,
		Title:     revision.Title,
		Document:  revision.Document.Document,
		Tags:      append([]string(nil), revision.Tags...),
		CreatedAt: revision.CreatedAt,
	}, nil
}

// Share freezes the document into a public snapshot under a fresh token. Any
// shared-suffix marker already present on the quote number is stripped first
// so repeated sharing never accumulates suffixes.
func (s *Service) Share(ctx context.Context, userID uuid.UUID, req ShareRequest) (*ShareDTO, error) {
	token, err := security.GenerateToken(shareTokenBytes)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint share token")
	}

	doc := req.Document.Clone()
	quote.Recalculate(&doc)
	doc.QuoteNo = SharedQuoteNo(doc.QuoteNo, token)

	share := newShareModel(userID, token, doc)
	if err := s.repo.CreateShare(ctx, share); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist share")
	}

	return &ShareDTO{
		Token:     token,
		QuoteNo:   share.QuoteNo,
		URL:       s.publicURL(token),
		CreatedAt: share.CreatedAt,
	}, nil
}

// ResolveShared serves a public snapshot by token. View counting is best
// effort: a failed counter update never blocks the read.
func (s *Service) ResolveShared(ctx context.Context, token string) (*SharedView, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "share not found")
	}

	share, err := s.repo.FindShareByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "share not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load share")
	}

	views := share.ViewCount + 1
	if err := s.repo.IncrementShareViews(ctx, token); err != nil && s.logg != nil {
		s.logg.Warn(ctx, fmt.Sprintf("share view increment failed: %v", err))
	}
	if s.views != nil {
		if _, err := s.views.Incr(ctx, s.views.ShareViewKey(token)); err != nil && s.logg != nil {
			s.logg.Warn(ctx, fmt.Sprintf("share view counter failed: %v", err))
		}
	}

	return &SharedView{
		QuoteNo:   share.QuoteNo,
		Document:  share.Document.Document,
		ViewCount: views,
		SharedAt:  share.CreatedAt,
	}, nil
}

func (s *Service) publicURL(token string) string {
	base := strings.TrimRight(s.shareCfg.PublicBaseURL, "/")
	return base + "/share/" + url.PathEscape(token)
}
