package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/modos-studio/quotepilot-backend/pkg/config"
	pkgerrors "github.com/modos-studio/quotepilot-backend/pkg/errors"
	"github.com/modos-studio/quotepilot-backend/pkg/logger"
	"github.com/modos-studio/quotepilot-backend/pkg/metrics"
)

// generator is the model call surface, satisfied by *Client.
type generator interface {
	Generate(ctx context.Context, apiKey string, req CallRequest) (string, error)
}

// keyResolver looks up the caller's stored API key.
type keyResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (string, error)
}

// rateLimiter is the Redis fixed-window surface.
type rateLimiter interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// ServiceParams groups dependencies for the assistant service.
type ServiceParams struct {
	Client     generator
	Keys       keyResolver
	Limiter    rateLimiter
	Logger     *logger.Logger
	Metrics    *metrics.AssistantMetrics
	GeminiCfg  config.GeminiConfig
	RateConfig config.AssistantRateConfig
}

// Service turns free-text instructions into reconciled document updates by
// delegating to the model and defensively post-processing its output.
type Service struct {
	client  generator
	keys    keyResolver
	limiter rateLimiter
	logg    *logger.Logger
	metrics *metrics.AssistantMetrics
	gemini  config.GeminiConfig
	rate    config.AssistantRateConfig
}

// NewService builds an assistant service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Client == nil {
		return nil, errors.New("client is required")
	}
	if params.Keys == nil {
		return nil, errors.New("key resolver is required")
	}
	m := params.Metrics
	if m == nil {
		m = metrics.NewAssistantMetrics(nil)
	}
	return &Service{
		client:  params.Client,
		keys:    params.Keys,
		limiter: params.Limiter,
		logg:    params.Logger,
		metrics: m,
		gemini:  params.GeminiCfg,
		rate:    params.RateConfig,
	}, nil
}

// Chat runs one assistant turn. It fails on rate limiting, missing
// credentials, and transport or auth errors from the model; a present but
// malformed model response degrades to a message-only reply instead.
func (s *Service) Chat(ctx context.Context, userID uuid.UUID, req ChatRequest) (*ChatResponse, error) {
	if err := s.allow(ctx, userID); err != nil {
		return nil, err
	}

	apiKey, err := s.resolveKey(ctx, userID)
	if err != nil {
		return nil, err
	}

	system, err := buildSystemPrompt(req.Document)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build prompt")
	}

	model, temperature := resolveModel(req.Model)
	call := CallRequest{
		Model:         model,
		Temperature:   temperature,
		ThinkingLevel: resolveThinkingLevel(req.Model, req.ThinkingLevel),
		System:        system,
		Instruction:   instructionPrefix + req.Instruction,
		Attachments:   req.Attachments,
	}

	start := time.Now()
	raw, err := s.client.Generate(ctx, apiKey, call)
	s.metrics.ObserveDuration(call.Model, time.Since(start))
	if err != nil {
		s.metrics.IncFailure(call.Model)
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "model call failed")
	}

	reply, structured := parseReply(raw)
	if !structured {
		s.metrics.IncParseFallback(call.Model)
		if s.logg != nil {
			s.logg.Warn(ctx, "assistant reply was not valid json, forwarding as message")
		}
		return &ChatResponse{Message: reply.Message}, nil
	}

	resp := &ChatResponse{Message: reply.Message}
	if len(reply.UpdatedQuote) > 0 {
		merged, mergeErr := mergeDocument(req.Document, reply.UpdatedQuote)
		if mergeErr != nil {
			s.metrics.IncParseFallback(call.Model)
			if s.logg != nil {
				s.logg.Warn(ctx, "assistant document payload rejected: "+mergeErr.Error())
			}
		} else {
			resp.UpdatedDocument = &merged
		}
	}

	s.metrics.IncSuccess(call.Model)
	return resp, nil
}

func (s *Service) allow(ctx context.Context, userID uuid.UUID) error {
	if s.limiter == nil || s.rate.Limit <= 0 {
		return nil
	}
	allowed, _, err := s.limiter.FixedWindowAllow(ctx, "assistant:"+userID.String(), int64(s.rate.Limit), s.rate.Window)
	if err != nil {
		// Redis trouble should not take the assistant down with it.
		if s.logg != nil {
			s.logg.Warn(ctx, "assistant rate limit check failed, allowing request")
		}
		return nil
	}
	if !allowed {
		return pkgerrors.New(pkgerrors.CodeRateLimit, "assistant request limit reached, try again shortly")
	}
	return nil
}

func (s *Service) resolveKey(ctx context.Context, userID uuid.UUID) (string, error) {
	key, err := s.keys.Resolve(ctx, userID)
	if err != nil {
		return "", err
	}
	if key == "" {
		key = s.gemini.SystemKey
	}
	if key == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "no gemini api key configured")
	}
	return key, nil
}
