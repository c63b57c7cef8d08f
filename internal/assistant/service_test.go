package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/modos-studio/quotepilot-backend/internal/quote"
	"github.com/modos-studio/quotepilot-backend/pkg/config"
	pkgerrors "github.com/modos-studio/quotepilot-backend/pkg/errors"
)

type stubGenerator struct {
	lastKey  string
	lastCall CallRequest
	reply    string
	err      error
}

func (s *stubGenerator) Generate(_ context.Context, apiKey string, req CallRequest) (string, error) {
	s.lastKey = apiKey
	s.lastCall = req
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type stubKeys struct {
	key string
	err error
}

func (s *stubKeys) Resolve(context.Context, uuid.UUID) (string, error) {
	return s.key, s.err
}

type stubLimiter struct {
	allowed bool
	err     error
	scope   string
}

func (s *stubLimiter) FixedWindowAllow(_ context.Context, scope string, _ int64, _ time.Duration) (bool, int64, error) {
	s.scope = scope
	return s.allowed, 1, s.err
}

func newTestService(t *testing.T, gen *stubGenerator, keys *stubKeys, limiter *stubLimiter) *Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Client:     gen,
		Keys:       keys,
		Limiter:    limiter,
		GeminiCfg:  config.GeminiConfig{SystemKey: "system-key"},
		RateConfig: config.AssistantRateConfig{Limit: 10, Window: time.Minute},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestChatAppliesDocumentUpdate(t *testing.T) {
	gen := &stubGenerator{reply: `{
		"message": "Đã tăng giá quay phim",
		"updatedQuote": {
			"groups": [{"id": "01", "title": "SẢN XUẤT", "items": [
				{"description": "Quay phim", "unit": "Gói", "quantity": 1, "unitPrice": 20000000}
			]}]
		}
	}`}
	keys := &stubKeys{key: "user-key"}
	limiter := &stubLimiter{allowed: true}
	svc := newTestService(t, gen, keys, limiter)

	userID := uuid.New()
	resp, err := svc.Chat(context.Background(), userID, ChatRequest{
		Instruction: "tăng giá quay phim lên 20 triệu",
		Document:    baselineDocument(),
		Model:       ModelPro,
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if resp.Message != "Đã tăng giá quay phim" {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.UpdatedDocument == nil {
		t.Fatalf("expected an updated document")
	}
	if got := resp.UpdatedDocument.GrandTotal; got != 22000000 {
		t.Fatalf("grandTotal = %d", got)
	}

	if gen.lastKey != "user-key" {
		t.Fatalf("api key = %q", gen.lastKey)
	}
	if gen.lastCall.Model != geminiProModel || gen.lastCall.Temperature != proTemperature {
		t.Fatalf("call = %q temp %v", gen.lastCall.Model, gen.lastCall.Temperature)
	}
	if gen.lastCall.ThinkingLevel != ThinkingHigh {
		t.Fatalf("thinking level = %q", gen.lastCall.ThinkingLevel)
	}
	if !strings.Contains(gen.lastCall.System, `"QT-2026-005"`) {
		t.Fatalf("system prompt does not embed the current document")
	}
	if !strings.HasSuffix(limiter.scope, userID.String()) {
		t.Fatalf("rate limit scope = %q", limiter.scope)
	}
}

func TestChatMalformedReplyBecomesMessageOnly(t *testing.T) {
	raw := "Xin lỗi, tôi không thể xử lý yêu cầu này."
	gen := &stubGenerator{reply: raw}
	svc := newTestService(t, gen, &stubKeys{key: "user-key"}, &stubLimiter{allowed: true})

	resp, err := svc.Chat(context.Background(), uuid.New(), ChatRequest{
		Instruction: "làm gì đó",
		Document:    baselineDocument(),
	})
	if err != nil {
		t.Fatalf("malformed reply must not be a hard failure: %v", err)
	}
	if resp.Message != raw {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.UpdatedDocument != nil {
		t.Fatalf("unexpected document update")
	}
}

func TestChatBadDocumentPayloadDegradesGracefully(t *testing.T) {
	gen := &stubGenerator{reply: `{"message": "ok", "updatedQuote": [1, 2, 3]}`}
	svc := newTestService(t, gen, &stubKeys{key: "user-key"}, &stubLimiter{allowed: true})

	resp, err := svc.Chat(context.Background(), uuid.New(), ChatRequest{
		Instruction: "thử",
		Document:    baselineDocument(),
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if resp.Message != "ok" || resp.UpdatedDocument != nil {
		t.Fatalf("expected message-only fallback, got %+v", resp)
	}
}

func TestChatTransportFailureSurfaces(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	svc := newTestService(t, gen, &stubKeys{key: "user-key"}, &stubLimiter{allowed: true})

	_, err := svc.Chat(context.Background(), uuid.New(), ChatRequest{
		Instruction: "thử",
		Document:    quote.DefaultDocument(),
	})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeUpstream {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestChatRateLimited(t *testing.T) {
	svc := newTestService(t, &stubGenerator{reply: `{"message": "x"}`}, &stubKeys{key: "k"}, &stubLimiter{allowed: false})

	_, err := svc.Chat(context.Background(), uuid.New(), ChatRequest{Instruction: "thử"})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeRateLimit {
		t.Fatalf("expected rate limit error, got %v", err)
	}
}

func TestChatLimiterOutageFailsOpen(t *testing.T) {
	gen := &stubGenerator{reply: `{"message": "vẫn chạy"}`}
	svc := newTestService(t, gen, &stubKeys{key: "k"}, &stubLimiter{allowed: false, err: errors.New("redis down")})

	resp, err := svc.Chat(context.Background(), uuid.New(), ChatRequest{Instruction: "thử"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if resp.Message != "vẫn chạy" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestChatFallsBackToSystemKey(t *testing.T) {
	gen := &stubGenerator{reply: `{"message": "x"}`}
	svc := newTestService(t, gen, &stubKeys{}, &stubLimiter{allowed: true})

	if _, err := svc.Chat(context.Background(), uuid.New(), ChatRequest{Instruction: "thử"}); err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if gen.lastKey != "system-key" {
		t.Fatalf("api key = %q", gen.lastKey)
	}
}

func TestChatNoKeyAnywhere(t *testing.T) {
	svc, err := NewService(ServiceParams{
		Client: &stubGenerator{},
		Keys:   &stubKeys{},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Chat(context.Background(), uuid.New(), ChatRequest{Instruction: "thử"})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestChatDocumentOnlyReply(t *testing.T) {
	gen := &stubGenerator{reply: `{
		"updatedQuote": {
			"customerName": "Chị Lan"
		}
	}`}
	svc := newTestService(t, gen, &stubKeys{key: "user-key"}, &stubLimiter{allowed: true})

	resp, err := svc.Chat(context.Background(), uuid.New(), ChatRequest{
		Instruction: "đổi tên khách hàng thành Chị Lan",
		Document:    baselineDocument(),
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if resp.Message != "" {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.UpdatedDocument == nil {
		t.Fatal("expected an updated document")
	}
	if resp.UpdatedDocument.CustomerName != "Chị Lan" {
		t.Fatalf("customerName = %q", resp.UpdatedDocument.CustomerName)
	}
}
