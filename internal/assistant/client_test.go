package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/modos-studio/quotepilot-backend/pkg/config"
)

func TestClientGenerate(t *testing.T) {
	var gotPath, gotKey string
	var gotPayload geminiGenerateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": `{"message": `},
					{"text": `"hello"}`},
				}}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(config.GeminiConfig{BaseURL: server.URL, CallTimeout: 5 * time.Second})
	text, err := client.Generate(context.Background(), "secret", CallRequest{
		Model:         geminiFlashModel,
		Temperature:   flashTemperature,
		ThinkingLevel: ThinkingLow,
		System:        "system text",
		Instruction:   "user text",
		Attachments: []Attachment{
			{MimeType: "image/png", Data: "aGk="},
			{MimeType: "text/plain", Data: "ignored"},
			{MimeType: "application/pdf", Data: "cGRm"},
		},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if text != `{"message": "hello"}` {
		t.Fatalf("text = %q", text)
	}
	if want := "/v1beta/models/" + geminiFlashModel + ":generateContent"; gotPath != want {
		t.Fatalf("path = %q", gotPath)
	}
	if gotKey != "secret" {
		t.Fatalf("api key header = %q", gotKey)
	}
	if gotPayload.SystemInstruction == nil || gotPayload.SystemInstruction.Parts[0].Text != "system text" {
		t.Fatalf("system instruction missing")
	}
	if gotPayload.GenerationConfig.ResponseMimeType != "application/json" {
		t.Fatalf("responseMimeType = %q", gotPayload.GenerationConfig.ResponseMimeType)
	}
	if gotPayload.GenerationConfig.ThinkingConfig == nil || gotPayload.GenerationConfig.ThinkingConfig.ThinkingLevel != ThinkingLow {
		t.Fatalf("thinking config missing")
	}

	parts := gotPayload.Contents[0].Parts
	if len(parts) != 3 {
		t.Fatalf("parts = %d, text/plain attachment should be dropped", len(parts))
	}
	if parts[0].Text != "user text" {
		t.Fatalf("instruction part = %q", parts[0].Text)
	}
	if parts[1].InlineData == nil || parts[1].InlineData.MimeType != "image/png" || parts[1].InlineData.Data != "aGk=" {
		t.Fatalf("image attachment not forwarded: %+v", parts[1])
	}
	if parts[2].InlineData == nil || parts[2].InlineData.MimeType != "application/pdf" {
		t.Fatalf("pdf attachment not forwarded: %+v", parts[2])
	}
}

func TestClientGenerateNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"message": "API key not valid"}}`))
	}))
	defer server.Close()

	client := NewClient(config.GeminiConfig{BaseURL: server.URL, CallTimeout: 5 * time.Second})
	_, err := client.Generate(context.Background(), "bad", CallRequest{Model: geminiFlashModel})
	if err == nil {
		t.Fatalf("expected error for 403")
	}
	if !strings.Contains(err.Error(), "403") || !strings.Contains(err.Error(), "API key not valid") {
		t.Fatalf("error = %v", err)
	}
}

func TestClientGenerateEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewClient(config.GeminiConfig{BaseURL: server.URL, CallTimeout: 5 * time.Second})
	if _, err := client.Generate(context.Background(), "k", CallRequest{Model: geminiFlashModel}); err == nil {
		t.Fatalf("expected error for empty candidates")
	}
}
