package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/modos-studio/quotepilot-backend/pkg/config"
)

// CallRequest is one fully prepared generateContent call.
type CallRequest struct {
	Model         string
	Temperature   float64
	ThinkingLevel string
	System        string
	Instruction   string
	Attachments   []Attachment
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiThinkingConfig struct {
	ThinkingLevel string `json:"thinkingLevel"`
}

type geminiGenerationConfig struct {
	Temperature      float64               `json:"temperature"`
	ResponseMimeType string                `json:"responseMimeType"`
	ThinkingConfig   *geminiThinkingConfig `json:"thinkingConfig,omitempty"`
}

type geminiGenerateRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Client speaks the Gemini generateContent REST API directly.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Gemini client from config.
func NewClient(cfg config.GeminiConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.CallTimeout},
	}
}

// Generate performs one generateContent call and returns the concatenated
// text of the first candidate. Errors cover transport, auth, and non-200
// statuses only; the caller decides what to make of the returned text.
func (c *Client) Generate(ctx context.Context, apiKey string, req CallRequest) (string, error) {
	payload := geminiGenerateRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: req.System}}},
		Contents: []geminiContent{
			{Role: "user", Parts: requestParts(req)},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:      req.Temperature,
			ResponseMimeType: "application/json",
		},
	}
	if req.ThinkingLevel != "" {
		payload.GenerationConfig.ThinkingConfig = &geminiThinkingConfig{ThinkingLevel: req.ThinkingLevel}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	urlStr := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, req.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, urlStr, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out geminiGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 {
		return "", errors.New("empty gemini response")
	}

	var text strings.Builder
	for _, part := range out.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}

func requestParts(req CallRequest) []geminiPart {
	parts := []geminiPart{{Text: req.Instruction}}
	for _, att := range req.Attachments {
		if !attachable(att.MimeType) {
			continue
		}
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: att.MimeType,
			Data:     att.Data,
		}})
	}
	return parts
}

func attachable(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/") || mimeType == "application/pdf"
}
