package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	geminiDefaultBaseURL = "https://generativelanguage.googleapis.com"
	geminiAPIVersion     = "v1beta"
)

// GeminiProvider implements the Provider interface for the Google
// generateContent API.
type GeminiProvider struct {
	id      string
	baseURL string
	apiKey  string
	client  *http.Client
}

// GeminiOption configures a GeminiProvider.
type GeminiOption func(*GeminiProvider)

// WithGeminiHTTPClient sets a custom HTTP client.
func WithGeminiHTTPClient(c *http.Client) GeminiOption {
	return func(p *GeminiProvider) { p.client = c }
}

// NewGeminiProvider creates a provider for the generateContent API.
func NewGeminiProvider(id, baseURL, apiKey string, opts ...GeminiOption) *GeminiProvider {
	if baseURL == "" {
		baseURL = geminiDefaultBaseURL
	}
	p := &GeminiProvider{
		id:      id,
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *GeminiProvider) ID() string { return p.id }

// -- Gemini wire types --

type gemRequest struct {
	Contents []gemContent `json:"contents"`
}

type gemContent struct {
	Role  string    `json:"role"`
	Parts []gemPart `json:"parts"`
}

type gemPart struct {
	Text string `json:"text"`
}

type gemResponse struct {
	Candidates []gemCandidate `json:"candidates"`
	Error      *gemError      `json:"error,omitempty"`
}

type gemCandidate struct {
	Content gemContent `json:"content"`
}

type gemError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Complete sends a single generateContent request.
func (p *GeminiProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	gemReq := p.toGemRequest(req)

	body, err := json.Marshal(gemReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/models/%s:generateContent?key=%s",
		p.baseURL, geminiAPIVersion, req.Model, url.QueryEscape(p.apiKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini api error (status %d): %s", httpResp.StatusCode, string(respBody))
	}

	var gemResp gemResponse
	if err := json.Unmarshal(respBody, &gemResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if gemResp.Error != nil {
		return nil, fmt.Errorf("gemini error [%s]: %s", gemResp.Error.Status, gemResp.Error.Message)
	}
	if len(gemResp.Candidates) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	return &CompletionResponse{
		Model:   req.Model,
		Content: extractGemText(gemResp.Candidates[0].Content.Parts),
	}, nil
}

func (p *GeminiProvider) toGemRequest(req *CompletionRequest) gemRequest {
	contents := make([]gemContent, 0, len(req.Messages))
	for _, m := range req.Messages {
		contents = append(contents, gemContent{
			Role:  gemRole(m.Role),
			Parts: []gemPart{{Text: m.Content}},
		})
	}
	return gemRequest{Contents: contents}
}

// gemRole maps provider roles onto the two roles the generateContent
// API accepts.
func gemRole(r Role) string {
	if r == RoleAssistant {
		return "model"
	}
	return "user"
}

func extractGemText(parts []gemPart) string {
	var buf bytes.Buffer
	for _, part := range parts {
		buf.WriteString(part.Text)
	}
	return buf.String()
}
