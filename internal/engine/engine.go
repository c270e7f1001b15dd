// Package engine implements the three intelligence operations behind the
// actions ring: action suggestion, tool orchestration, and interaction
// workflow analysis. Each operation is a single provider round trip with a
// sanitize/validate pass; every failure resolves to a deterministic fallback
// so callers always receive a well-formed result.
package engine

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adaptivering/ringmind/internal/provider"
)

// LLMClient is the narrow slice of the provider surface the engines need.
type LLMClient interface {
	Complete(ctx context.Context, req *provider.CompletionRequest) (*provider.CompletionResponse, error)
}

// generate runs one provider round trip for a prompt and returns the
// sanitized response text. A per-request ID ties log lines together.
func generate(ctx context.Context, llm LLMClient, model, prompt string) (string, error) {
	requestID := uuid.NewString()
	zap.L().Debug("requesting completion",
		zap.String("request_id", requestID),
		zap.String("model", model),
		zap.Int("prompt_len", len(prompt)))

	resp, err := llm.Complete(ctx, &provider.CompletionRequest{
		Model:    model,
		Messages: []provider.Message{{Role: provider.RoleUser, Content: prompt}},
	})
	if err != nil {
		zap.L().Warn("completion failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		return "", err
	}

	zap.L().Debug("completion received",
		zap.String("request_id", requestID),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
		zap.Int("response_len", len(resp.Content)))
	return Sanitize(resp.Content), nil
}
