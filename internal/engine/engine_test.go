package engine

import (
	"context"
	"errors"

	"github.com/adaptivering/ringmind/internal/provider"
)

// stubLLM returns canned content or a canned error and records how it
// was called. Used by all engine tests in place of a live provider.
type stubLLM struct {
	content    string
	err        error
	calls      int
	lastModel  string
	lastPrompt string
}

func (s *stubLLM) Complete(_ context.Context, req *provider.CompletionRequest) (*provider.CompletionResponse, error) {
	s.calls++
	s.lastModel = req.Model
	if len(req.Messages) > 0 {
		s.lastPrompt = req.Messages[len(req.Messages)-1].Content
	}
	if s.err != nil {
		return nil, s.err
	}
	return &provider.CompletionResponse{Content: s.content}, nil
}

var errProviderDown = errors.New("connection refused")
