package engine

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/adaptivering/ringmind/internal/ring"
)

// noToolResult is the canonical "no tool applies" object. Field order
// matters for the emitted text, so it is a struct rather than a map.
type noToolResult struct {
	Tool  string `json:"tool"`
	Error string `json:"error,omitempty"`
}

// NoTool renders the canonical no-tool result, with an optional error
// message attached.
func NoTool(errMsg string) string {
	b, _ := json.Marshal(noToolResult{Tool: "none", Error: errMsg})
	return string(b)
}

// Router selects a tool for a free-text user request. The provider's answer
// is fence-stripped and passed through verbatim: the requested schema is
// stated in the prompt but deliberately not re-validated here, matching the
// host plugin's contract.
type Router struct {
	llm   LLMClient
	model string
}

func NewRouter(llm LLMClient, model string) *Router {
	return &Router{llm: llm, model: model}
}

// Route returns JSON text describing the chosen tool and arguments, or a
// no-tool object when the catalog is malformed or the provider fails. An
// unparsable catalog short-circuits before any provider call.
func (r *Router) Route(ctx context.Context, toolsJSON, userPrompt string) string {
	var tools []ring.Tool
	if err := json.Unmarshal([]byte(toolsJSON), &tools); err != nil {
		zap.L().Error("failed to parse tools JSON", zap.Error(err))
		return NoTool("Invalid tools JSON")
	}

	zap.L().Info("orchestrating request",
		zap.String("prompt", userPrompt),
		zap.Int("tools", len(tools)))

	prompt := OrchestrationPrompt(tools, userPrompt)
	text, err := generate(ctx, r.llm, r.model, prompt)
	if err != nil {
		return NoTool(err.Error())
	}
	return text
}
