package engine

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/adaptivering/ringmind/internal/ring"
)

// Suggester generates a full ring of 8 actions for an application. Any
// failure along the way resolves to ring.Defaults; Suggest never errors.
type Suggester struct {
	llm      LLMClient
	model    string
	maxTools int
}

func NewSuggester(llm LLMClient, model string, maxToolsPerServer int) *Suggester {
	return &Suggester{llm: llm, model: model, maxTools: maxToolsPerServer}
}

// Suggest builds the suggestion prompt from the app name and the
// JSON-encoded MCP server list, runs one completion, and returns either the
// validated 8-action result or the default set. Malformed server JSON is
// treated as an empty server list, not a failure.
func (s *Suggester) Suggest(ctx context.Context, appName, serversJSON string) []ring.Action {
	var servers []ring.MCPServer
	if serversJSON != "" {
		if err := json.Unmarshal([]byte(serversJSON), &servers); err != nil {
			zap.L().Warn("failed to parse MCP servers JSON, assuming empty",
				zap.String("app", appName),
				zap.Error(err))
			servers = nil
		}
	}

	zap.L().Info("requesting action suggestions",
		zap.String("app", appName),
		zap.Int("mcp_servers", len(servers)))

	prompt := SuggestionPrompt(appName, servers, s.maxTools)
	text, err := generate(ctx, s.llm, s.model, prompt)
	if err != nil {
		return ring.Defaults(appName)
	}

	var actions []ring.Action
	if err := json.Unmarshal([]byte(text), &actions); err != nil {
		zap.L().Warn("suggestion response is not a valid action array",
			zap.String("app", appName),
			zap.Error(err))
		return ring.Defaults(appName)
	}
	if err := ring.ValidateSet(actions); err != nil {
		zap.L().Warn("suggestion response failed validation",
			zap.String("app", appName),
			zap.Error(err))
		return ring.Defaults(appName)
	}

	zap.L().Info("successfully generated actions", zap.String("app", appName))
	return actions
}
