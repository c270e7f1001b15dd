package engine

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/adaptivering/ringmind/internal/ring"
)

// minWorkflowEvents is the smallest interaction count worth analyzing;
// a single event can never form a workflow.
const minWorkflowEvents = 2

// Analyzer groups recorded interaction events into semantic workflows.
// Every failure path yields an empty (never nil) slice.
type Analyzer struct {
	llm           LLMClient
	model         string
	minConfidence float64
}

func NewAnalyzer(llm LLMClient, model string, minConfidence float64) *Analyzer {
	return &Analyzer{llm: llm, model: model, minConfidence: minConfidence}
}

// Analyze parses the JSON-encoded interaction list, asks the provider for
// workflow groupings, and returns the entries at or above the confidence
// threshold in their original order. Fewer than two events short-circuits
// before any provider call.
func (a *Analyzer) Analyze(ctx context.Context, appName, interactionsJSON string) []ring.Workflow {
	var events []ring.Interaction
	if err := json.Unmarshal([]byte(interactionsJSON), &events); err != nil {
		zap.L().Warn("failed to parse interactions JSON",
			zap.String("app", appName),
			zap.Error(err))
		return []ring.Workflow{}
	}
	if len(events) < minWorkflowEvents {
		zap.L().Info("not enough interactions to identify workflows",
			zap.String("app", appName),
			zap.Int("count", len(events)))
		return []ring.Workflow{}
	}

	zap.L().Info("analyzing interactions",
		zap.String("app", appName),
		zap.Int("count", len(events)))

	prompt := WorkflowPrompt(appName, events)
	text, err := generate(ctx, a.llm, a.model, prompt)
	if err != nil {
		return []ring.Workflow{}
	}

	var workflows []ring.Workflow
	if err := json.Unmarshal([]byte(text), &workflows); err != nil {
		zap.L().Warn("workflow response is not a JSON array",
			zap.String("app", appName),
			zap.Error(err))
		return []ring.Workflow{}
	}

	filtered := make([]ring.Workflow, 0, len(workflows))
	for _, w := range workflows {
		if w.Confidence >= a.minConfidence {
			filtered = append(filtered, w)
		}
	}

	zap.L().Info("workflow analysis complete",
		zap.String("app", appName),
		zap.Int("detected", len(workflows)),
		zap.Int("kept", len(filtered)))
	return filtered
}
