package engine

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/adaptivering/ringmind/internal/ring"
)

// SuggestionPrompt renders the prompt asking for exactly 8 ring actions for
// the given app. At most maxToolsPerServer tools are listed per MCP server,
// in sorted key order so the prompt is deterministic.
func SuggestionPrompt(appName string, servers []ring.MCPServer, maxToolsPerServer int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("You are an expert at creating productivity workflows for %s.\n\n", appName))
	sb.WriteString("Generate exactly 8 actions for the Actions Ring (positions 0-7).\n\n")
	sb.WriteString(`Priority order for action types:
1. Keybind (fastest execution) - Use for common shortcuts
2. Prompt (when MCP tools are available) - Use for AI-assisted tasks
3. Python (for complex automation) - Use for advanced scripting

Action type mixing guidelines:
- Aim for 60% Keybind, 30% Prompt (if MCP available), 10% Python
- If no MCP tools are available, use 100% Keybind actions

`)

	if len(servers) > 0 {
		sb.WriteString("Available MCP tools:\n")
		for _, server := range servers {
			name := server.ServerName
			if name == "" {
				name = "Unknown"
			}
			sb.WriteString(fmt.Sprintf("  - Server: %s (%s)\n", name, server.PackageName))
			for _, key := range sortedToolKeys(server.Tools, maxToolsPerServer) {
				desc := server.Tools[key].Description
				if desc == "" {
					desc = "No description"
				}
				sb.WriteString(fmt.Sprintf("    * %s: %s\n", key, desc))
			}
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("Note: No MCP tools are available for this app. Use only Keybind actions.\n\n")
	}

	sb.WriteString(`Return ONLY a valid JSON array with exactly 8 objects in this exact format:
[
  {
    "position": 0,
    "type": "Keybind",
    "actionName": "Copy",
    "actionData": {
      "keys": ["Ctrl", "C"],
      "description": "Copy selected text"
    }
  },
  {
    "position": 1,
    "type": "Prompt",
    "actionName": "Analyze Code",
    "actionData": {
      "mcpServerName": "vscode",
      "toolName": "analyze",
      "parameters": {},
      "description": "Analyze selected code"
    }
  },
  {
    "position": 2,
    "type": "Python",
    "actionName": "Batch Rename",
    "actionData": {
      "scriptCode": "print('rename')",
      "arguments": [],
      "description": "Rename files in bulk"
    }
  }
]

Important rules:
`)
	sb.WriteString("- Return ONLY the raw JSON array. Do not wrap in markdown blocks (like ```json).\n")
	sb.WriteString(`- Each action must have position (0-7), type (Keybind/Prompt/Python), actionName, and actionData
- For Keybind: actionData must have "keys" array and optional "description"
- For Prompt: actionData must have "mcpServerName", "toolName", optional "parameters" dict, and optional "description"
- For Python: actionData must have "scriptCode" or "scriptPath", optional "arguments" array, and optional "description"
`)
	sb.WriteString(fmt.Sprintf("- Make actions relevant and useful for %s\n", appName))
	sb.WriteString("- Prioritize common workflows and frequent tasks\n\n")
	sb.WriteString("Generate 8 optimal actions now:")

	return sb.String()
}

func sortedToolKeys(tools map[string]ring.ToolInfo, limit int) []string {
	keys := make([]string, 0, len(tools))
	for k := range tools {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

// OrchestrationPrompt renders the tool catalog and the user request, asking
// for a JSON tool-selection object (or {"tool": "none"}).
func OrchestrationPrompt(tools []ring.Tool, userPrompt string) string {
	lines := make([]string, 0, len(tools))
	for _, t := range tools {
		name := t.Name
		if name == "" {
			name = "Unknown"
		}
		desc := t.Description
		if desc == "" {
			desc = "No description"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", name, desc))
	}

	return fmt.Sprintf(`You have access to the following tools:

%s

User request: %s

Which tool should be called and with what arguments? Respond in JSON format:
{
  "tool": "tool_name",
  "arguments": {}
}

If no tool is appropriate, respond with: {"tool": "none"}`, strings.Join(lines, "\n"), userPrompt)
}

// projectedInteraction is the reduced event view embedded in the
// workflow-analysis prompt.
type projectedInteraction struct {
	ID        json.RawMessage `json:"id"`
	Type      string          `json:"type"`
	Element   string          `json:"element"`
	Timestamp json.RawMessage `json:"timestamp"`
}

// WorkflowPrompt renders the workflow-analysis prompt: grouping rules plus a
// reduced projection of each interaction event.
func WorkflowPrompt(appName string, interactions []ring.Interaction) string {
	projected := make([]projectedInteraction, 0, len(interactions))
	for _, i := range interactions {
		element := i.ElementName
		if element == "" {
			element = "unknown"
		}
		projected = append(projected, projectedInteraction{
			ID:        i.ID,
			Type:      i.Type,
			Element:   element,
			Timestamp: i.Timestamp,
		})
	}
	rendered, _ := json.MarshalIndent(projected, "", "  ")

	return fmt.Sprintf(`Analyze user interactions in %s and identify semantic workflows.

Rules:
1. Add app-specific context (e.g., "chrome.exe: user logs in to gmail")
2. Use present tense active voice ("opens file" not "opened file")
3. Identify temporal sequences (min 2 related actions within 10 seconds)
4. Be specific but generalizable
5. Ignore isolated actions
6. Only include workflows with confidence >= 0.8

Input interactions:
%s

Return ONLY a JSON array of workflows in this exact format (no markdown):
[
  {
    "workflow": "chrome.exe: user logs into gmail",
    "interaction_ids": [1, 2, 3],
    "confidence": 0.95
  }
]

If no workflows are found, return an empty array: []`, appName, rendered)
}
