package ring

import (
	"encoding/json"
	"fmt"
)

// RingSize is the number of slots on the actions ring.
const RingSize = 8

type ActionType string

const (
	ActionKeybind ActionType = "Keybind"
	ActionPrompt  ActionType = "Prompt"
	ActionPython  ActionType = "Python"
)

// Action is one ring slot: a position, a type, and type-specific
// execution data. Data holds exactly one variant, selected by Type.
type Action struct {
	Position int
	Type     ActionType
	Name     string
	Data     ActionData
}

// ActionData is the tagged-union payload of an Action.
type ActionData interface {
	isActionData()
}

type KeybindData struct {
	Keys        []string `json:"keys"`
	Description string   `json:"description,omitempty"`
}

type PromptData struct {
	MCPServerName string         `json:"mcpServerName"`
	ToolName      string         `json:"toolName"`
	Parameters    map[string]any `json:"parameters"`
	Description   string         `json:"description,omitempty"`
}

type PythonData struct {
	ScriptCode  string   `json:"scriptCode,omitempty"`
	ScriptPath  string   `json:"scriptPath,omitempty"`
	Arguments   []string `json:"arguments,omitempty"`
	Description string   `json:"description,omitempty"`
}

func (KeybindData) isActionData() {}
func (PromptData) isActionData()  {}
func (PythonData) isActionData()  {}

type actionJSON struct {
	Position   int             `json:"position"`
	Type       ActionType      `json:"type"`
	ActionName string          `json:"actionName"`
	ActionData json.RawMessage `json:"actionData"`
}

func (a Action) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(a.Data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(actionJSON{
		Position:   a.Position,
		Type:       a.Type,
		ActionName: a.Name,
		ActionData: data,
	})
}

func (a *Action) UnmarshalJSON(b []byte) error {
	var aux actionJSON
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	a.Position = aux.Position
	a.Type = aux.Type
	a.Name = aux.ActionName

	if len(aux.ActionData) == 0 {
		return fmt.Errorf("action %q: missing actionData", aux.ActionName)
	}

	switch aux.Type {
	case ActionKeybind:
		var d KeybindData
		if err := json.Unmarshal(aux.ActionData, &d); err != nil {
			return fmt.Errorf("action %q: %w", aux.ActionName, err)
		}
		a.Data = d
	case ActionPrompt:
		var d PromptData
		if err := json.Unmarshal(aux.ActionData, &d); err != nil {
			return fmt.Errorf("action %q: %w", aux.ActionName, err)
		}
		if d.Parameters == nil {
			d.Parameters = map[string]any{}
		}
		a.Data = d
	case ActionPython:
		var d PythonData
		if err := json.Unmarshal(aux.ActionData, &d); err != nil {
			return fmt.Errorf("action %q: %w", aux.ActionName, err)
		}
		a.Data = d
	default:
		return fmt.Errorf("action %q: unknown action type %q", aux.ActionName, aux.Type)
	}
	return nil
}

// MCPServer describes a tool-providing service supplied by the caller.
// Field names follow the host plugin's serialization.
type MCPServer struct {
	ServerName  string              `json:"ServerName"`
	PackageName string              `json:"PackageName"`
	Tools       map[string]ToolInfo `json:"Tools"`
}

type ToolInfo struct {
	Description string `json:"Description"`
}

// Tool is one entry of the orchestration tool catalog.
type Tool struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// Interaction is one recorded UI event. ID and Timestamp are kept raw so
// the host's representation (numeric or string) passes through unchanged.
type Interaction struct {
	ID          json.RawMessage `json:"id"`
	Type        string          `json:"interaction_type"`
	ElementName string          `json:"element_name"`
	Timestamp   json.RawMessage `json:"timestamp"`
}

// Workflow is one detected semantic workflow over a cluster of interactions.
type Workflow struct {
	Workflow       string            `json:"workflow"`
	InteractionIDs []json.RawMessage `json:"interaction_ids"`
	Confidence     float64           `json:"confidence"`
}
