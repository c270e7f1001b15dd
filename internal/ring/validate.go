package ring

import "fmt"

// Validate checks a single action: position in range, non-empty name, and
// the variant fields required by its type.
func (a Action) Validate() error {
	if a.Position < 0 || a.Position >= RingSize {
		return fmt.Errorf("position %d out of range [0,%d]", a.Position, RingSize-1)
	}
	if a.Name == "" {
		return fmt.Errorf("position %d: empty actionName", a.Position)
	}
	switch d := a.Data.(type) {
	case KeybindData:
		if a.Type != ActionKeybind {
			return fmt.Errorf("action %q: keybind data on type %q", a.Name, a.Type)
		}
		if len(d.Keys) == 0 {
			return fmt.Errorf("action %q: keybind with no keys", a.Name)
		}
	case PromptData:
		if a.Type != ActionPrompt {
			return fmt.Errorf("action %q: prompt data on type %q", a.Name, a.Type)
		}
		if d.MCPServerName == "" || d.ToolName == "" {
			return fmt.Errorf("action %q: prompt requires mcpServerName and toolName", a.Name)
		}
	case PythonData:
		if a.Type != ActionPython {
			return fmt.Errorf("action %q: python data on type %q", a.Name, a.Type)
		}
		hasCode := d.ScriptCode != ""
		hasPath := d.ScriptPath != ""
		if hasCode == hasPath {
			return fmt.Errorf("action %q: python requires exactly one of scriptCode or scriptPath", a.Name)
		}
	default:
		return fmt.Errorf("action %q: missing action data", a.Name)
	}
	return nil
}

// ValidateSet checks a full ring result: exactly RingSize actions, each
// valid, with every position 0..7 used exactly once.
func ValidateSet(actions []Action) error {
	if len(actions) != RingSize {
		return fmt.Errorf("expected %d actions, got %d", RingSize, len(actions))
	}
	var seen [RingSize]bool
	for _, a := range actions {
		if err := a.Validate(); err != nil {
			return err
		}
		if seen[a.Position] {
			return fmt.Errorf("duplicate position %d", a.Position)
		}
		seen[a.Position] = true
	}
	return nil
}
