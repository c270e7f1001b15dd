package ring

import "go.uber.org/zap"

// Defaults returns the universal fallback set: the 8 most common editing
// operations, all keybinds. The app name is used for diagnostics only; the
// returned actions are identical for every app.
func Defaults(appName string) []Action {
	zap.L().Debug("generating universal defaults", zap.String("app", appName))
	return []Action{
		{Position: 0, Type: ActionKeybind, Name: "Copy", Data: KeybindData{Keys: []string{"Ctrl", "C"}, Description: "Copy selected text"}},
		{Position: 1, Type: ActionKeybind, Name: "Paste", Data: KeybindData{Keys: []string{"Ctrl", "V"}, Description: "Paste from clipboard"}},
		{Position: 2, Type: ActionKeybind, Name: "Save", Data: KeybindData{Keys: []string{"Ctrl", "S"}, Description: "Save current file"}},
		{Position: 3, Type: ActionKeybind, Name: "Undo", Data: KeybindData{Keys: []string{"Ctrl", "Z"}, Description: "Undo last action"}},
		{Position: 4, Type: ActionKeybind, Name: "Find", Data: KeybindData{Keys: []string{"Ctrl", "F"}, Description: "Find text"}},
		{Position: 5, Type: ActionKeybind, Name: "Select All", Data: KeybindData{Keys: []string{"Ctrl", "A"}, Description: "Select all"}},
		{Position: 6, Type: ActionKeybind, Name: "New Tab", Data: KeybindData{Keys: []string{"Ctrl", "T"}, Description: "New tab"}},
		{Position: 7, Type: ActionKeybind, Name: "Close", Data: KeybindData{Keys: []string{"Ctrl", "W"}, Description: "Smart close"}},
	}
}
