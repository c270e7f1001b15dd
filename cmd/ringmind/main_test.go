package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/adaptivering/ringmind/internal/config"
	"github.com/adaptivering/ringmind/internal/ring"
)

// missingKeyConfig carries no credential and an api type the factory
// rejects: any path that reaches provider construction fails with exit 1
// instead of emitting a fallback, so these tests also prove the credential
// check short-circuits before a provider exists.
func missingKeyConfig() *config.Config {
	return &config.Config{
		Provider: config.ProviderConfig{API: "unregistered-api", Model: "m"},
		Suggest:  config.SuggestConfig{MaxToolsPerServer: 10},
		Analysis: config.AnalysisConfig{MinConfidence: 0.8},
	}
}

func TestRunMissingCredentialSuggest(t *testing.T) {
	var out bytes.Buffer
	code := run(missingKeyConfig(), cliArgs{mode: modeSuggest, app: "Editor", mcpServers: "[]"}, &out)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	var actions []ring.Action
	if err := json.Unmarshal(out.Bytes(), &actions); err != nil {
		t.Fatalf("stdout is not an action array: %v", err)
	}
	if len(actions) != ring.RingSize {
		t.Fatalf("len = %d, want %d", len(actions), ring.RingSize)
	}
	want, _ := json.Marshal(ring.Defaults("Editor"))
	if got := strings.TrimSpace(out.String()); got != string(want) {
		t.Errorf("got %s, want the default action set", got)
	}
}

func TestRunMissingCredentialSuggestNoApp(t *testing.T) {
	var out bytes.Buffer
	code := run(missingKeyConfig(), cliArgs{mode: modeSuggest}, &out)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	var actions []ring.Action
	if err := json.Unmarshal(out.Bytes(), &actions); err != nil {
		t.Fatalf("stdout is not an action array: %v", err)
	}
	if err := ring.ValidateSet(actions); err != nil {
		t.Errorf("fallback set invalid: %v", err)
	}
}

func TestRunMissingCredentialAnalyze(t *testing.T) {
	var out bytes.Buffer
	code := run(missingKeyConfig(), cliArgs{
		mode:         modeAnalyze,
		app:          "Editor",
		interactions: `[{"id":1,"interaction_type":"click","timestamp":1},{"id":2,"interaction_type":"click","timestamp":2}]`,
	}, &out)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got := strings.TrimSpace(out.String()); got != "[]" {
		t.Errorf("got %q, want []", got)
	}
}

func TestRunMissingCredentialOrchestrate(t *testing.T) {
	var out bytes.Buffer
	code := run(missingKeyConfig(), cliArgs{
		mode:   modeOrchestrate,
		tools:  `[{"Name":"search","Description":"Search the web"}]`,
		prompt: "find the weather",
	}, &out)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got := strings.TrimSpace(out.String()); got != `{"tool":"none","error":"API key missing"}` {
		t.Errorf("got %q", got)
	}
}

func TestRunUnknownModeRejected(t *testing.T) {
	// Unknown modes fail the same way with and without a credential:
	// exit 2, no payload.
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"without credential", missingKeyConfig()},
		{"with credential", &config.Config{
			Provider: config.ProviderConfig{API: "unregistered-api", APIKey: "key", Model: "m"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			code := run(tt.cfg, cliArgs{mode: "translate", app: "Editor"}, &out)

			if code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
			if out.Len() != 0 {
				t.Errorf("stdout = %q, want no payload", out.String())
			}
		})
	}
}
