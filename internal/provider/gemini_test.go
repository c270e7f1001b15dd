package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeminiComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/v1beta/models/gemini-2.5-flash:generateContent" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key = %q", r.URL.Query().Get("key"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("content-type = %q", r.Header.Get("Content-Type"))
		}

		var req gemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if len(req.Contents) != 1 {
			t.Fatalf("contents = %d", len(req.Contents))
		}
		if req.Contents[0].Role != "user" {
			t.Errorf("contents[0].role = %q", req.Contents[0].Role)
		}
		if req.Contents[0].Parts[0].Text != "Hi" {
			t.Errorf("contents[0].parts[0].text = %q", req.Contents[0].Parts[0].Text)
		}

		resp := gemResponse{
			Candidates: []gemCandidate{
				{Content: gemContent{Role: "model", Parts: []gemPart{{Text: "Hello"}, {Text: " there"}}}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	p := NewGeminiProvider("gemini", server.URL, "test-key")

	resp, err := p.Complete(context.Background(), &CompletionRequest{
		Model:    "gemini-2.5-flash",
		Messages: []Message{{Role: RoleUser, Content: "Hi"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if resp.Content != "Hello there" {
		t.Errorf("content = %q", resp.Content)
	}
	if resp.Model != "gemini-2.5-flash" {
		t.Errorf("model = %q", resp.Model)
	}
}

func TestGeminiRoleMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		want := []string{"user", "user", "model"}
		for i, c := range req.Contents {
			if c.Role != want[i] {
				t.Errorf("contents[%d].role = %q, want %q", i, c.Role, want[i])
			}
		}
		_ = json.NewEncoder(w).Encode(gemResponse{
			Candidates: []gemCandidate{{Content: gemContent{Parts: []gemPart{{Text: "ok"}}}}},
		})
	}))
	defer server.Close()

	p := NewGeminiProvider("gemini", server.URL, "k")
	_, err := p.Complete(context.Background(), &CompletionRequest{
		Model: "gemini-2.5-flash",
		Messages: []Message{
			{Role: RoleSystem, Content: "rules"},
			{Role: RoleUser, Content: "Hi"},
			{Role: RoleAssistant, Content: "earlier answer"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestGeminiCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"status":"RESOURCE_EXHAUSTED","message":"quota"}}`))
	}))
	defer server.Close()

	p := NewGeminiProvider("gemini", server.URL, "k")
	_, err := p.Complete(context.Background(), &CompletionRequest{
		Model:    "gemini-2.5-flash",
		Messages: []Message{{Role: RoleUser, Content: "Hi"}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGeminiCompleteErrorInBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := gemResponse{Error: &gemError{Code: 400, Status: "INVALID_ARGUMENT", Message: "bad model"}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	p := NewGeminiProvider("gemini", server.URL, "k")
	_, err := p.Complete(context.Background(), &CompletionRequest{
		Model:    "bad-model",
		Messages: []Message{{Role: RoleUser, Content: "Hi"}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGeminiCompleteNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(gemResponse{})
	}))
	defer server.Close()

	p := NewGeminiProvider("gemini", server.URL, "k")
	_, err := p.Complete(context.Background(), &CompletionRequest{
		Model:    "gemini-2.5-flash",
		Messages: []Message{{Role: RoleUser, Content: "Hi"}},
	})
	if err == nil {
		t.Fatal("expected error for empty candidates")
	}
}

func TestGeminiDefaultBaseURL(t *testing.T) {
	p := NewGeminiProvider("gemini", "", "k")
	if p.baseURL != geminiDefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", p.baseURL, geminiDefaultBaseURL)
	}
}
