package provider

import "fmt"

const (
	APIGemini = "gemini"
	APIOpenAI = "openai-completions"
)

// Config mirrors config.ProviderConfig to avoid circular imports.
type Config struct {
	ID      string
	BaseURL string
	APIKey  string
	API     string
}

// FromConfig creates a Provider from a config entry. The api field
// determines which wire format to use:
//   - "gemini"              -> Google generateContent API
//   - "openai-completions"  -> OpenAI-compatible (OpenAI, Ollama, vLLM, etc.)
func FromConfig(cfg Config) (Provider, error) {
	switch cfg.API {
	case APIGemini, "":
		return NewGeminiProvider(cfg.ID, cfg.BaseURL, cfg.APIKey), nil
	case APIOpenAI:
		return NewOpenAIProvider(cfg.ID, cfg.BaseURL, cfg.APIKey), nil
	default:
		return nil, fmt.Errorf("unknown api type %q for provider %q (supported: %s, %s)",
			cfg.API, cfg.ID, APIGemini, APIOpenAI)
	}
}
