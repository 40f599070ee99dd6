// Package ai provides the completion providers behind the generation pipeline.
//
// Two providers exist:
//   - Gemini: the google.golang.org/genai SDK, used for the default model
//   - HTTP: a configuration-driven chat-completions client covering
//     OpenAI-compatible, Anthropic and Ollama style endpoints
//
// Both are single-shot and non-streaming, and always sample at temperature zero.
package ai

import (
	"fmt"
	"net/http"

	"github.com/doeshing/appgen/internal/domain"
	"github.com/doeshing/appgen/internal/ports"
)

// Factory creates provider instances based on model definitions.
// It maintains a single HTTP client shared across all providers. The client
// has no fixed timeout; the caller's context carries the run deadline.
type Factory struct {
	httpClient *http.Client
}

// NewFactory creates a new provider factory with a shared HTTP client.
func NewFactory() *Factory {
	return &Factory{
		httpClient: &http.Client{},
	}
}

// NewFactoryWithClient lets callers supply their own HTTP client.
func NewFactoryWithClient(client *http.Client) *Factory {
	return &Factory{httpClient: client}
}

// ForModel builds the provider for model, authenticated with credential.
func (f *Factory) ForModel(model domain.ModelDefinition, credential string) (ports.Provider, error) {
	switch kind := model.Kind(); kind {
	case domain.ProviderGemini:
		return newGeminiProvider(model, credential, f.httpClient), nil
	case domain.ProviderHTTP:
		return newHTTPProvider(model, credential, f.httpClient), nil
	default:
		return nil, fmt.Errorf("unsupported provider kind: %s", kind)
	}
}

var _ ports.ProviderFactory = (*Factory)(nil)

func promptMessages(req ports.CompletionRequest) []domain.PromptMessage {
	messages := make([]domain.PromptMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, domain.PromptMessage{Role: "system", Content: req.System})
	}
	return append(messages, domain.PromptMessage{Role: "user", Content: req.User})
}
