package ai

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"google.golang.org/genai"

	"github.com/doeshing/appgen/internal/domain"
	"github.com/doeshing/appgen/internal/ports"
)

var (
	errNoCandidates      = errors.New("gemini returned no candidates")
	errMissingCredential = errors.New("missing API key")
)

// geminiProvider calls generateContent through the genai SDK.
type geminiProvider struct {
	model      domain.ModelDefinition
	credential string
	httpClient *http.Client
}

func newGeminiProvider(model domain.ModelDefinition, credential string, client *http.Client) ports.Provider {
	return &geminiProvider{
		model:      model,
		credential: credential,
		httpClient: client,
	}
}

func (p *geminiProvider) Name() string {
	return "gemini"
}

func (p *geminiProvider) Model() domain.ModelDefinition {
	return p.model
}

func (p *geminiProvider) Complete(ctx context.Context, req ports.CompletionRequest) (ports.CompletionResponse, error) {
	if p.credential == "" {
		return ports.CompletionResponse{}, fmt.Errorf("%w: pass --api-key or set %s", errMissingCredential, p.model.AuthEnvVar)
	}

	client, err := genai.NewClient(ctx, p.clientConfig())
	if err != nil {
		return ports.CompletionResponse{}, fmt.Errorf("create GenAI client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	config.MaxOutputTokens = maxOutputTokens(p.model.MaxTokens)

	resp, err := client.Models.GenerateContent(ctx, p.modelID(), genai.Text(req.User), config)
	if err != nil {
		return ports.CompletionResponse{}, fmt.Errorf("GenAI generate failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return ports.CompletionResponse{}, errNoCandidates
	}
	return ports.CompletionResponse{Text: resp.Text()}, nil
}

func (p *geminiProvider) clientConfig() *genai.ClientConfig {
	cfg := &genai.ClientConfig{
		APIKey:     p.credential,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: p.httpClient,
	}
	if p.model.Endpoint != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: p.model.Endpoint}
	}
	return cfg
}

// maxOutputTokens clamps the configured limit to the SDK's int32 field.
// Zero leaves the server default in place.
func maxOutputTokens(limit int) int32 {
	switch {
	case limit <= 0:
		return 0
	case limit > math.MaxInt32:
		return math.MaxInt32
	default:
		return int32(limit)
	}
}

func (p *geminiProvider) modelID() string {
	if p.model.ModelID == "" {
		return domain.DefaultGeminiModelID
	}
	return p.model.ModelID
}
