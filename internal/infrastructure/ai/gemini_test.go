package ai

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/appgen/internal/domain"
)

func TestGeminiProviderGenerateContent(t *testing.T) {
	var body struct {
		GenerationConfig struct {
			Temperature *float64 `json:"temperature"`
		} `json:"generationConfig"`
		SystemInstruction struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"systemInstruction"`
	}
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.Equal(t, "gem-key", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"` + "```python\\nprint(1)\\n```" + `"}]},"finishReason":"STOP"}]}`))
	}))
	defer srv.Close()

	model := domain.ModelDefinition{Name: "gemini", Provider: domain.ProviderGemini, Endpoint: srv.URL + "/", ModelID: "gemini-2.5-flash"}
	p, err := NewFactoryWithClient(srv.Client()).ForModel(model, "gem-key")
	require.NoError(t, err)

	resp, err := p.Complete(context.Background(), testRequest)
	require.NoError(t, err)
	assert.Equal(t, "```python\nprint(1)\n```", resp.Text)

	assert.True(t, strings.HasSuffix(path, "models/gemini-2.5-flash:generateContent"), path)
	require.NotNil(t, body.GenerationConfig.Temperature)
	assert.Equal(t, float64(0), *body.GenerationConfig.Temperature)
	require.NotEmpty(t, body.SystemInstruction.Parts)
	assert.Equal(t, domain.SystemDirective, body.SystemInstruction.Parts[0].Text)
}

func TestGeminiProviderRequiresCredential(t *testing.T) {
	p, err := NewFactory().ForModel(domain.ModelDefinition{Name: "gemini", AuthEnvVar: "GEMINI_API_KEY"}, "")
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), testRequest)
	assert.ErrorIs(t, err, errMissingCredential)
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}

func TestGeminiProviderSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	model := domain.ModelDefinition{Name: "gemini", Provider: domain.ProviderGemini, Endpoint: srv.URL + "/", ModelID: "gemini-2.5-flash"}
	p, err := NewFactoryWithClient(srv.Client()).ForModel(model, "bad")
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), testRequest)
	assert.Error(t, err)
}

func TestMaxOutputTokensClampsToInt32(t *testing.T) {
	tests := []struct {
		limit int
		want  int32
	}{
		{limit: -5, want: 0},
		{limit: 0, want: 0},
		{limit: 8192, want: 8192},
		{limit: math.MaxInt32, want: math.MaxInt32},
		{limit: math.MaxInt32 + 1, want: math.MaxInt32},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, maxOutputTokens(tt.limit), "limit %d", tt.limit)
	}
}
