package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/appgen/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		Preferences: domain.Preferences{DefaultModel: "gemini"},
		Models: []domain.ModelDefinition{
			{Name: "gemini", ModelID: "gemini-2.5-flash"},
			{Name: "openai", Provider: domain.ProviderHTTP, Endpoint: "https://api.openai.com/v1/chat/completions", ModelID: "gpt-4o-mini"},
		},
		Artifact: domain.ArtifactSettings{Dir: ".", FileName: "app.py", Naming: "fixed"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*domain.Config) {}},
		{name: "no models", mutate: func(c *domain.Config) { c.Models = nil }, wantErr: "at least one model"},
		{name: "unknown default", mutate: func(c *domain.Config) { c.Preferences.DefaultModel = "x" }, wantErr: "default model x"},
		{name: "empty default falls back to first", mutate: func(c *domain.Config) { c.Preferences.DefaultModel = "" }},
		{name: "duplicate model", mutate: func(c *domain.Config) { c.Models[1].Name = "gemini" }, wantErr: "duplicate"},
		{name: "http without endpoint", mutate: func(c *domain.Config) { c.Models[1].Endpoint = "" }, wantErr: "requires an endpoint"},
		{name: "bad naming", mutate: func(c *domain.Config) { c.Artifact.Naming = "random" }, wantErr: "fixed|unique"},
		{name: "file name with directory", mutate: func(c *domain.Config) { c.Artifact.FileName = "sub/app.py" }, wantErr: "bare file name"},
		{name: "negative max tokens", mutate: func(c *domain.Config) { c.Models[0].MaxTokens = -1 }, wantErr: "max_tokens"},
		{name: "max tokens beyond int32", mutate: func(c *domain.Config) { c.Models[1].MaxTokens = math.MaxInt32 + 1 }, wantErr: "max_tokens"},
		{name: "max tokens at int32 limit", mutate: func(c *domain.Config) { c.Models[0].MaxTokens = math.MaxInt32 }},
		{name: "negative timeout", mutate: func(c *domain.Config) { c.Preferences.TimeoutSeconds = -1 }, wantErr: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
