package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/doeshing/appgen/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if len(cfg.Models) == 0 {
		return errors.New("at least one model must be configured")
	}
	if err := validateModels(cfg.Models); err != nil {
		return err
	}
	defaultModel := cfg.Preferences.DefaultModel
	if defaultModel == "" {
		defaultModel = cfg.Models[0].Name
	}
	if !cfg.HasModel(defaultModel) {
		return fmt.Errorf("default model %s not found in models list", defaultModel)
	}
	if cfg.Preferences.TimeoutSeconds < 0 {
		return fmt.Errorf("preferences.timeout must be >= 0")
	}
	if err := validateArtifact(cfg.Artifact); err != nil {
		return err
	}
	return nil
}

func validateModels(models []domain.ModelDefinition) error {
	seen := make(map[string]bool, len(models))
	for i, model := range models {
		if model.Name == "" {
			return fmt.Errorf("models[%d].name must be set", i)
		}
		if seen[model.Name] {
			return fmt.Errorf("duplicate model name %s", model.Name)
		}
		seen[model.Name] = true
		if model.MaxTokens < 0 || model.MaxTokens > math.MaxInt32 {
			return fmt.Errorf("model %s: max_tokens must be between 0 and %d", model.Name, math.MaxInt32)
		}

		switch model.Kind() {
		case domain.ProviderHTTP:
			if model.Endpoint == "" {
				return fmt.Errorf("model %s: http provider requires an endpoint", model.Name)
			}
		case domain.ProviderGemini:
			if model.ModelID == "" {
				return fmt.Errorf("model %s: model_id must be set", model.Name)
			}
		}
	}
	return nil
}

func validateArtifact(artifact domain.ArtifactSettings) error {
	switch strings.ToLower(artifact.Naming) {
	case "", domain.ArtifactNamingFixed, domain.ArtifactNamingUnique:
	default:
		return fmt.Errorf("artifact.naming must be fixed|unique, got %s", artifact.Naming)
	}
	name := artifact.FileName
	if name == "" {
		return nil
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("artifact.file_name must be a bare file name, got %s", name)
	}
	return nil
}
