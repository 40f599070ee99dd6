package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// GetDefaultModel retrieves the default model definition from configuration
// Returns an error if the default model is not found
func (c *Config) GetDefaultModel() (ModelDefinition, error) {
	if c.Preferences.DefaultModel == "" {
		return ModelDefinition{}, fmt.Errorf("no default model configured")
	}

	for _, model := range c.Models {
		if model.Name == c.Preferences.DefaultModel {
			return model, nil
		}
	}

	return ModelDefinition{}, fmt.Errorf("default model %s not found in configuration", c.Preferences.DefaultModel)
}

// FindModelByName searches for a model by its name
func (c *Config) FindModelByName(name string) (ModelDefinition, bool) {
	for _, model := range c.Models {
		if model.Name == name {
			return model, true
		}
	}
	return ModelDefinition{}, false
}

// HasModel checks if a model with the given name exists in the configuration
func (c *Config) HasModel(name string) bool {
	_, exists := c.FindModelByName(name)
	return exists
}

// PickModel resolves an explicit override first, then the default model.
func (c *Config) PickModel(override string) (ModelDefinition, error) {
	if override == "" {
		return c.GetDefaultModel()
	}
	if model, ok := c.FindModelByName(override); ok {
		return model, nil
	}
	return ModelDefinition{}, fmt.Errorf("model %s not configured", override)
}

// Language returns the fence tag stripped from generated output.
func (p Preferences) Language() string {
	if p.SourceLanguage == "" {
		return DefaultSourceLanguage
	}
	return p.SourceLanguage
}

// Timeout bounds one generation run. Non-positive values fall back to the default.
func (p Preferences) Timeout() time.Duration {
	if p.TimeoutSeconds <= 0 {
		return DefaultGenerationTimeout
	}
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// IsUnique reports whether every request writes to its own artifact.
func (a ArtifactSettings) IsUnique() bool {
	return strings.EqualFold(a.Naming, ArtifactNamingUnique)
}

// Resolve returns the artifact path for a request.
// Fixed naming ignores requestID and always yields dir/file_name.
func (a ArtifactSettings) Resolve(requestID string) string {
	dir := a.Dir
	if dir == "" {
		dir = "."
	}
	name := a.FileName
	if name == "" {
		name = DefaultArtifactFileName
	}
	if a.IsUnique() && requestID != "" {
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		name = fmt.Sprintf("%s-%s%s", stem, requestID, ext)
	}
	return filepath.Join(dir, name)
}
