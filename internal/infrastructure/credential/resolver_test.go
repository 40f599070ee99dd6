package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/appgen/internal/domain"
)

func fakeEnv(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestResolvePrefersOverride(t *testing.T) {
	model := domain.ModelDefinition{Name: "gemini", AuthEnvVar: "GEMINI_API_KEY"}
	r := snapshotWith([]domain.ModelDefinition{model}, fakeEnv(map[string]string{"GEMINI_API_KEY": "env-key"}))

	assert.Equal(t, "user-key", r.Resolve(model, "  user-key "))
	assert.Equal(t, "env-key", r.Resolve(model, ""))
	assert.Equal(t, "env-key", r.Resolve(model, "   "))
}

func TestResolveFallsBackToLegacyKeyForGemini(t *testing.T) {
	gemini := domain.ModelDefinition{Name: "gemini", AuthEnvVar: "GEMINI_API_KEY"}
	openai := domain.ModelDefinition{Name: "openai", Provider: domain.ProviderHTTP, Endpoint: "https://api.openai.com", AuthEnvVar: "OPENAI_API_KEY"}
	r := snapshotWith([]domain.ModelDefinition{gemini, openai}, fakeEnv(map[string]string{"gem": "legacy"}))

	assert.Equal(t, "legacy", r.Resolve(gemini, ""))
	assert.Empty(t, r.Resolve(openai, ""))
	assert.False(t, r.HasDefault(openai))
}

func TestSnapshotIgnoresLaterEnvironmentChanges(t *testing.T) {
	model := domain.ModelDefinition{Name: "gemini", AuthEnvVar: "APPGEN_TEST_KEY"}
	t.Setenv("APPGEN_TEST_KEY", "first")
	t.Setenv(domain.EnvLegacyCredential, "")
	r := Snapshot([]domain.ModelDefinition{model})

	t.Setenv("APPGEN_TEST_KEY", "second")
	assert.Equal(t, "first", r.Resolve(model, ""))
}

func TestResolveWithoutAnyCredentialIsEmpty(t *testing.T) {
	model := domain.ModelDefinition{Name: "gemini", AuthEnvVar: "GEMINI_API_KEY"}
	r := snapshotWith(nil, fakeEnv(nil))
	assert.Empty(t, r.Resolve(model, ""))
}
