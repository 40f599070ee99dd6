// Package credential selects the API key used for a completion call.
package credential

import (
	"os"
	"strings"

	"github.com/doeshing/appgen/internal/domain"
	"github.com/doeshing/appgen/internal/ports"
)

// Resolver holds default credentials captured once at startup.
// It never writes back to the process environment.
type Resolver struct {
	defaults map[string]string
	legacy   string
}

// Snapshot reads the default credential for every configured model from the
// environment. Call it after .env has been loaded.
func Snapshot(models []domain.ModelDefinition) *Resolver {
	return snapshotWith(models, os.Getenv)
}

func snapshotWith(models []domain.ModelDefinition, getenv func(string) string) *Resolver {
	r := &Resolver{
		defaults: make(map[string]string, len(models)),
		legacy:   strings.TrimSpace(getenv(domain.EnvLegacyCredential)),
	}
	for _, model := range models {
		if model.AuthEnvVar == "" {
			continue
		}
		if value := strings.TrimSpace(getenv(model.AuthEnvVar)); value != "" {
			r.defaults[model.AuthEnvVar] = value
		}
	}
	return r
}

// Resolve implements ports.CredentialResolver.
// A blank result is allowed: the provider surfaces the authentication failure.
func (r *Resolver) Resolve(model domain.ModelDefinition, override string) string {
	if value := strings.TrimSpace(override); value != "" {
		return value
	}
	if value := r.defaults[model.AuthEnvVar]; value != "" {
		return value
	}
	if model.Kind() == domain.ProviderGemini {
		return r.legacy
	}
	return ""
}

// HasDefault reports whether a startup credential exists for model.
func (r *Resolver) HasDefault(model domain.ModelDefinition) bool {
	return r.Resolve(model, "") != ""
}

var _ ports.CredentialResolver = (*Resolver)(nil)
