// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the generation pipeline and its
// external adapters: the model provider, the filesystem and the process launcher.
// Following the Ports and Adapters pattern, the application core depends only on
// these interfaces, so every adapter can be replaced by a stub in tests.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Provider, ArtifactWriter)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/appgen/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.appgen/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CredentialResolver picks the API credential for a model.
// A non-empty override always wins; otherwise a default captured at startup is returned.
type CredentialResolver interface {
	Resolve(model domain.ModelDefinition, override string) string
}

// ProviderFactory builds a provider for a model with an explicit credential.
type ProviderFactory interface {
	ForModel(model domain.ModelDefinition, credential string) (Provider, error)
}

// Provider is a single-shot, non-streaming text-generation capability.
type Provider interface {
	Name() string
	Model() domain.ModelDefinition
	Complete(context.Context, CompletionRequest) (CompletionResponse, error)
}

// CompletionRequest is the ordered (system, user) instruction pair.
type CompletionRequest struct {
	System string
	User   string
}

// CompletionResponse holds the model's raw text.
type CompletionResponse struct {
	Text string
}

// ArtifactWriter persists extracted source, replacing any prior content at path.
type ArtifactWriter interface {
	Write(ctx context.Context, path string, source domain.ExtractedSource) (domain.Artifact, error)
}

// ProcessLauncher starts a file as a detached process and does not wait for it.
type ProcessLauncher interface {
	Launch(path string) (domain.LaunchHandle, error)
}

// ProgressReporter observes pipeline state transitions (e.g. to drive a busy indicator).
type ProgressReporter interface {
	Transition(state domain.PipelineState)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
