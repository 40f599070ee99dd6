// Package generate sequences one natural-language request through completion,
// extraction, persistence and launch.
package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/appgen/internal/application/extract"
	"github.com/doeshing/appgen/internal/domain"
	"github.com/doeshing/appgen/internal/ports"
)

// Service orchestrates the generation lifecycle end-to-end.
type Service struct {
	ConfigProvider     ports.ConfigProvider
	CredentialResolver ports.CredentialResolver
	ProviderFactory    ports.ProviderFactory
	ArtifactWriter     ports.ArtifactWriter
	Launcher           ports.ProcessLauncher
	Progress           ports.ProgressReporter
	Logger             ports.Logger

	// NewRequestID defaults to uuid.NewString.
	NewRequestID func() string

	inFlight atomic.Bool
}

// Run processes a single generate trigger. Only one run may be in flight;
// a concurrent call returns ErrGenerationInProgress without side effects.
func (s *Service) Run(ctx context.Context, req domain.GenerationRequest) (domain.GenerationOutcome, error) {
	if s.ConfigProvider == nil || s.CredentialResolver == nil || s.ProviderFactory == nil ||
		s.ArtifactWriter == nil || s.Launcher == nil || s.Logger == nil {
		return domain.GenerationOutcome{}, errors.New("generate.Service dependencies not satisfied")
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return domain.GenerationOutcome{State: domain.StateIdle}, domain.ErrGenerationInProgress
	}
	defer s.inFlight.Store(false)

	if ctx == nil {
		ctx = context.Background()
	}

	run := &pipelineRun{svc: s, outcome: domain.GenerationOutcome{RequestID: s.requestID()}}
	err := run.execute(ctx, req)
	return run.outcome, err
}

// Busy reports whether a run is in progress.
func (s *Service) Busy() bool {
	return s.inFlight.Load()
}

func (s *Service) requestID() string {
	if s.NewRequestID != nil {
		return s.NewRequestID()
	}
	return uuid.NewString()
}

type pipelineRun struct {
	svc     *Service
	outcome domain.GenerationOutcome
}

func (r *pipelineRun) transition(state domain.PipelineState) {
	r.outcome.State = state
	if r.svc.Progress != nil {
		r.svc.Progress.Transition(state)
	}
	r.svc.Logger.Debug("pipeline state", map[string]interface{}{
		"request_id": r.outcome.RequestID,
		"state":      string(state),
	})
}

func (r *pipelineRun) fail(kind domain.ErrorKind, err error) error {
	r.transition(domain.StateFailed)
	r.svc.Logger.Error("generation failed", err, map[string]interface{}{
		"request_id": r.outcome.RequestID,
		"stage":      string(kind),
	})
	return domain.NewStageError(kind, err)
}

func (r *pipelineRun) execute(ctx context.Context, req domain.GenerationRequest) error {
	r.transition(domain.StateValidating)
	instruction := strings.TrimSpace(req.Instruction)
	if instruction == "" {
		r.outcome.Warning = "Please enter a description."
		r.transition(domain.StateIdle)
		return domain.NewStageError(domain.KindValidation, domain.ErrEmptyInstruction)
	}

	cfg, err := r.svc.ConfigProvider.Load(ctx)
	if err != nil {
		return r.fail(domain.KindGeneration, fmt.Errorf("load config: %w", err))
	}
	model, err := cfg.PickModel(req.ModelOverride)
	if err != nil {
		return r.fail(domain.KindGeneration, err)
	}

	r.transition(domain.StateResolving)
	credential := r.svc.CredentialResolver.Resolve(model, req.Credential)

	r.transition(domain.StateGenerating)
	result, err := r.complete(ctx, model, credential, instruction)
	if err != nil {
		return r.fail(domain.KindGeneration, err)
	}
	r.outcome.Result = result

	r.transition(domain.StateExtracting)
	lang := strings.TrimSpace(req.Language)
	if lang == "" {
		lang = cfg.Preferences.Language()
	}
	r.outcome.Source = domain.ExtractedSource{Text: extract.Strip(result.RawText, lang)}

	r.transition(domain.StatePersisting)
	path := cfg.Artifact.Resolve(r.outcome.RequestID)
	artifact, err := r.svc.ArtifactWriter.Write(ctx, path, r.outcome.Source)
	if err != nil {
		return r.fail(domain.KindPersistence, fmt.Errorf("write %s: %w", path, err))
	}
	r.outcome.Artifact = &artifact

	if cfg.Execution.SkipLaunch {
		r.transition(domain.StateCompleted)
		return nil
	}

	r.transition(domain.StateLaunching)
	handle, err := r.svc.Launcher.Launch(artifact.Path)
	if err != nil {
		r.outcome.LaunchErr = domain.NewStageError(domain.KindLaunch, err)
		r.outcome.Warning = fmt.Sprintf("Error running generated app: %v", err)
		r.svc.Logger.Warn("launch failed", map[string]interface{}{
			"request_id": r.outcome.RequestID,
			"path":       artifact.Path,
			"error":      err.Error(),
		})
		r.transition(domain.StateCompletedWithWarning)
		return nil
	}
	r.outcome.Launch = &handle
	r.svc.Logger.Info("launched generated app", map[string]interface{}{
		"request_id": r.outcome.RequestID,
		"pid":        handle.PID,
		"path":       handle.Path,
	})

	r.transition(domain.StateCompleted)
	return nil
}

// complete performs the single completion call and times it.
func (r *pipelineRun) complete(ctx context.Context, model domain.ModelDefinition, credential, instruction string) (domain.GenerationResult, error) {
	provider, err := r.svc.ProviderFactory.ForModel(model, credential)
	if err != nil {
		return domain.GenerationResult{}, fmt.Errorf("provider init: %w", err)
	}

	r.svc.Logger.Info("calling provider", map[string]interface{}{
		"request_id": r.outcome.RequestID,
		"provider":   provider.Name(),
		"model":      model.ModelID,
	})

	start := time.Now()
	resp, err := provider.Complete(ctx, ports.CompletionRequest{
		System: domain.SystemDirective,
		User:   instruction,
	})
	elapsed := time.Since(start)
	if err != nil {
		return domain.GenerationResult{}, fmt.Errorf("provider complete: %w", err)
	}

	return domain.GenerationResult{
		RawText: resp.Text,
		Model:   model.Name,
		Elapsed: elapsed,
	}, nil
}
