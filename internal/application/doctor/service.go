package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	configapp "github.com/doeshing/appgen/internal/application/config"
	"github.com/doeshing/appgen/internal/domain"
	"github.com/doeshing/appgen/internal/ports"
)

// InterpreterLocator resolves the binary used to launch generated programs.
type InterpreterLocator interface {
	Interpreter() (string, error)
}

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider     ports.ConfigProvider
	CredentialResolver ports.CredentialResolver
	Interpreter        InterpreterLocator
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := configapp.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("format %s, %d model(s)", cfg.ConfigFormatVersion, len(cfg.Models))))
	}

	checks = append(checks, s.credentialCheck(cfg))
	checks = append(checks, s.interpreterCheck(cfg))
	checks = append(checks, artifactDirCheck(cfg.Artifact))

	report := domain.HealthReport{Checks: checks}
	if failed := report.Failed(); len(failed) > 0 {
		return report, errors.New(failed[0].Name + ": " + failed[0].Details)
	}
	return report, nil
}

func (s *Service) credentialCheck(cfg domain.Config) domain.HealthCheck {
	model, err := cfg.GetDefaultModel()
	if err != nil {
		return fail("API key", err.Error())
	}
	if s.CredentialResolver == nil {
		return warn("API key", "credential resolver not initialized")
	}
	if s.CredentialResolver.Resolve(model, "") == "" {
		return warn("API key", fmt.Sprintf("%s missing; pass --api-key per run", model.AuthEnvVar))
	}
	return ok("API key", fmt.Sprintf("found for %s", model.Name))
}

func (s *Service) interpreterCheck(cfg domain.Config) domain.HealthCheck {
	if cfg.Execution.SkipLaunch {
		return ok("Interpreter", "launch disabled")
	}
	if s.Interpreter == nil {
		return warn("Interpreter", "launcher not initialized")
	}
	path, err := s.Interpreter.Interpreter()
	if err != nil {
		return warn("Interpreter", err.Error())
	}
	return ok("Interpreter", path)
}

func artifactDirCheck(settings domain.ArtifactSettings) domain.HealthCheck {
	dir := filepath.Dir(settings.Resolve(""))
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return fail("Artifact dir", err.Error())
	}
	probe, err := os.CreateTemp(dir, ".appgen-probe-*")
	if err != nil {
		return fail("Artifact dir", fmt.Sprintf("%s not writable: %v", dir, err))
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return ok("Artifact dir", dir)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
