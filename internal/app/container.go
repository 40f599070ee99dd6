package app

import (
	"context"
	"fmt"
	"os"

	"github.com/doeshing/appgen/internal/application/doctor"
	"github.com/doeshing/appgen/internal/application/generate"
	"github.com/doeshing/appgen/internal/infrastructure/ai"
	"github.com/doeshing/appgen/internal/infrastructure/artifact"
	"github.com/doeshing/appgen/internal/infrastructure/config"
	"github.com/doeshing/appgen/internal/infrastructure/credential"
	"github.com/doeshing/appgen/internal/infrastructure/launcher"
	"github.com/doeshing/appgen/internal/pkg/logger"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	GenerateService *generate.Service
	DoctorService   *doctor.Service
	ConfigLoader    *config.FileLoader
	Credentials     *credential.Resolver
	Launcher        *launcher.LocalLauncher
	Logger          *logger.ZapLogger
	EnvFile         string
}

// Options tunes container construction.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// BuildContainer constructs the dependency graph. Default credentials are
// captured here, once, after the .env file has been loaded. An unreadable
// config file does not fail construction.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	log, err := logger.New(opts.Verbose)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		// Keep doctor and config commands usable; each run reloads and reports the error.
		log.Warn("config not loaded, wiring with defaults", map[string]interface{}{
			"path":  cfgLoader.Path(),
			"error": err.Error(),
		})
		if cfg, err = config.DefaultConfig(); err != nil {
			return nil, fmt.Errorf("load default config: %w", err)
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	envFile, err := config.LoadDotEnv(cwd, cfg.Preferences.EnvFile)
	if err != nil {
		log.Warn("env file not loaded", map[string]interface{}{"file": cfg.Preferences.EnvFile, "error": err.Error()})
	} else if envFile != "" {
		log.Debug("env file loaded", map[string]interface{}{"file": envFile})
	}

	resolver := credential.Snapshot(cfg.Models)
	localLauncher := launcher.NewLocalLauncher(cfg.Execution.Interpreter)

	generateService := &generate.Service{
		ConfigProvider:     cfgLoader,
		CredentialResolver: resolver,
		ProviderFactory:    ai.NewFactory(),
		ArtifactWriter:     artifact.NewFileWriter(),
		Launcher:           localLauncher,
		Logger:             log,
	}

	doctorService := &doctor.Service{
		ConfigProvider:     cfgLoader,
		CredentialResolver: resolver,
		Interpreter:        localLauncher,
	}

	return &Container{
		GenerateService: generateService,
		DoctorService:   doctorService,
		ConfigLoader:    cfgLoader,
		Credentials:     resolver,
		Launcher:        localLauncher,
		Logger:          log,
		EnvFile:         envFile,
	}, nil
}
