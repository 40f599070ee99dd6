package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/appgen/internal/domain"
)

func TestBuildContainerSurvivesBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("models: [unterminated\n"), 0o600))

	container, err := BuildContainer(context.Background(), Options{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, path, container.ConfigLoader.Path())

	report, err := container.DoctorService.Run(context.Background())
	require.Error(t, err)
	require.NotEmpty(t, report.Checks)
	assert.Equal(t, "Config file", report.Checks[0].Name)
	assert.Equal(t, domain.HealthError, report.Checks[0].Status)

	_, err = container.GenerateService.Run(context.Background(), domain.GenerationRequest{Instruction: "x"})
	assert.Equal(t, domain.KindGeneration, domain.KindOf(err))
}

func TestBuildContainerWritesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	container, err := BuildContainer(context.Background(), Options{ConfigPath: path})
	require.NoError(t, err)
	assert.FileExists(t, path)
	require.NotNil(t, container.GenerateService)
	require.NotNil(t, container.Credentials)
}
