package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/appgen/internal/app"
	"github.com/doeshing/appgen/internal/application/doctor"
	"github.com/doeshing/appgen/internal/infrastructure/config"
	"github.com/doeshing/appgen/internal/infrastructure/credential"
	"github.com/doeshing/appgen/internal/infrastructure/launcher"
	"github.com/doeshing/appgen/internal/version"
)

func containerWithDefaults(t *testing.T) *app.Container {
	t.Helper()
	loader := config.NewFileLoader(filepath.Join(t.TempDir(), "config.yaml"))
	cfg, err := loader.Load(context.Background())
	require.NoError(t, err)
	return &app.Container{
		ConfigLoader: loader,
		Credentials:  credential.Snapshot(cfg.Models),
		EnvFile:      "/work/.env",
	}
}

func TestConfigPathPrintsLoaderPath(t *testing.T) {
	container := containerWithDefaults(t)
	cmd := NewConfigCommand(container)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"path"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, container.ConfigLoader.Path()+"\nenv file: /work/.env\n", out.String())
}

func TestConfigShowAndDiffOnDefaults(t *testing.T) {
	container := containerWithDefaults(t)

	show := NewConfigCommand(container)
	var out bytes.Buffer
	show.SetOut(&out)
	show.SetArgs([]string{"show"})
	require.NoError(t, show.Execute())
	assert.Contains(t, out.String(), "default_model: gemini-flash")
	assert.Contains(t, out.String(), "skip_launch: false")

	diff := NewConfigCommand(container)
	out.Reset()
	diff.SetOut(&out)
	diff.SetArgs([]string{"diff"})
	require.NoError(t, diff.Execute())
	assert.Equal(t, msgNoDifferencesFromDefault+"\n", out.String())
}

func TestConfigValidateRejectsBadNaming(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "preferences:\n  default_model: m\nmodels:\n  - name: m\n    provider: gemini\n    model_id: gemini-2.5-flash\nartifact:\n  naming: random\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cmd := NewConfigCommand(&app.Container{ConfigLoader: config.NewFileLoader(path)})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"validate"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestConfigValidateAcceptsDefaults(t *testing.T) {
	cmd := NewConfigCommand(containerWithDefaults(t))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"validate"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, msgConfigurationValid+"\n", out.String())
}

func TestModelsListMarksDefault(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	cmd := NewModelsCommand(containerWithDefaults(t))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list"})

	require.NoError(t, cmd.Execute())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "NAME\tPROVIDER\tMODEL ID\tKEY\tDEFAULT", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "gemini-flash\tgemini\tgemini-2.5-flash\t"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], "\t*"), lines[1])
}

func TestDoctorReportsFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "preferences:\n  default_model: missing\nmodels:\n  - name: m\n    provider: gemini\n    model_id: gemini-2.5-flash\nartifact:\n  dir: '" + t.TempDir() + "'\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	loader := config.NewFileLoader(path)

	container := &app.Container{
		ConfigLoader: loader,
		DoctorService: &doctor.Service{
			ConfigProvider:     loader,
			CredentialResolver: credential.Snapshot(nil),
			Interpreter:        launcher.NewLocalLauncher("/nonexistent/interpreter-for-test"),
		},
	}
	cmd := NewDoctorCommand(container)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "diagnostics completed with errors")
	assert.Contains(t, out.String(), "[ERROR] Config file")
	assert.Contains(t, out.String(), "[WARN] Interpreter")
}

func TestDoctorWithoutService(t *testing.T) {
	cmd := NewDoctorCommand(&app.Container{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	assert.EqualError(t, cmd.Execute(), errDoctorServiceUnavailable)
}

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "appgen version "+version.Version+"\n"))
	assert.Contains(t, out.String(), "Go version: ")
}
