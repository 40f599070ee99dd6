package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/appgen/internal/app"
)

// NewModelsCommand creates the models command
func NewModelsCommand(container *app.Container) *cobra.Command {
	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "Inspect configured models",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listModels(cmd.Context(), cmd.OutOrStdout(), container)
		},
	}
	modelsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List configured models",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listModels(cmd.Context(), cmd.OutOrStdout(), container)
		},
	})
	return modelsCmd
}

// listModels prints every configured model and whether a default key was found.
func listModels(ctx context.Context, out io.Writer, container *app.Container) error {
	if container.ConfigLoader == nil {
		return fmt.Errorf(errConfigLoaderUnavailable)
	}
	cfg, err := container.ConfigLoader.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Fprintf(out, "NAME\tPROVIDER\tMODEL ID\tKEY\tDEFAULT\n")
	for _, model := range cfg.Models {
		defaultMarker := ""
		if cfg.Preferences.DefaultModel == model.Name {
			defaultMarker = "*"
		}
		key := "missing"
		if container.Credentials != nil && container.Credentials.HasDefault(model) {
			key = "set"
		}
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\n",
			model.Name,
			model.Kind(),
			model.ModelID,
			key,
			defaultMarker)
	}
	return nil
}
