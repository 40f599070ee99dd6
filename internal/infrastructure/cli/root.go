package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/doeshing/appgen/internal/app"
	"github.com/doeshing/appgen/internal/domain"
	"github.com/doeshing/appgen/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The returned cleanup flushes the logger.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, func(), error) {
	container, err := app.BuildContainer(ctx, app.Options{Verbose: opts.Verbose})
	if err != nil {
		return nil, func() {}, err
	}
	cleanup := func() { _ = container.Logger.Sync() }

	rootOpts := &generateOptions{}
	root := &cobra.Command{
		Use:   "appgen [description]",
		Short: "appgen - describe an app, get a running program",
		Long:  "appgen asks a language model to write a complete program from a plain-language description, saves it and launches it.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && stdinIsTerminal() {
				return cmd.Help()
			}
			return runGenerate(cmd, container, rootOpts, args, os.Stdin)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootOpts.bind(root.Flags())
	// Parsed by main before the container exists; declared here so cobra accepts it.
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	root.AddCommand(newGenerateCommand(container, os.Stdin))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewModelsCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, cleanup, nil
}

type generateOptions struct {
	apiKey  string
	model   string
	lang    string
	timeout time.Duration
}

func (o *generateOptions) bind(flags *pflag.FlagSet) {
	flags.StringVar(&o.apiKey, "api-key", "", "API key for this run (default from "+domain.EnvAPIKey+" or the model's auth env var)")
	flags.StringVarP(&o.model, "model", "m", "", "Override model name (default from config)")
	flags.StringVar(&o.lang, "lang", "", "Fence language tag to strip (default from config)")
	flags.DurationVar(&o.timeout, "timeout", 0, "Override request timeout (default from config)")
}

func newGenerateCommand(container *app.Container, stdin io.Reader) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [description]",
		Short: "Generate, save and launch an app from a description",
		Long:  "Generate reads the description from the arguments, or from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, container, opts, args, stdin)
		},
	}
	opts.bind(cmd.Flags())
	return cmd
}

func runGenerate(cmd *cobra.Command, container *app.Container, opts *generateOptions, args []string, stdin io.Reader) error {
	instruction, err := readInstruction(args, stdin)
	if err != nil {
		return err
	}

	timeout := opts.timeout
	if timeout <= 0 {
		timeout = configuredTimeout(cmd.Context(), container)
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	apiKey := opts.apiKey
	if apiKey == "" {
		apiKey = os.Getenv(domain.EnvAPIKey)
	}
	req := domain.GenerationRequest{
		Instruction:   instruction,
		Credential:    apiKey,
		ModelOverride: opts.model,
		Language:      opts.lang,
	}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		container.GenerateService.Progress = NewSpinner(cmd.ErrOrStderr(), "Generating...")
	}
	outcome, err := container.GenerateService.Run(ctx, req)
	RenderOutcome(cmd.OutOrStdout(), cmd.ErrOrStderr(), outcome)
	if domain.KindOf(err) == domain.KindValidation {
		return nil
	}
	return err
}

// readInstruction joins args, or reads all of stdin when there are none.
func readInstruction(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if stdin == nil {
		return "", nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read description: %w", err)
	}
	return string(data), nil
}

func configuredTimeout(ctx context.Context, container *app.Container) time.Duration {
	if container.ConfigLoader == nil {
		return domain.DefaultGenerationTimeout
	}
	cfg, err := container.ConfigLoader.Load(ctx)
	if err != nil {
		return domain.DefaultGenerationTimeout
	}
	return cfg.Preferences.Timeout()
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
