package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/geometryzen/multivectors-sub001/internal/config"
	"github.com/geometryzen/multivectors-sub001/internal/dimension"
	"github.com/geometryzen/multivectors-sub001/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Policy     string // overrides the config file when set

	// Config is resolved by the root command before any subcommand runs.
	Config *config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the uom CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "uom",
		Short: "uom - units of measure",
		Long:  "Dimensional analysis with exact rational exponents: build, check and render units of measure.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				msg := fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
				_ = (&OutputFormatter{Format: "text", Writer: cmd.ErrOrStderr()}).Error(ErrCodeInvalidInput, msg, nil)
				return NewExitError(ExitCommandError, msg)
			}
			if err := opts.resolve(cmd); err != nil {
				// Subcommands silence cobra's own error printing.
				_ = opts.formatter(cmd).Error(ErrCodeConfig, err.Error(), nil)
				return err
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (.yaml, .toml or .cue)")
	cmd.PersistentFlags().StringVar(&opts.Policy, "policy", "", "checking policy (strict|none), overrides config")

	cmd.AddCommand(NewFormatCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewTagsCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// resolve loads the configuration, applies flag overrides and installs the
// process-wide policy and logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "load config", err)
		}
		cfg = loaded
	}
	if o.Policy != "" {
		cfg.Policy = o.Policy
	}
	if o.Verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid config", err)
	}

	if err := dimension.SetCheckingPolicy(cfg.Policy); err != nil {
		return WrapExitError(ExitCommandError, "invalid config", err)
	}

	var err error
	switch cfg.Logging.Output {
	case "", "stderr":
		err = logging.InitializeWriter(cfg.Logging, cmd.ErrOrStderr())
	default:
		err = logging.Initialize(cfg.Logging)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "init logging", err)
	}

	o.Config = &cfg
	return nil
}

// settings returns the resolved config, or the defaults when a subcommand
// runs without its root (as in tests).
func (o *RootOptions) settings() config.Config {
	if o.Config != nil {
		return *o.Config
	}
	cfg := config.Default()
	if o.Policy != "" {
		cfg.Policy = o.Policy
	}
	return cfg
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}
