package cli

import (
	"github.com/spf13/cobra"

	"github.com/geometryzen/multivectors-sub001/internal/unit"
)

// FormatOptions holds flags for the format command.
type FormatOptions struct {
	Exponents   string
	Multiplier  float64
	Compact     bool
	Radix       int
	Fixed       int
	Precision   int
	Exponential int
}

// FormatResult is the JSON payload of the format command.
type FormatResult struct {
	Display string          `json:"display"`
	Unit    unit.Descriptor `json:"unit"`
}

// NewFormatCommand creates the format command.
func NewFormatCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FormatOptions{}

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Render a unit of measure",
		Long: `Build a unit from a multiplier and seven base-dimension exponents
(M,L,T,Q,K,N,J) and render it, preferring named symbols such as N or J.

Examples:
  uom format --exponents 1,1,-2,0,0,0,0
  uom format --exponents 0,1,0,0,0,0,0 --multiplier 1000 --fixed 2`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Exponents, "exponents", "e", "", "exponents M,L,T,Q,K,N,J (required)")
	cmd.Flags().Float64VarP(&opts.Multiplier, "multiplier", "m", 1, "scale factor relative to SI base units")
	cmd.Flags().BoolVar(&opts.Compact, "compact", true, "omit a multiplier of exactly 1")
	cmd.Flags().IntVar(&opts.Radix, "radix", 10, "radix for the multiplier (2-36)")
	cmd.Flags().IntVar(&opts.Fixed, "fixed", 0, "render the multiplier with this many decimals")
	cmd.Flags().IntVar(&opts.Precision, "precision", 0, "render the multiplier with this many significant digits")
	cmd.Flags().IntVar(&opts.Exponential, "exponential", 0, "render the multiplier in exponential notation with this many fraction digits")
	_ = cmd.MarkFlagRequired("exponents")
	cmd.MarkFlagsMutuallyExclusive("fixed", "precision", "exponential", "radix")

	return cmd
}

func runFormat(rootOpts *RootOptions, opts *FormatOptions, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)
	cfg := rootOpts.settings()

	compact := cfg.Compact
	if cmd.Flags().Changed("compact") {
		compact = opts.Compact
	}
	radix := cfg.Radix
	if cmd.Flags().Changed("radix") {
		radix = opts.Radix
	}
	if radix < 2 || radix > 36 {
		msg := "radix must be in [2, 36]"
		_ = formatter.Error(ErrCodeInvalidInput, msg, radix)
		return NewExitError(ExitCommandError, msg)
	}

	u, err := buildUnit(opts.Exponents, opts.Multiplier, cfg.BaseLabels())
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid unit", err)
	}
	formatter.VerboseLog("dimensions: %s (tag %s)", u.Dimensions(), u.Dimensions().Tag())

	var display string
	switch {
	case cmd.Flags().Changed("fixed"):
		display = u.ToFixed(opts.Fixed, compact)
	case cmd.Flags().Changed("precision"):
		display = u.ToPrecision(opts.Precision, compact)
	case cmd.Flags().Changed("exponential"):
		display = u.ToExponential(opts.Exponential, compact)
	default:
		display = u.ToString(radix, compact)
	}

	desc, err := unit.Describe(u)
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "describe unit", err)
	}
	return formatter.Success(display, FormatResult{Display: display, Unit: desc})
}
