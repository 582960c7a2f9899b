package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/geometryzen/multivectors-sub001/internal/dimension"
	"github.com/geometryzen/multivectors-sub001/internal/unit"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	LHS           string
	RHS           string
	LHSMultiplier float64
	RHSMultiplier float64
}

// CheckResult is the JSON payload of the check command.
type CheckResult struct {
	Compatible bool   `json:"compatible"`
	Policy     string `json:"policy"`
	LHS        string `json:"lhs"`
	RHS        string `json:"rhs"`
	// Resolved is the unit the check resolved to.
	Resolved string `json:"resolved,omitempty"`
	// Tolerated is set when the dimensions differ but the policy is none.
	Tolerated bool `json:"tolerated,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check two units for dimensional compatibility",
		Long: `Check whether two units may be added or compared under the active
checking policy.

Exit codes:
  0 - compatible
  1 - incompatible dimensions
  2 - invalid input

Examples:
  uom check --lhs 1,1,-2,0,0,0,0 --rhs 1,1,-2,0,0,0,0
  uom check --lhs 0,1,0,0,0,0,0 --rhs 0,0,1,0,0,0,0 --policy none`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.LHS, "lhs", "", "left exponents M,L,T,Q,K,N,J (required)")
	cmd.Flags().StringVar(&opts.RHS, "rhs", "", "right exponents M,L,T,Q,K,N,J (required)")
	cmd.Flags().Float64Var(&opts.LHSMultiplier, "lhs-multiplier", 1, "left multiplier")
	cmd.Flags().Float64Var(&opts.RHSMultiplier, "rhs-multiplier", 1, "right multiplier")
	_ = cmd.MarkFlagRequired("lhs")
	_ = cmd.MarkFlagRequired("rhs")

	return cmd
}

func runCheck(rootOpts *RootOptions, opts *CheckOptions, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)
	cfg := rootOpts.settings()

	policy, err := dimension.ParsePolicy(cfg.Policy)
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid policy", err)
	}

	lhs, err := buildUnit(opts.LHS, opts.LHSMultiplier, cfg.BaseLabels())
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidInput, err.Error(), "lhs")
		return WrapExitError(ExitCommandError, "invalid lhs", err)
	}
	rhs, err := buildUnit(opts.RHS, opts.RHSMultiplier, cfg.BaseLabels())
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidInput, err.Error(), "rhs")
		return WrapExitError(ExitCommandError, "invalid rhs", err)
	}

	result := CheckResult{
		Policy: policy.String(),
		LHS:    lhs.String(),
		RHS:    rhs.String(),
	}

	resolved, err := unit.Compatible(lhs, rhs, policy)
	if err != nil {
		var incompatible *dimension.IncompatibleError
		if !errors.As(err, &incompatible) {
			_ = formatter.Error(ErrCodeInvalidInput, err.Error(), nil)
			return WrapExitError(ExitCommandError, "check", err)
		}
		_ = formatter.Error(ErrCodeIncompatible, err.Error(), result)
		return WrapExitError(ExitFailure, "check failed", err)
	}

	result.Compatible = true
	result.Resolved = resolved.String()
	result.Tolerated = !lhs.Dimensions().Equals(rhs.Dimensions())
	formatter.VerboseLog("resolved to %s", result.Resolved)

	text := "compatible"
	if result.Tolerated {
		text = "compatible (tolerated under policy none)"
	}
	return formatter.Success(text, result)
}
