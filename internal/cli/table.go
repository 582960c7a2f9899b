package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geometryzen/multivectors-sub001/internal/dimension"
	"github.com/geometryzen/multivectors-sub001/internal/unit"
)

// TableEntry is one row of the named-unit table.
type TableEntry struct {
	Symbol     string `json:"symbol"`
	Dimensions string `json:"dimensions"`
	Tag        string `json:"tag"`
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "table",
		Short:         "List the named units in display priority order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(rootOpts, cmd)
		},
	}
}

func runTable(rootOpts *RootOptions, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)

	named := unit.NamedUnits()
	entries := make([]TableEntry, 0, len(named))
	var text strings.Builder
	for _, nu := range named {
		dims, err := dimension.FromKey(nu.Signature)
		if err != nil {
			_ = formatter.Error(ErrCodeInvalidInput, err.Error(), nu.Symbol)
			return WrapExitError(ExitCommandError, "named unit table", err)
		}
		entries = append(entries, TableEntry{
			Symbol:     nu.Symbol,
			Dimensions: dims.String(),
			Tag:        dims.Tag().String(),
		})
		fmt.Fprintf(&text, "%-22s %s\n", nu.Symbol, dims.String())
	}

	return formatter.Success(strings.TrimSuffix(text.String(), "\n"), entries)
}
