package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geometryzen/multivectors-sub001/internal/dimension"
)

// TagEntry is one row of the tags listing.
type TagEntry struct {
	Name       string    `json:"name"`
	Dimensions string    `json:"dimensions"`
	Exponents  [7]string `json:"exponents"`
}

// NewTagsCommand creates the tags command.
func NewTagsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "tags",
		Short:         "List the well-known dimension tags",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTags(rootOpts, cmd)
		},
	}
}

func runTags(rootOpts *RootOptions, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)

	tags := dimension.Tags()
	entries := make([]TagEntry, 0, len(tags))
	lines := make([]string, 0, len(tags))
	for _, t := range tags {
		dims, _ := dimension.FromTag(t)
		shown := dims.String()
		if dims.IsOne() {
			shown = "dimensionless"
		}
		entry := TagEntry{Name: t.String(), Dimensions: shown}
		for i, e := range dims.Exponents() {
			entry.Exponents[i] = e.String()
		}
		entries = append(entries, entry)
		lines = append(lines, fmt.Sprintf("%-34s %s", t.String(), shown))
	}

	return formatter.Success(strings.Join(lines, "\n"), entries)
}
