package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

// executeRoot runs the full uom command tree with args and returns stdout,
// stderr and the command error.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return execute(t, NewRootCommand(), args...)
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}
