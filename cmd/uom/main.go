// Package main is the entry point for the uom CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/geometryzen/multivectors-sub001/internal/cli"
	"github.com/geometryzen/multivectors-sub001/internal/logging"
)

func main() {
	err := cli.NewRootCommand().Execute()
	logging.Sync()
	if err == nil {
		return
	}

	// Exit errors were already reported by the command; flag and usage
	// errors were not.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}
	os.Exit(exitErr.Code)
}
