package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain executes the CLI and returns the process exit code. Errors are
// always echoed to stderr: flag and logger-setup failures happen before
// the zap logger exists.
func runMain(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "scholarship-etl: %v\n", err)
		return 1
	}
	return 0
}
