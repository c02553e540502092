// Package main is the attitude command itself.
package main

import (
	"fmt"
	"io"
	"os"

	"go.viam.com/attitude/cli"
	"go.viam.com/attitude/logging"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the app and returns the process exit code. Failures always reach errOut, even when
// logs are redirected to a file.
func run(args []string, out, errOut io.Writer) int {
	if err := cli.NewApp(out, errOut).Run(args); err != nil {
		//nolint:errcheck
		fmt.Fprintf(errOut, "Error: %v\n", err)
		logging.Global().Error(err)
		//nolint:errcheck
		logging.Global().Sync()
		return 1
	}
	return 0
}
