package main

import (
	"os"

	"github.com/fast-create/fast-create/internal/cli"
	"github.com/fast-create/fast-create/internal/output"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	err := cli.Execute(version, commit, date)
	os.Exit(output.GetExitCode(err))
}
