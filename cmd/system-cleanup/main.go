// Package main is the entry point for the system-cleanup CLI.
//
// It delegates all functionality to the internal/cli package, which
// defines the cobra root command. Build-time variables (version, commit,
// date) are injected via ldflags and default to "dev", "none", and
// "unknown" during development.
package main

import (
	"github.com/mmr-tortoise/system-cleanup/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand(cli.DefaultDeps())
	cli.Execute(rootCmd)
}
