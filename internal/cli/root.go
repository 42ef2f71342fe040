package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/system-cleanup/internal/cleanup"
	"github.com/mmr-tortoise/system-cleanup/internal/config"
	"github.com/mmr-tortoise/system-cleanup/internal/diskspace"
	"github.com/mmr-tortoise/system-cleanup/internal/logging"
	"github.com/mmr-tortoise/system-cleanup/internal/model"
	"github.com/mmr-tortoise/system-cleanup/internal/privilege"
	"github.com/mmr-tortoise/system-cleanup/internal/proc"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

var errorColor = color.New(color.FgRed, color.Bold)

// Deps holds everything the root command talks to outside the process.
// Tests replace the fields; main uses DefaultDeps.
type Deps struct {
	// Runner executes pacman, paccache and journalctl. Nil means an
	// os/exec runner streaming to the command's stdout and stderr.
	Runner proc.Runner

	// Probe samples free space for the reclaimed-space report. Nil
	// disables the report.
	Probe diskspace.Probe

	// EUID returns the effective user id. Nil means the real one.
	EUID func() int

	// Config is the embedded defaults document. Nil means config.MustDefault.
	Config *config.Config

	// Log receives debug diagnostics. Nil discards them.
	Log *logrus.Logger
}

// DefaultDeps returns the dependencies of the installed binary.
func DefaultDeps() Deps {
	return Deps{
		Probe:  diskspace.Statfs{},
		EUID:   privilege.EffectiveUID,
		Config: config.MustDefault(),
		Log:    logging.New(os.Stderr, logging.DebugFromEnv()),
	}
}

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand(deps Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "system-cleanup",
		Short: "Reclaim disk space on an Arch Linux system",
		Long: `system-cleanup removes orphaned packages, prunes the pacman package cache
and vacuums the systemd journal. It must be run as root.

Actions run in the order their flags are given and the run stops at the
first action that fails. All arguments are checked first: an unknown flag
anywhere means no action runs at all.`,

		// Flags are parsed by run itself, in order of appearance.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,

		// SilenceUsage and SilenceErrors leave all error output to Run.
		SilenceUsage:  true,
		SilenceErrors: true,

		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},

		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, deps, args)
		},
	}

	registerFlags(rootCmd.Flags())
	return rootCmd
}

// run is the whole pipeline: privilege check, argument parsing, then the
// requested actions in order.
func run(cmd *cobra.Command, deps Deps, args []string) error {
	euid := deps.EUID
	if euid == nil {
		euid = privilege.EffectiveUID
	}
	if err := privilege.Check(euid()); err != nil {
		return err
	}

	inv, err := parseArgs(cmd.Flags(), args)
	if err != nil {
		return err
	}

	switch {
	case inv.help:
		return cmd.Help()
	case inv.version:
		fmt.Fprintln(cmd.OutOrStdout(), versionString())
		return nil
	}

	log := deps.Log
	if log == nil {
		log = logging.Discard()
	}
	runner := deps.Runner
	if runner == nil {
		runner = proc.NewExecRunner(cmd.OutOrStdout(), cmd.ErrOrStderr(), log)
	}

	cleaner := cleanup.New(cleanup.Options{
		Runner: runner,
		Probe:  deps.Probe,
		Config: deps.Config,
		Out:    cmd.OutOrStdout(),
		Log:    log,
	})

	log.WithField("actions", inv.actions).Debug("running actions")
	return cleaner.RunAll(cmd.Context(), inv.actions)
}

func versionString() string {
	return fmt.Sprintf("system-cleanup %s (commit: %s, built: %s)", Version, Commit, Date)
}

// Execute runs the root command and exits the process with the resulting
// exit code. This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	os.Exit(int(Run(rootCmd)))
}

// Run executes rootCmd, reports any error on its error stream, and
// returns the exit code. Usage errors are followed by the usage text.
func Run(rootCmd *cobra.Command) model.ExitCode {
	err := rootCmd.Execute()
	if err == nil {
		return model.ExitSuccess
	}

	printError(rootCmd.ErrOrStderr(), err)
	if model.IsKind(err, model.KindUsage) {
		// Usage() would follow the out writer once one is set.
		fmt.Fprint(rootCmd.ErrOrStderr(), rootCmd.UsageString())
	}
	return ExitCode(err)
}

// ExitCode translates an error returned by the root command into a process
// exit code. CLIError types carry their own exit codes; other errors
// default to ExitFailure.
func ExitCode(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitFailure
}

// printError writes "Error: <message>" with the prefix in red when w is a
// terminal.
func printError(w io.Writer, err error) {
	errorColor.Fprint(w, "Error:")
	fmt.Fprintf(w, " %v\n", err)
}
