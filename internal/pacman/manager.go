package pacman

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmr-tortoise/system-cleanup/internal/model"
	"github.com/mmr-tortoise/system-cleanup/internal/proc"
)

const (
	// PacmanBinary is the package manager executable.
	PacmanBinary = "pacman"

	// PaccacheBinary is the cache pruning tool shipped with pacman-contrib.
	PaccacheBinary = "paccache"
)

// Manager provides pacman operations by invoking the pacman CLI.
type Manager struct {
	runner proc.Runner
}

// NewManager creates a Manager that executes through runner.
func NewManager(runner proc.Runner) *Manager {
	return &Manager{runner: runner}
}

// Orphans returns the names of installed packages that were pulled in as
// dependencies and are no longer required by anything.
//
// It runs `pacman -Qtdq`:
//
//	-Q  query the local database
//	-t  packages not required by any other package
//	-d  packages installed as dependencies
//	-q  names only, one per line
//
// pacman exits with status 1 when the query matches nothing, so the exit
// status of the query is not treated as a failure. Only a query that could
// not be started at all is an error.
func (m *Manager) Orphans(ctx context.Context) ([]string, error) {
	output, err := m.runner.Output(ctx, PacmanBinary, "-Qtdq")
	if err != nil && !model.IsKind(err, model.KindExit) {
		return nil, err
	}
	return parseOrphans(output), nil
}

// RemoveArgs builds the argument vector that removes pkgs together with
// their now-unneeded dependencies and the configuration files pacman
// backed up (-Rns), without prompting.
//
// Package names are placed after "--" so that no name can be read as an
// option.
func RemoveArgs(pkgs []string) []string {
	args := make([]string, 0, len(pkgs)+3)
	args = append(args, "-Rns", "--noconfirm", "--")
	return append(args, pkgs...)
}

// Remove uninstalls pkgs in a single pacman transaction. Removing nothing
// is a no-op and does not invoke pacman.
func (m *Manager) Remove(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	return m.runner.Run(ctx, PacmanBinary, RemoveArgs(pkgs)...)
}

// PruneCache removes cached package archives, keeping the keep most recent
// versions of each package. It runs `paccache -r -k <keep>`.
func (m *Manager) PruneCache(ctx context.Context, keep int) error {
	if keep < 0 {
		return fmt.Errorf("keep must not be negative, got %d", keep)
	}
	return m.runner.Run(ctx, PaccacheBinary, "-r", "-k", strconv.Itoa(keep))
}

// parseOrphans splits `pacman -Qtdq` output into package names.
//
// Example input:
//
//	python-docutils
//	lib32-libva
//	<empty line at end>
func parseOrphans(output string) []string {
	var pkgs []string
	for _, line := range strings.Split(output, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		pkgs = append(pkgs, name)
	}
	return pkgs
}
