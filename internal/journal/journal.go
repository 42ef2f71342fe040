package journal

import (
	"context"
	"fmt"
	"strconv"

	units "github.com/docker/go-units"

	"github.com/mmr-tortoise/system-cleanup/internal/proc"
)

// JournalctlBinary is the systemd journal control executable.
const JournalctlBinary = "journalctl"

// Journal runs journal maintenance through journalctl.
type Journal struct {
	runner proc.Runner
}

// New creates a Journal that executes through runner.
func New(runner proc.Runner) *Journal {
	return &Journal{runner: runner}
}

// VacuumSize removes archived journal files until the journal takes up no
// more than limit bytes. It runs `journalctl --vacuum-size=<limit>`.
func (j *Journal) VacuumSize(ctx context.Context, limit int64) error {
	if limit <= 0 {
		return fmt.Errorf("vacuum size must be positive, got %d", limit)
	}
	return j.runner.Run(ctx, JournalctlBinary, "--vacuum-size="+FormatSize(limit))
}

// FormatSize renders n in journalctl's size notation, using the largest
// base-1024 suffix that represents n exactly: 100 MiB is "100M", 1536 bytes
// is "1536" rather than a rounded "1.5K".
func FormatSize(n int64) string {
	suffixes := []struct {
		unit   int64
		suffix string
	}{
		{units.TiB, "T"},
		{units.GiB, "G"},
		{units.MiB, "M"},
		{units.KiB, "K"},
	}
	for _, s := range suffixes {
		if n >= s.unit && n%s.unit == 0 {
			return strconv.FormatInt(n/s.unit, 10) + s.suffix
		}
	}
	return strconv.FormatInt(n, 10)
}
