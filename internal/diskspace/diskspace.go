package diskspace

import (
	"context"
	"fmt"

	units "github.com/docker/go-units"
	"github.com/shirou/gopsutil/v4/disk"
)

// Probe reports the free bytes available on the filesystem holding path.
type Probe interface {
	Free(ctx context.Context, path string) (uint64, error)
}

// Statfs is the gopsutil backed Probe.
type Statfs struct{}

// Free implements Probe.
func (Statfs) Free(ctx context.Context, path string) (uint64, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("statfs %s: %w", path, err)
	}
	return usage.Free, nil
}

// Reclaimed returns how many bytes were freed between two samples. Free
// space that shrank (other writers, journald itself) counts as nothing
// reclaimed.
func Reclaimed(before, after uint64) uint64 {
	if after <= before {
		return 0
	}
	return after - before
}

// Format renders a byte count with binary units ("1.5GiB").
func Format(n uint64) string {
	return units.BytesSize(float64(n))
}
