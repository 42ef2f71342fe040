package cleanup

import (
	"context"

	"github.com/mmr-tortoise/system-cleanup/internal/diskspace"
)

// freeSample is one free-space reading taken before an action.
type freeSample struct {
	path string
	free uint64
	ok   bool
}

// sample reads free space on path's filesystem. A failed reading only
// disables the report for this action.
func (c *Cleaner) sample(ctx context.Context, path string) freeSample {
	if c.probe == nil {
		return freeSample{path: path}
	}

	free, err := c.probe.Free(ctx, path)
	if err != nil {
		c.log.WithError(err).WithField("path", path).Debug("free space probe failed")
		return freeSample{path: path}
	}
	return freeSample{path: path, free: free, ok: true}
}

// reclaimed takes a second reading and returns the bytes freed since
// before. ok is false when either reading is missing.
func (c *Cleaner) reclaimed(ctx context.Context, before freeSample) (uint64, bool) {
	if !before.ok {
		return 0, false
	}

	after := c.sample(ctx, before.path)
	if !after.ok {
		return 0, false
	}

	freed := diskspace.Reclaimed(before.free, after.free)
	c.log.WithField("path", before.path).WithField("bytes", freed).Debug("reclaimed space")
	return freed, true
}
