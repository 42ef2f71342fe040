package cleanup

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/mmr-tortoise/system-cleanup/internal/config"
	"github.com/mmr-tortoise/system-cleanup/internal/diskspace"
	"github.com/mmr-tortoise/system-cleanup/internal/journal"
	"github.com/mmr-tortoise/system-cleanup/internal/logging"
	"github.com/mmr-tortoise/system-cleanup/internal/model"
	"github.com/mmr-tortoise/system-cleanup/internal/pacman"
	"github.com/mmr-tortoise/system-cleanup/internal/proc"
)

var successColor = color.New(color.FgGreen)

// Options configures a Cleaner.
type Options struct {
	// Runner executes the external tools. Required.
	Runner proc.Runner

	// Probe samples free space for the reclaimed-space report. Nil
	// disables the report.
	Probe diskspace.Probe

	// Config supplies keep-count, vacuum size and data directories.
	// Nil means the embedded defaults.
	Config *config.Config

	// Out receives progress lines. Nil discards them.
	Out io.Writer

	// Log receives debug diagnostics. Nil discards them.
	Log *logrus.Logger
}

// Cleaner runs cleanup actions.
type Cleaner struct {
	pacman  *pacman.Manager
	journal *journal.Journal
	probe   diskspace.Probe
	cfg     *config.Config
	out     io.Writer
	log     *logrus.Logger
}

// New creates a Cleaner from opts.
func New(opts Options) *Cleaner {
	c := &Cleaner{
		pacman:  pacman.NewManager(opts.Runner),
		journal: journal.New(opts.Runner),
		probe:   opts.Probe,
		cfg:     opts.Config,
		out:     opts.Out,
		log:     opts.Log,
	}
	if c.cfg == nil {
		c.cfg = config.MustDefault()
	}
	if c.out == nil {
		c.out = io.Discard
	}
	if c.log == nil {
		c.log = logging.Discard()
	}
	return c
}

// RunAll runs actions in order and stops at the first failure, returning
// it. Actions after the failing one are not started.
func (c *Cleaner) RunAll(ctx context.Context, actions []model.Action) error {
	for _, action := range actions {
		if err := c.Run(ctx, action); err != nil {
			return err
		}
	}
	return nil
}

// Run runs a single action.
func (c *Cleaner) Run(ctx context.Context, action model.Action) error {
	c.log.WithField("action", action).Debug("starting action")

	switch action {
	case model.ActionOrphans:
		return c.Orphans(ctx)
	case model.ActionCache:
		return c.Cache(ctx)
	case model.ActionJournal:
		return c.Journal(ctx)
	default:
		return model.NewCLIError(model.KindUsage, fmt.Sprintf("unknown action %q", action))
	}
}

// Orphans removes orphaned packages. Finding none is a success.
func (c *Cleaner) Orphans(ctx context.Context) error {
	c.println("Cleaning up orphaned packages...")
	before := c.sample(ctx, c.cfg.Orphans.DataDir)

	pkgs, err := c.pacman.Orphans(ctx)
	if err != nil {
		return failure("failed to query orphaned packages", err)
	}
	if len(pkgs) == 0 {
		c.println("No orphaned packages found")
		return nil
	}

	c.log.WithField("count", len(pkgs)).Debug("removing orphaned packages")
	if err := c.pacman.Remove(ctx, pkgs); err != nil {
		return failure("failed to remove orphaned packages", err)
	}

	c.success(ctx, "Orphaned packages removed successfully", before)
	return nil
}

// Cache prunes the package cache to the configured number of versions.
func (c *Cleaner) Cache(ctx context.Context) error {
	c.println("Cleaning package cache...")
	before := c.sample(ctx, c.cfg.Cache.DataDir)

	if err := c.pacman.PruneCache(ctx, c.cfg.Cache.KeepVersions); err != nil {
		return failure("failed to clean package cache", err)
	}

	c.success(ctx, "Package cache cleaned successfully", before)
	return nil
}

// Journal vacuums the journal down to the configured size.
func (c *Cleaner) Journal(ctx context.Context) error {
	c.println("Cleaning system journal...")
	before := c.sample(ctx, c.cfg.Journal.DataDir)

	limit, err := c.cfg.Journal.VacuumBytes()
	if err != nil {
		return failure("failed to clean system journal", err)
	}
	if err := c.journal.VacuumSize(ctx, limit); err != nil {
		return failure("failed to clean system journal", err)
	}

	c.success(ctx, "System journal cleaned successfully", before)
	return nil
}

// failure wraps err under message, keeping the kind of the underlying
// error so launch failures stay distinguishable from non-zero exits.
func failure(message string, err error) error {
	kind := model.KindOf(err)
	if kind == "" {
		kind = model.KindExit
	}
	return model.WrapCLIError(kind, message, err)
}

func (c *Cleaner) println(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Cleaner) success(ctx context.Context, msg string, before freeSample) {
	if freed, ok := c.reclaimed(ctx, before); ok && freed > 0 {
		msg = fmt.Sprintf("%s (reclaimed %s)", msg, diskspace.Format(freed))
	}
	successColor.Fprintln(c.out, msg)
}
