package cleanup

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/system-cleanup/internal/config"
	"github.com/mmr-tortoise/system-cleanup/internal/model"
	"github.com/mmr-tortoise/system-cleanup/internal/proc/proctest"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

var (
	errPacmanExit = model.WrapCLIError(model.KindExit, "pacman failed", errors.New("exit status 1"))
	errNotFound   = model.WrapCLIError(model.KindLaunch, "failed to start paccache", errors.New("executable file not found in $PATH"))
)

// fakeProbe answers free-space readings from a per-path queue.
type fakeProbe struct {
	readings map[string][]uint64
	err      error
}

func (p *fakeProbe) Free(_ context.Context, path string) (uint64, error) {
	if p.err != nil {
		return 0, p.err
	}
	q := p.readings[path]
	if len(q) == 0 {
		return 0, errors.New("no reading scripted")
	}
	p.readings[path] = q[1:]
	return q[0], nil
}

// newTestCleaner wires a Cleaner to a fresh Recorder and output buffer.
func newTestCleaner(t *testing.T, probe *fakeProbe) (*Cleaner, *proctest.Recorder, *bytes.Buffer) {
	t.Helper()

	rec := proctest.NewRecorder()
	var out bytes.Buffer
	opts := Options{Runner: rec, Out: &out, Config: config.MustDefault()}
	if probe != nil {
		opts.Probe = probe
	}
	return New(opts), rec, &out
}

// TestOrphans_NoneFound verifies that an empty query succeeds without a
// removal command.
func TestOrphans_NoneFound(t *testing.T) {
	c, rec, out := newTestCleaner(t, nil)
	rec.Errors["pacman"] = errPacmanExit // pacman -Qtdq exits 1 on no match

	require.NoError(t, c.Orphans(context.Background()))

	assert.Equal(t, []string{"pacman"}, rec.Names(), "only the query may run")
	assert.Equal(t, "Cleaning up orphaned packages...\nNo orphaned packages found\n", out.String())
}

// TestOrphans_Removes verifies that the removal receives exactly the
// queried names.
func TestOrphans_Removes(t *testing.T) {
	c, rec, out := newTestCleaner(t, nil)
	rec.Outputs["pacman"] = "python-docutils\nlib32-libva\n"

	require.NoError(t, c.Orphans(context.Background()))

	calls := rec.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"pacman", "-Qtdq"}, calls[0].Argv())
	assert.Equal(t,
		[]string{"pacman", "-Rns", "--noconfirm", "--", "python-docutils", "lib32-libva"},
		calls[1].Argv())
	assert.Equal(t, "Cleaning up orphaned packages...\nOrphaned packages removed successfully\n", out.String())
}

func TestOrphans_RemovalFails(t *testing.T) {
	c, rec, out := newTestCleaner(t, nil)
	rec.Outputs["pacman"] = "foo\n"
	rec.Errors["pacman"] = errPacmanExit

	err := c.Orphans(context.Background())
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindExit))
	assert.Equal(t, "failed to remove orphaned packages: pacman failed: exit status 1", err.Error())
	assert.NotContains(t, out.String(), "successfully")
}

func TestOrphans_QueryCannotStart(t *testing.T) {
	c, rec, _ := newTestCleaner(t, nil)
	rec.Errors["pacman"] = model.WrapCLIError(model.KindLaunch, "failed to start pacman", errors.New("not found"))

	err := c.Orphans(context.Background())
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindLaunch))
	assert.Contains(t, err.Error(), "failed to query orphaned packages")
	assert.Len(t, rec.Calls(), 1)
}

func TestCache(t *testing.T) {
	c, rec, out := newTestCleaner(t, nil)

	require.NoError(t, c.Cache(context.Background()))

	require.Len(t, rec.Calls(), 1)
	assert.Equal(t, []string{"paccache", "-r", "-k", "1"}, rec.Calls()[0].Argv())
	assert.Equal(t, "Cleaning package cache...\nPackage cache cleaned successfully\n", out.String())
}

// TestCache_LaunchFailure verifies that a missing paccache keeps its
// launch kind through the action wrapper.
func TestCache_LaunchFailure(t *testing.T) {
	c, rec, _ := newTestCleaner(t, nil)
	rec.Errors["paccache"] = errNotFound

	err := c.Cache(context.Background())
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindLaunch))
	assert.Contains(t, err.Error(), "failed to clean package cache")
}

func TestJournal(t *testing.T) {
	c, rec, out := newTestCleaner(t, nil)

	require.NoError(t, c.Journal(context.Background()))

	require.Len(t, rec.Calls(), 1)
	assert.Equal(t, []string{"journalctl", "--vacuum-size=100M"}, rec.Calls()[0].Argv())
	assert.Equal(t, "Cleaning system journal...\nSystem journal cleaned successfully\n", out.String())
}

func TestJournal_Failure(t *testing.T) {
	c, rec, _ := newTestCleaner(t, nil)
	rec.Errors["journalctl"] = model.WrapCLIError(model.KindExit, "journalctl failed", errors.New("exit status 1"))

	err := c.Journal(context.Background())
	require.Error(t, err)
	assert.Equal(t, "failed to clean system journal: journalctl failed: exit status 1", err.Error())
}

// TestRunAll_Order verifies the --all order.
func TestRunAll_Order(t *testing.T) {
	c, rec, _ := newTestCleaner(t, nil)

	require.NoError(t, c.RunAll(context.Background(), model.AllActions()))
	assert.Equal(t, []string{"pacman", "paccache", "journalctl"}, rec.Names())
}

// TestRunAll_StopsAtFirstFailure verifies fail-fast: the journal is never
// touched once the cache prune has failed.
func TestRunAll_StopsAtFirstFailure(t *testing.T) {
	c, rec, out := newTestCleaner(t, nil)
	rec.Errors["paccache"] = model.WrapCLIError(model.KindExit, "paccache failed", errors.New("exit status 1"))

	err := c.RunAll(context.Background(), model.AllActions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clean package cache")
	assert.Equal(t, []string{"pacman", "paccache"}, rec.Names())
	assert.NotContains(t, out.String(), "Cleaning system journal...")
}

// TestRunAll_Repeats checks that the same action requested twice runs twice.
func TestRunAll_Repeats(t *testing.T) {
	c, rec, _ := newTestCleaner(t, nil)

	require.NoError(t, c.RunAll(context.Background(), []model.Action{model.ActionJournal, model.ActionJournal}))
	assert.Equal(t, []string{"journalctl", "journalctl"}, rec.Names())
}

func TestRun_UnknownAction(t *testing.T) {
	c, rec, _ := newTestCleaner(t, nil)

	err := c.Run(context.Background(), model.Action("defrag"))
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindUsage))
	assert.Empty(t, rec.Calls())
}

// TestReclaimedReport checks the reclaimed-space suffix on success.
func TestReclaimedReport(t *testing.T) {
	probe := &fakeProbe{readings: map[string][]uint64{
		"/var/cache/pacman/pkg": {1 << 30, 1<<30 + 300<<20},
	}}
	c, _, out := newTestCleaner(t, probe)

	require.NoError(t, c.Cache(context.Background()))
	assert.Contains(t, out.String(), "Package cache cleaned successfully (reclaimed 300MiB)\n")
}

func TestReclaimedReport_NothingFreed(t *testing.T) {
	probe := &fakeProbe{readings: map[string][]uint64{
		"/var/log/journal": {5000, 4000},
	}}
	c, _, out := newTestCleaner(t, probe)

	require.NoError(t, c.Journal(context.Background()))
	assert.Contains(t, out.String(), "System journal cleaned successfully\n")
	assert.NotContains(t, out.String(), "reclaimed")
}

// TestReclaimedReport_ProbeErrorIgnored verifies that a failing probe
// never fails the action.
func TestReclaimedReport_ProbeErrorIgnored(t *testing.T) {
	probe := &fakeProbe{err: errors.New("statfs: no such file or directory")}
	c, rec, out := newTestCleaner(t, probe)

	require.NoError(t, c.Journal(context.Background()))
	assert.Len(t, rec.Calls(), 1)
	assert.Contains(t, out.String(), "System journal cleaned successfully\n")
}

// TestNew_Defaults verifies that a Cleaner built with only a Runner works.
func TestNew_Defaults(t *testing.T) {
	rec := proctest.NewRecorder()
	c := New(Options{Runner: rec})

	require.NoError(t, c.Journal(context.Background()))
	assert.Equal(t, []string{"journalctl", "--vacuum-size=100M"}, rec.Calls()[0].Argv())
}
