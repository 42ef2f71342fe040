package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/mmr-tortoise/system-cleanup/internal/model"
)

const (
	allFlag     = "all"
	helpFlag    = "help"
	versionFlag = "version"
)

// errStopParsing ends ParseAll as soon as --help or --version is seen.
var errStopParsing = errors.New("stop parsing")

// invocation is the validated result of the argument vector.
type invocation struct {
	// actions in the order they were requested, --all expanded in place.
	actions []model.Action

	help    bool
	version bool
}

// registerFlags declares the root command's flags on fs in the order they
// are listed in the usage text.
func registerFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false

	// A bare word stops parsing so it is reported before anything after it.
	fs.SetInterspersed(false)

	for _, action := range model.AllActions() {
		fs.Bool(action.String(), false, action.Describe())
	}
	fs.Bool(allFlag, false, "Run all cleanup actions (clean, cache, journal)")
	fs.BoolP(helpFlag, "h", false, "Show this help message")
	fs.Bool(versionFlag, false, "Print version information")
}

// parseArgs walks args left to right. Every flag is checked before any
// action is returned, so an invalid argument means nothing runs. --help
// and --version win over everything after them.
func parseArgs(fs *pflag.FlagSet, args []string) (invocation, error) {
	if len(args) == 0 {
		return invocation{}, model.NewCLIError(model.KindUsage, "no action specified")
	}

	var inv invocation
	err := fs.ParseAll(args, func(flag *pflag.Flag, value string) error {
		if err := fs.Set(flag.Name, value); err != nil {
			return err
		}
		if enabled, _ := strconv.ParseBool(value); !enabled {
			return nil
		}

		switch flag.Name {
		case helpFlag:
			inv.help = true
			return errStopParsing
		case versionFlag:
			inv.version = true
			return errStopParsing
		case allFlag:
			inv.actions = append(inv.actions, model.AllActions()...)
		default:
			action, err := model.ParseAction(flag.Name)
			if err != nil {
				return err
			}
			inv.actions = append(inv.actions, action)
		}
		return nil
	})

	if inv.help || inv.version {
		return invocation{help: inv.help, version: inv.version}, nil
	}
	if err != nil {
		return invocation{}, model.NewCLIError(model.KindUsage, err.Error())
	}
	if rest := fs.Args(); len(rest) > 0 {
		return invocation{}, model.NewCLIError(model.KindUsage, fmt.Sprintf("unexpected argument %q", rest[0]))
	}
	if len(inv.actions) == 0 {
		return invocation{}, model.NewCLIError(model.KindUsage, "no action specified")
	}
	return inv, nil
}
