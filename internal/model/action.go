package model

import (
	"fmt"
	"strings"
)

// Action identifies one of the cleanup operations the CLI can run.
// The string value doubles as the command-line flag name (without "--").
type Action string

const (
	// ActionOrphans removes installed packages that nothing depends on.
	ActionOrphans Action = "clean"

	// ActionCache prunes the package cache down to the newest versions.
	ActionCache Action = "cache"

	// ActionJournal vacuums the systemd journal to a size threshold.
	ActionJournal Action = "journal"
)

// String returns the string representation of Action.
func (a Action) String() string {
	return string(a)
}

// IsValid checks whether the Action value is one of the predefined actions.
func (a Action) IsValid() bool {
	switch a {
	case ActionOrphans, ActionCache, ActionJournal:
		return true
	default:
		return false
	}
}

// Describe returns the one-line help text shown next to the action's flag.
func (a Action) Describe() string {
	switch a {
	case ActionOrphans:
		return "Remove orphaned packages"
	case ActionCache:
		return "Clean package cache"
	case ActionJournal:
		return "Clean system journal"
	default:
		return ""
	}
}

// ParseAction converts a flag name (with or without leading dashes) to an
// Action. Returns an error if the name does not match any action.
func ParseAction(s string) (Action, error) {
	action := Action(strings.TrimLeft(strings.ToLower(s), "-"))
	if !action.IsValid() {
		return "", fmt.Errorf("invalid action: %q (valid: clean, cache, journal)", s)
	}
	return action, nil
}

// AllActions returns every action in the order "--all" runs them:
// orphans first so the cache prune sees the final package set, then the
// package cache, then the journal.
func AllActions() []Action {
	return []Action{ActionOrphans, ActionCache, ActionJournal}
}
