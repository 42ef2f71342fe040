// Package config holds the built-in settings of the cleanup actions.
//
// The settings live in defaults.yaml, embedded at build time and decoded
// with gopkg.in/yaml.v3 in strict mode (unknown keys are errors). They are
// not user-overridable: the CLI surface is the flags only.
//
// Sizes are written the way journalctl and humans write them ("100M") and
// parsed with github.com/docker/go-units, which uses base-1024 units just
// like journalctl does. Validate reports every problem at once.
package config
