package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"

	units "github.com/docker/go-units"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the decoded settings document.
type Config struct {
	Orphans OrphansConfig `yaml:"orphans"`
	Cache   CacheConfig   `yaml:"cache"`
	Journal JournalConfig `yaml:"journal"`
}

// OrphansConfig configures the orphan cleanup.
type OrphansConfig struct {
	// DataDir is the directory whose filesystem is sampled to report
	// reclaimed space.
	DataDir string `yaml:"data_dir"`
}

// CacheConfig configures the package cache prune.
type CacheConfig struct {
	DataDir string `yaml:"data_dir"`

	// KeepVersions is how many versions of each package survive the prune.
	KeepVersions int `yaml:"keep_versions"`
}

// JournalConfig configures the journal vacuum.
type JournalConfig struct {
	DataDir string `yaml:"data_dir"`

	// VacuumSize is the size the journal is vacuumed down to, in
	// journalctl notation ("100M").
	VacuumSize string `yaml:"vacuum_size"`
}

// VacuumBytes returns VacuumSize in bytes. Suffixes are base 1024, which
// is how journalctl reads them.
func (j JournalConfig) VacuumBytes() (int64, error) {
	n, err := units.RAMInBytes(j.VacuumSize)
	if err != nil {
		return 0, fmt.Errorf("journal.vacuum_size: %w", err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("journal.vacuum_size: %q must be positive", j.VacuumSize)
	}
	return n, nil
}

// Default decodes the embedded defaults document.
func Default() (*Config, error) {
	return Parse(defaultsYAML)
}

// MustDefault is Default for package initialisation paths; the embedded
// document is covered by tests, so a failure here is a build defect.
func MustDefault() *Config {
	cfg, err := Default()
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Parse decodes and validates a settings document.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field, reporting all problems at once.
func (c *Config) Validate() error {
	var errs []error

	for key, dir := range map[string]string{
		"orphans.data_dir": c.Orphans.DataDir,
		"cache.data_dir":   c.Cache.DataDir,
		"journal.data_dir": c.Journal.DataDir,
	} {
		if !filepath.IsAbs(dir) {
			errs = append(errs, fmt.Errorf("%s: %q is not an absolute path", key, dir))
		}
	}

	if c.Cache.KeepVersions < 0 {
		errs = append(errs, fmt.Errorf("cache.keep_versions: %d must not be negative", c.Cache.KeepVersions))
	}

	if _, err := c.Journal.VacuumBytes(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
