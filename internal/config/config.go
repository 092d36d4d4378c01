// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Source types understood by the adapter factory.
const (
	TypeHackerNews     = "hackernews"
	TypeYC             = "yc"
	TypeWellfound      = "wellfound"
	TypeRemoteOK       = "remoteok"
	TypeWeWorkRemotely = "weworkremotely"
)

// SourceConfig describes one scrape target.
type SourceConfig struct {
	Name   string `json:"name" validate:"required"`
	Type   string `json:"type" validate:"required,oneof=hackernews yc wellfound remoteok weworkremotely"`
	URL    string `json:"url,omitempty" validate:"omitempty,url"` // required for thread sources, optional for boards
	Active bool   `json:"active"`
}

// Config is the aggregation run configuration loaded from a JSON file.
type Config struct {
	Sources  []SourceConfig `json:"sources" validate:"required,min=1,dive"`
	Output   string         `json:"output,omitempty"`
	Strategy string         `json:"strategy,omitempty" validate:"omitempty,oneof=fuzzy exact"`
	Verbose  bool           `json:"verbose,omitempty"`
}

// DefaultOutput is where consolidated records land when no output path is
// configured.
const DefaultOutput = "jobs.json"

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	return &cfg, nil
}

// Default returns the configuration used when no config file is given: the
// job boards with their standard listing pages. Thread sources need a
// thread URL and so cannot have a default entry.
func Default() *Config {
	return &Config{
		Sources: []SourceConfig{
			{Name: "YC", Type: TypeYC, Active: true},
			{Name: "Wellfound", Type: TypeWellfound, Active: true},
			{Name: "RemoteOK", Type: TypeRemoteOK, Active: true},
			{Name: "WeWorkRemotely", Type: TypeWeWorkRemotely, Active: true},
		},
		Output: DefaultOutput,
	}
}

// Validate checks the configuration against its struct tags plus the
// per-type rules tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	for _, src := range c.Sources {
		if src.Type == TypeHackerNews && src.URL == "" {
			return fmt.Errorf("config error: source %q: hackernews sources require a thread url", src.Name)
		}
	}
	return nil
}

// ActiveSources returns the sources enabled for this run.
func (c *Config) ActiveSources() []SourceConfig {
	active := make([]SourceConfig, 0, len(c.Sources))
	for _, src := range c.Sources {
		if src.Active {
			active = append(active, src)
		}
	}
	return active
}
