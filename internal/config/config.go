// Package config loads the promptline configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/eirnym-learn/promptline/internal/ports"
)

// Config holds all configuration for promptline. Repository-scoped
// overrides of the git flags live in git config, not here; this file only
// sets the request defaults.
type Config struct {
	Theme      string    `mapstructure:"theme"`
	TimeLayout string    `mapstructure:"time_layout"`
	Verbose    bool      `mapstructure:"verbose"`
	Git        GitConfig `mapstructure:"git"`
}

// GitConfig holds the collector request defaults.
type GitConfig struct {
	Reference           string `mapstructure:"reference"`
	IncludeSubmodules   bool   `mapstructure:"include_submodules"`
	IncludeUntracked    bool   `mapstructure:"include_untracked"`
	RefreshStatus       bool   `mapstructure:"refresh_status"`
	IncludeAheadBehind  bool   `mapstructure:"include_ahead_behind"`
	IncludeWorkdirStats bool   `mapstructure:"include_workdir_stats"`
}

// Request maps the configured defaults onto a collector request.
func (g GitConfig) Request() ports.GitRequest {
	return ports.GitRequest{
		ReferenceName:       g.Reference,
		IncludeSubmodules:   g.IncludeSubmodules,
		IncludeUntracked:    g.IncludeUntracked,
		RefreshStatus:       g.RefreshStatus,
		IncludeAheadBehind:  g.IncludeAheadBehind,
		IncludeWorkdirStats: g.IncludeWorkdirStats,
	}
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	req := ports.DefaultGitRequest()
	return &Config{
		Theme:      "utf",
		TimeLayout: "15:04",
		Git: GitConfig{
			Reference:           req.ReferenceName,
			IncludeSubmodules:   req.IncludeSubmodules,
			IncludeUntracked:    req.IncludeUntracked,
			RefreshStatus:       req.RefreshStatus,
			IncludeAheadBehind:  req.IncludeAheadBehind,
			IncludeWorkdirStats: req.IncludeWorkdirStats,
		},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(base, "promptline", "config.toml"), nil
}

// Load reads the configuration from path, or from the default location
// when path is empty. A missing file yields the defaults; the prompt must
// render even on a fresh machine, and a prompt redraw never writes files.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("theme", def.Theme)
	v.SetDefault("time_layout", def.TimeLayout)
	v.SetDefault("verbose", def.Verbose)
	v.SetDefault("git.reference", def.Git.Reference)
	v.SetDefault("git.include_submodules", def.Git.IncludeSubmodules)
	v.SetDefault("git.include_untracked", def.Git.IncludeUntracked)
	v.SetDefault("git.refresh_status", def.Git.RefreshStatus)
	v.SetDefault("git.include_ahead_behind", def.Git.IncludeAheadBehind)
	v.SetDefault("git.include_workdir_stats", def.Git.IncludeWorkdirStats)
}
