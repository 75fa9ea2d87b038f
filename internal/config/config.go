// Package config handles loading taskdown.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/taskdown/taskdown/internal/paths"
)

// Config represents the taskdown.toml configuration file.
type Config struct {
	Extract Extract `toml:"extract"`
	Board   Board   `toml:"board"`
	State   State   `toml:"state"`
}

// Extract controls which inline metadata extraction recognizes.
type Extract struct {
	// Tags enables #tag recognition in task titles.
	Tags bool `toml:"tags"`

	// DueDates enables due:YYYY-MM-DD recognition in task titles.
	DueDates bool `toml:"due-dates"`
}

// Board contains board selection configuration.
type Board struct {
	// Default names the board (ID or unique prefix) commands act on when
	// none is given. Overrides the default recorded in the state file.
	Default string `toml:"default"`
}

// State contains state storage configuration.
type State struct {
	// Dir overrides the directory holding boards.json.
	Dir string `toml:"dir"`
}

// Default returns the configuration used when no config file defines a value.
func Default() *Config {
	return &Config{
		Extract: Extract{Tags: true, DueDates: true},
	}
}

// Load loads configuration from the working directory and the global config
// file, with working-directory values winning. Returns defaults if no config
// files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, "taskdown.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	merged := Default()

	merged.Extract.Tags = mergeBool(merged.Extract.Tags,
		globalMeta.IsDefined("extract", "tags"), globalCfg.Extract.Tags,
		projectMeta.IsDefined("extract", "tags"), projectCfg.Extract.Tags)
	merged.Extract.DueDates = mergeBool(merged.Extract.DueDates,
		globalMeta.IsDefined("extract", "due-dates"), globalCfg.Extract.DueDates,
		projectMeta.IsDefined("extract", "due-dates"), projectCfg.Extract.DueDates)

	merged.Board.Default = mergeString(projectMeta.IsDefined("board", "default"),
		projectCfg.Board.Default, globalCfg.Board.Default)
	merged.State.Dir = mergeString(projectMeta.IsDefined("state", "dir"),
		projectCfg.State.Dir, globalCfg.State.Dir)

	return merged
}

func mergeBool(fallback bool, globalDefined, globalValue, projectDefined, projectValue bool) bool {
	if projectDefined {
		return projectValue
	}
	if globalDefined {
		return globalValue
	}
	return fallback
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
