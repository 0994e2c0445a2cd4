// ABOUTME: Settings loading with defaults, global + project YAML merge and env overrides
// ABOUTME: YAML-based configuration using gopkg.in/yaml.v3

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the merged configuration.
type Settings struct {
	Banner      string `yaml:"banner,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
	QuitKey     string `yaml:"quit_key,omitempty"`
	LogFile     string `yaml:"log_file,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
}

// EnvLogFile overrides Settings.LogFile when set.
const EnvLogFile = "XIM_LOG_FILE"

// Defaults returns the built-in settings for the given version string.
func Defaults(version string) *Settings {
	return &Settings{
		Banner:      "Xim editor -- version " + version,
		Placeholder: "~",
		QuitKey:     "ctrl+q",
		LogLevel:    "info",
	}
}

// Load layers the global file (or globalPath, when non-empty), then the
// project file, over the defaults. Missing files are skipped; an
// explicitly named globalPath must exist.
func Load(version, projectRoot, globalPath string) (*Settings, error) {
	explicit := globalPath != ""
	if !explicit {
		globalPath = GlobalConfigFile()
	}

	global, err := loadFile(globalPath)
	if err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(merge(Defaults(version), global), project)
	if v := os.Getenv(EnvLogFile); v != "" {
		merged.LogFile = v
	}
	ResolveEnvVars(merged)

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Validate checks fields that are parsed later.
func (s *Settings) Validate() error {
	if _, err := ParseCtrlKey(s.QuitKey); err != nil {
		return fmt.Errorf("quit_key: %w", err)
	}
	if s.Placeholder == "" {
		return errors.New("placeholder: must not be empty")
	}
	return nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero fields of over onto base.
func merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if over == nil {
		return base
	}

	result := *base

	if over.Banner != "" {
		result.Banner = over.Banner
	}
	if over.Placeholder != "" {
		result.Placeholder = over.Placeholder
	}
	if over.QuitKey != "" {
		result.QuitKey = over.QuitKey
	}
	if over.LogFile != "" {
		result.LogFile = over.LogFile
	}
	if over.LogLevel != "" {
		result.LogLevel = over.LogLevel
	}

	return &result
}
