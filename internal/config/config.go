// Package config provides hierarchical configuration management for
// cratekit using koanf. Configuration is loaded with priority: environment
// variables > project config (.cratekit/config.yml) > user config
// (~/.config/cratekit/config.yml) > defaults. A legacy JSON user config
// (~/.cratekit/config.json) is still read, with a migration warning.
//
// The name and email fields deliberately have no environment layer here:
// CRATEKIT_NAME and CRATEKIT_EMAIL belong to the identity chain, which
// ranks them below the config file.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the cratekit tool configuration.
type Configuration struct {
	// Name is the author name override written into scaffolded manifests.
	// Highest-priority identity layer.
	Name string `koanf:"name"`

	// Email is the author email override paired with Name.
	Email string `koanf:"email"`

	// VCS is the default version control mode when --vcs is not passed.
	// Valid values: "git", "none", "auto" (or empty for auto).
	// Can be set via the CRATEKIT_VCS env var.
	VCS string `koanf:"vcs"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// UserConfigPath overrides the user config path (default: XDG location).
	UserConfigPath string
	// ProjectConfigPath overrides the project config path (default: .cratekit/config.yml).
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr).
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings.
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: environment variables > project config > user config > defaults.
func Load() (*Configuration, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := getWarningWriter(opts.WarningWriter)

	loadDefaults(k)

	if err := loadUserConfig(k, opts.UserConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// getWarningWriter returns the warning writer or defaults to stderr.
func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads user-level config (YAML preferred, legacy JSON
// supported). Warns when only the legacy JSON file exists.
func loadUserConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	userYAMLPath := customPath
	if userYAMLPath == "" {
		userYAMLPath = UserConfigPath()
	}
	legacyUserPath, _ := LegacyUserConfigPath()

	if fileExists(userYAMLPath) {
		if err := loadYAMLConfig(k, userYAMLPath, "user"); err != nil {
			return fmt.Errorf("loading user config: %w", err)
		}
		return nil
	}

	if fileExists(legacyUserPath) {
		if err := k.Load(file.Provider(legacyUserPath), json.Parser()); err != nil {
			return fmt.Errorf("loading legacy user config %s: %w", legacyUserPath, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: using deprecated JSON config at %s\n", legacyUserPath)
			fmt.Fprintf(warningWriter, "  Move it to %s in YAML format.\n\n", userYAMLPath)
		}
	}
	return nil
}

// loadProjectConfig loads the project-level config when present.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	projectYAMLPath := customPath
	if projectYAMLPath == "" {
		projectYAMLPath = ProjectConfigPath()
	}

	if !fileExists(projectYAMLPath) {
		return nil
	}
	if err := loadYAMLConfig(k, projectYAMLPath, "project"); err != nil {
		return fmt.Errorf("loading project config: %w", err)
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("CRATEKIT_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: CRATEKIT_VCS -> vcs. CRATEKIT_NAME and CRATEKIT_EMAIL are
// skipped: they are identity layers, not config-file overrides.
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "CRATEKIT_"))
	if key == "name" || key == "email" {
		return ""
	}
	return key
}
