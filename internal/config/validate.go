package config

import (
	"fmt"
	"os"

	yamlv3 "gopkg.in/yaml.v3"
)

// ValidateYAMLSyntax checks that a file parses as YAML before it is fed
// into the config loader, so syntax errors surface with the file path.
func ValidateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var doc interface{}
	if err := yamlv3.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return nil
}

// ValidateConfigValues checks the merged configuration for invalid values.
func ValidateConfigValues(cfg *Configuration) error {
	switch cfg.VCS {
	case "", "auto", "git", "none":
		return nil
	default:
		return fmt.Errorf("invalid vcs mode %q (expected git, none, or auto)", cfg.VCS)
	}
}
