package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// UserConfigPath returns the path to the user-level config file,
// following the XDG Base Directory Specification:
//   - Linux: ~/.config/cratekit/config.yml
//   - macOS: ~/Library/Application Support/cratekit/config.yml
//   - Windows: %LOCALAPPDATA%\cratekit\config.yml
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "cratekit", "config.yml")
}

// ProjectConfigPath returns the path to the project-level config file,
// always .cratekit/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".cratekit", "config.yml")
}

// LegacyUserConfigPath returns the path to the legacy user-level JSON
// config file at ~/.cratekit/config.json.
func LegacyUserConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".cratekit", "config.json"), nil
}
