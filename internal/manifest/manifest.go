// Package manifest models the slice of the package manifest the scaffolder
// writes and reads. Rendering is template-based because the authors field's
// escaping and the field order are part of the observable contract; decoding
// goes through a real TOML parser.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the manifest file name at the package root.
const FileName = "Cargo.toml"

// InitialVersion is the version every scaffolded package starts at.
const InitialVersion = "0.1.0"

// Manifest is the decoded form of a package manifest. Only the fields the
// scaffolder cares about are modeled; everything else is out of scope.
type Manifest struct {
	Package      Package           `toml:"package"`
	Dependencies map[string]string `toml:"dependencies"`
}

// Package is the manifest's package table.
type Package struct {
	Name    string   `toml:"name"`
	Version string   `toml:"version"`
	Authors []string `toml:"authors"`
}

// Render produces the manifest contents for a new package. author is the
// already-escaped author string; when empty, the authors field is omitted
// entirely rather than written as an empty-string entry.
func Render(name, author string) string {
	var sb strings.Builder
	sb.WriteString("[package]\n")
	fmt.Fprintf(&sb, "name = %q\n", name)
	fmt.Fprintf(&sb, "version = %q\n", InitialVersion)
	if author != "" {
		fmt.Fprintf(&sb, "authors = [\"%s\"]\n", author)
	}
	sb.WriteString("\n[dependencies]\n")
	return sb.String()
}

// Load decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// Exists reports whether dir already contains a manifest.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, FileName))
	return err == nil
}
