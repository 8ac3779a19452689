// Package options loads conversion defaults from a YAML file.
// Command-line flags always override file values; an absent file means
// plain defaults, so conversion output without any configuration stays
// byte-identical across machines.
package options

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/chatdown/internal/config"
)

// DefaultExtension is the output extension used when none is
// configured.
const DefaultExtension = ".md"

// optionsFileName is the per-user defaults file inside the config dir.
const optionsFileName = "options.yaml"

// File holds conversion defaults read from an options file.
type File struct {
	// Frontmatter prepends a YAML frontmatter block to every document.
	Frontmatter bool `yaml:"frontmatter"`
	// NoHeader omits the chat-details header.
	NoHeader bool `yaml:"no_header"`
	// Extension overrides the default output extension (".md").
	Extension string `yaml:"extension"`
}

// Load reads an options file from the given path.
// Returns an error if the file is missing or not valid YAML.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options file %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing options file %s: %w", path, err)
	}
	return &f, nil
}

// LoadDefault reads the per-user options file from the config
// directory. A missing file is not an error and yields plain defaults.
func LoadDefault() *File {
	dir := config.Dir()
	if dir == "" {
		return &File{}
	}

	f, err := Load(filepath.Join(dir, optionsFileName))
	if err != nil {
		return &File{}
	}
	return f
}

// OutputExtension returns the configured output extension, falling back
// to the default.
func (f *File) OutputExtension() string {
	if f.Extension == "" {
		return DefaultExtension
	}
	return f.Extension
}
