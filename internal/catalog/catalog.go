// Package catalog holds the table of invocation modes and the output set
// each one renders.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Artifact names a group of generated files.
type Artifact string

const (
	ArtifactCMakeLists     Artifact = "cmakelists"
	ArtifactPresets        Artifact = "presets"
	ArtifactUnixScripts    Artifact = "unix-scripts"
	ArtifactWindowsScripts Artifact = "windows-scripts"
)

var knownArtifacts = map[Artifact]bool{
	ArtifactCMakeLists:     true,
	ArtifactPresets:        true,
	ArtifactUnixScripts:    true,
	ArtifactWindowsScripts: true,
}

// Mode is one invocation mode and its output set.
type Mode struct {
	Name        string     `yaml:"name"`
	Keyword     string     `yaml:"keyword"`
	Description string     `yaml:"description"`
	Artifacts   []Artifact `yaml:"artifacts"`
}

// Catalog is the full mode table.
type Catalog struct {
	Default string `yaml:"default"`
	Modes   []Mode `yaml:"modes"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse decodes and checks a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	names := make(map[string]bool, len(c.Modes))
	keywords := make(map[string]bool, len(c.Modes))

	for _, m := range c.Modes {
		if m.Name == "" {
			return fmt.Errorf("catalog: mode without a name")
		}
		if names[m.Name] {
			return fmt.Errorf("catalog: duplicate mode %q", m.Name)
		}
		names[m.Name] = true

		if m.Keyword != "" {
			if keywords[m.Keyword] {
				return fmt.Errorf("catalog: keyword %q used by more than one mode", m.Keyword)
			}
			keywords[m.Keyword] = true
		}

		if len(m.Artifacts) == 0 {
			return fmt.Errorf("catalog: mode %q has no artifacts", m.Name)
		}
		for _, a := range m.Artifacts {
			if !knownArtifacts[a] {
				return fmt.Errorf("catalog: mode %q lists unknown artifact %q", m.Name, a)
			}
		}
	}

	if !names[c.Default] {
		return fmt.Errorf("catalog: default mode %q is not defined", c.Default)
	}
	return nil
}

// DefaultMode returns the mode used when no argument is given.
func (c *Catalog) DefaultMode() Mode {
	for _, m := range c.Modes {
		if m.Name == c.Default {
			return m
		}
	}
	return Mode{}
}

// Lookup returns the mode selected by keyword.
func (c *Catalog) Lookup(keyword string) (Mode, bool) {
	if keyword == "" {
		return Mode{}, false
	}
	for _, m := range c.Modes {
		if m.Keyword == keyword {
			return m, true
		}
	}
	return Mode{}, false
}

// Keywords returns the selectable modes in catalog order.
func (c *Catalog) Keywords() []Mode {
	var modes []Mode
	for _, m := range c.Modes {
		if m.Keyword != "" {
			modes = append(modes, m)
		}
	}
	return modes
}
