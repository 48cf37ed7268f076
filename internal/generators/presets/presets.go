package presets

import (
	"fmt"
	"strings"
)

// SchemaVersion is the presets file format version written.
const SchemaVersion = 6

// BaseName is the hidden preset every configure preset inherits from.
const BaseName = "base"

// Document is a CMakePresets.json file.
type Document struct {
	Version              int               `json:"version"`
	CMakeMinimumRequired CMakeVersion      `json:"cmakeMinimumRequired"`
	ConfigurePresets     []ConfigurePreset `json:"configurePresets"`
	BuildPresets         []BuildPreset     `json:"buildPresets"`
}

// CMakeVersion is the cmakeMinimumRequired object.
type CMakeVersion struct {
	Major uint64 `json:"major"`
	Minor uint64 `json:"minor"`
	Patch uint64 `json:"patch"`
}

// ConfigurePreset is one entry of configurePresets.
type ConfigurePreset struct {
	Name           string         `json:"name"`
	Hidden         bool           `json:"hidden,omitempty"`
	Inherits       string         `json:"inherits,omitempty"`
	Generator      string         `json:"generator,omitempty"`
	BinaryDir      string         `json:"binaryDir,omitempty"`
	Condition      *Condition     `json:"condition,omitempty"`
	CacheVariables map[string]any `json:"cacheVariables,omitempty"`
}

// Condition restricts a preset to one host system.
type Condition struct {
	Type string `json:"type"`
	LHS  string `json:"lhs"`
	RHS  string `json:"rhs"`
}

// BuildPreset is one entry of buildPresets.
type BuildPreset struct {
	Name            string `json:"name"`
	ConfigurePreset string `json:"configurePreset"`
}

// Target is one (host system, compiler) pair in the preset matrix.
type Target struct {
	Prefix     string // Preset name prefix ("win", "linux", "macos")
	HostSystem string // Value of ${hostSystemName}
	Compiler   string // Compiler label used in the preset name
	CC         string // CMAKE_C_COMPILER, empty leaves the toolchain default
	CXX        string // CMAKE_CXX_COMPILER
}

// Targets is the fixed preset matrix.
var Targets = []Target{
	{Prefix: "win", HostSystem: "Windows", Compiler: "gcc", CC: "gcc", CXX: "g++"},
	{Prefix: "win", HostSystem: "Windows", Compiler: "clang-cl", CC: "clang-cl", CXX: "clang-cl"},
	{Prefix: "linux", HostSystem: "Linux", Compiler: "clang", CC: "clang", CXX: "clang++"},
	{Prefix: "macos", HostSystem: "Darwin", Compiler: "clang"},
}

// BuildTypes are crossed with every target.
var BuildTypes = []string{"Debug", "Release"}

// PresetName returns the configure and build preset name for a matrix cell.
func PresetName(t Target, buildType string) string {
	return fmt.Sprintf("%s-%s-%s", t.Prefix, t.Compiler, strings.ToLower(buildType))
}

// NewDocument builds the preset document for the given minimum CMake version.
func NewDocument(minimum CMakeVersion) *Document {
	doc := &Document{
		Version:              SchemaVersion,
		CMakeMinimumRequired: minimum,
		ConfigurePresets: []ConfigurePreset{
			{
				Name:      BaseName,
				Hidden:    true,
				Generator: "Ninja",
				BinaryDir: "${sourceDir}/build/${presetName}",
				CacheVariables: map[string]any{
					"CMAKE_EXPORT_COMPILE_COMMANDS": true,
				},
			},
		},
	}

	for _, target := range Targets {
		for _, buildType := range BuildTypes {
			name := PresetName(target, buildType)

			vars := map[string]any{"CMAKE_BUILD_TYPE": buildType}
			if target.CC != "" {
				vars["CMAKE_C_COMPILER"] = target.CC
			}
			if target.CXX != "" {
				vars["CMAKE_CXX_COMPILER"] = target.CXX
			}

			doc.ConfigurePresets = append(doc.ConfigurePresets, ConfigurePreset{
				Name:     name,
				Inherits: BaseName,
				Condition: &Condition{
					Type: "equals",
					LHS:  "${hostSystemName}",
					RHS:  target.HostSystem,
				},
				CacheVariables: vars,
			})
			doc.BuildPresets = append(doc.BuildPresets, BuildPreset{
				Name:            name,
				ConfigurePreset: name,
			})
		}
	}

	return doc
}
