// Package presets builds CMakePresets.json: one configure and one build
// preset per (host system, compiler, build type), all inheriting a hidden
// base preset and guarded by a host system condition.
package presets

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BishwashGurung/GCM/fledge/generator"
	"github.com/Masterminds/semver/v3"
)

// FileName is the name of the generated file.
const FileName = "CMakePresets.json"

// Generator generates CMakePresets.json
type Generator struct {
	dir          string
	cmakeVersion *semver.Version
}

// New creates a presets generator writing into dir.
func New(dir string, cmakeVersion *semver.Version) *Generator {
	return &Generator{
		dir:          dir,
		cmakeVersion: cmakeVersion,
	}
}

// Render encodes the preset document and validates the result.
func (g *Generator) Render() ([]byte, error) {
	doc := NewDocument(CMakeVersion{
		Major: g.cmakeVersion.Major(),
		Minor: g.cmakeVersion.Minor(),
		Patch: g.cmakeVersion.Patch(),
	})

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", FileName, err)
	}

	if err := Validate(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("generated %s failed validation: %w", FileName, err)
	}

	return buf.Bytes(), nil
}

// Generate returns the operation that writes CMakePresets.json.
func (g *Generator) Generate(guard generator.ExistenceGuard) ([]generator.Operation, error) {
	content, err := g.Render()
	if err != nil {
		return nil, err
	}

	return []generator.Operation{
		&generator.WriteFileOp{
			Dir:     g.dir,
			Name:    FileName,
			Content: content,
			Mode:    0644,
			Guard:   guard,
		},
	}, nil
}
