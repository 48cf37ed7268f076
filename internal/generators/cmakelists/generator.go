// Package cmakelists renders the CMakeLists.txt project description.
package cmakelists

import (
	"embed"
	"fmt"

	"github.com/BishwashGurung/GCM/fledge/generator"
	"github.com/BishwashGurung/GCM/internal/config"
	"github.com/BishwashGurung/GCM/internal/project"
	"github.com/Masterminds/semver/v3"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// FileName is the name of the generated file.
const FileName = "CMakeLists.txt"

// Language standards are fixed
const (
	CStandard   = 23
	CXXStandard = 23
)

// Data is the template input.
type Data struct {
	Name         string
	CMakeVersion string
	CStandard    int
	CXXStandard  int
}

// Generator generates CMakeLists.txt
type Generator struct {
	renderer     *generator.Renderer
	dir          string
	cmakeVersion *semver.Version
}

// New creates a CMakeLists.txt generator writing into dir.
func New(dir string, cmakeVersion *semver.Version) *Generator {
	return &Generator{
		renderer:     generator.NewRenderer(templatesFS),
		dir:          dir,
		cmakeVersion: cmakeVersion,
	}
}

// Render returns the file content for the given project.
func (g *Generator) Render(name project.Name) ([]byte, error) {
	data := Data{
		Name:         name.String(),
		CMakeVersion: config.CMakeVersionString(g.cmakeVersion),
		CStandard:    CStandard,
		CXXStandard:  CXXStandard,
	}

	content, err := g.renderer.Render("templates/CMakeLists.txt.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", FileName, err)
	}
	return content, nil
}

// Generate returns the operation that writes CMakeLists.txt.
func (g *Generator) Generate(name project.Name, guard generator.ExistenceGuard) ([]generator.Operation, error) {
	content, err := g.Render(name)
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
