// Package scripts renders the build, run and clean helper scripts for Unix
// shells and the Windows command interpreter.
//
// Every script takes one optional argument, the compiler to use, which must
// be one of the platform's known compilers. When omitted the configured
// default is used.
package scripts

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"slices"

	"github.com/BishwashGurung/GCM/fledge/generator"
	"github.com/BishwashGurung/GCM/internal/project"
)

//go:embed templates
var templatesFS embed.FS

// BuildDir is the build output directory, relative to the project root.
const BuildDir = "build"

// Scripts are generated in this order for each platform.
var Scripts = []string{"build", "run", "clean"}

// Compiler maps a compiler argument to the C and C++ compiler executables.
type Compiler struct {
	Name string
	CC   string
	CXX  string
}

// Platform describes one family of helper scripts.
type Platform struct {
	Name      string
	Extension string
	Mode      fs.FileMode
	CRLF      bool
	PathSep   string
	ExeSuffix string
	Compilers []Compiler
}

var (
	Unix = Platform{
		Name:      "unix",
		Extension: ".sh",
		Mode:      0755,
		PathSep:   "/",
		Compilers: []Compiler{
			{Name: "gcc", CC: "gcc", CXX: "g++"},
			{Name: "clang", CC: "clang", CXX: "clang++"},
		},
	}

	Windows = Platform{
		Name:      "windows",
		Extension: ".bat",
		Mode:      0644,
		CRLF:      true,
		PathSep:   `\`,
		ExeSuffix: ".exe",
		Compilers: []Compiler{
			{Name: "msvc", CC: "cl", CXX: "cl"},
			{Name: "clang-cl", CC: "clang-cl", CXX: "clang-cl"},
			{Name: "gcc", CC: "gcc", CXX: "g++"},
		},
	}
)

// CompilerNames lists the accepted compiler arguments in order.
func (p Platform) CompilerNames() []string {
	names := make([]string, 0, len(p.Compilers))
	for _, c := range p.Compilers {
		names = append(names, c.Name)
	}
	return names
}

// Supports reports whether name is one of the platform's compilers.
func (p Platform) Supports(name string) bool {
	return slices.Contains(p.CompilerNames(), name)
}

// FileName returns the script file name, e.g. "build.sh".
func (p Platform) FileName(script string) string {
	return script + p.Extension
}

// Executable returns the path of the built program relative to the project root.
func (p Platform) Executable(name project.Name) string {
	return BuildDir + p.PathSep + name.String() + p.ExeSuffix
}

// UnsupportedCompilerError is returned when the default compiler is not in
// the platform's set.
type UnsupportedCompilerError struct {
	Platform  string
	Compiler  string
	Supported []string
}

func (e *UnsupportedCompilerError) Error() string {
	return fmt.Sprintf("unsupported %s compiler %q (expected one of: %v)", e.Platform, e.Compiler, e.Supported)
}

// Data is the template input.
type Data struct {
	Name            string
	Executable      string
	BuildDir        string
	DefaultCompiler string
	Compilers       []Compiler
	CompilerNames   []string
}

// Generator generates the helper scripts for one platform.
type Generator struct {
	renderer        *generator.Renderer
	dir             string
	platform        Platform
	defaultCompiler string
}

// New creates a script generator writing into dir. defaultCompiler must be
// one of the platform's compilers.
func New(dir string, platform Platform, defaultCompiler string) (*Generator, error) {
	if !platform.Supports(defaultCompiler) {
		return nil, &UnsupportedCompilerError{
			Platform:  platform.Name,
			Compiler:  defaultCompiler,
			Supported: platform.CompilerNames(),
		}
	}

	return &Generator{
		renderer:        generator.NewRenderer(templatesFS),
		dir:             dir,
		platform:        platform,
		defaultCompiler: defaultCompiler,
	}, nil
}

// Render returns the content of one script.
func (g *Generator) Render(name project.Name, script string) ([]byte, error) {
	data := Data{
		Name:            name.String(),
		Executable:      g.platform.Executable(name),
		BuildDir:        BuildDir,
		DefaultCompiler: g.defaultCompiler,
		Compilers:       g.platform.Compilers,
		CompilerNames:   g.platform.CompilerNames(),
	}

	fileName := g.platform.FileName(script)
	path := "templates/" + g.platform.Name + "/" + fileName + ".tmpl"

	content, err := g.renderer.Render(path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", fileName, err)
	}

	if g.platform.CRLF {
		content = bytes.ReplaceAll(content, []byte("\n"), []byte("\r\n"))
	}
	return content, nil
}

// Generate returns the operations that write build, run and clean, in order.
func (g *Generator) Generate(name project.Name, guard generator.ExistenceGuard) ([]generator.Operation, error) {
	ops := make([]generator.Operation, 0, len(Scripts))

	for _, script := range Scripts {
		content, err := g.Render(name, script)
		if err != nil {
			return nil, err
		}

		ops = append(ops, &generator.WriteFileOp{
			Dir:     g.dir,
			Name:    g.platform.FileName(script),
			Content: content,
			Mode:    g.platform.Mode,
			Guard:   guard,
		})
	}

	return ops, nil
}
