package generator

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"text/template"
)

// Renderer executes the text templates of one file system, usually the
// embed.FS of a generator package. Each template is parsed on first use and
// reused afterwards.
type Renderer struct {
	fsys  fs.FS
	funcs template.FuncMap

	mu     sync.Mutex
	parsed map[string]*template.Template
}

// NewRenderer creates a renderer reading templates from fsys.
func NewRenderer(fsys fs.FS) *Renderer {
	return &Renderer{
		fsys: fsys,
		funcs: template.FuncMap{
			"join":  strings.Join,
			"upper": strings.ToUpper,
			"lower": strings.ToLower,
		},
		parsed: make(map[string]*template.Template),
	}
}

// Render executes the template at path with data. Referencing a field or
// map key that data does not have is an error.
func (r *Renderer) Render(path string, data any) ([]byte, error) {
	tmpl, err := r.template(path)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", path, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) template(path string) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.parsed[path]; ok {
		return tmpl, nil
	}

	text, err := fs.ReadFile(r.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := template.New(path).Funcs(r.funcs).Option("missingkey=error").Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", path, err)
	}

	r.parsed[path] = tmpl
	return tmpl, nil
}
