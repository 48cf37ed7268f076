package presets

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/tidwall/jsonc"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/presets.schema.jsonc
var schemaSource []byte

const schemaURL = "presets.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Issue is a single problem found in a presets document.
type Issue struct {
	Path    string // Instance location (e.g., "/configurePresets/3/name")
	Message string
}

// ValidationError lists every issue found in a presets document.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path != "" {
			parts = append(parts, issue.Path+": "+issue.Message)
		} else {
			parts = append(parts, issue.Message)
		}
	}
	return "invalid presets document: " + strings.Join(parts, "; ")
}

// getSchema compiles the embedded schema once. The source carries comments,
// which are stripped before compiling.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonc.ToJSON(schemaSource)))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling presets schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("adding presets schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling presets schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks a CMakePresets.json document against the schema and the
// cross references the schema cannot express: unique names, inherited
// presets that exist, and build presets that point at a configure preset.
func Validate(data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &ValidationError{Issues: []Issue{{Message: fmt.Sprintf("not valid JSON: %v", err)}}}
	}

	if err := schema.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return fmt.Errorf("validating presets: %w", err)
		}
		return &ValidationError{Issues: collectIssues(ve)}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return &ValidationError{Issues: []Issue{{Message: err.Error()}}}
	}
	if issues := checkReferences(&doc); len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// collectIssues walks the error tree and keeps the leaf errors.
func collectIssues(ve *jsonschema.ValidationError) []Issue {
	var issues []Issue
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) > 0 {
			for _, cause := range e.Causes {
				walk(cause)
			}
			return
		}

		path := ""
		if len(e.InstanceLocation) > 0 {
			path = "/" + strings.Join(e.InstanceLocation, "/")
		}
		msg := e.Error()
		if e.ErrorKind != nil {
			msg = e.ErrorKind.LocalizedString(printer)
		}
		issues = append(issues, Issue{Path: path, Message: msg})
	}
	walk(ve)

	return dedupe(issues)
}

func dedupe(issues []Issue) []Issue {
	seen := make(map[Issue]bool, len(issues))
	var result []Issue
	for _, issue := range issues {
		if !seen[issue] {
			seen[issue] = true
			result = append(result, issue)
		}
	}
	return result
}

func checkReferences(doc *Document) []Issue {
	var issues []Issue

	configure := make(map[string]bool, len(doc.ConfigurePresets))
	for i, p := range doc.ConfigurePresets {
		if configure[p.Name] {
			issues = append(issues, Issue{
				Path:    fmt.Sprintf("/configurePresets/%d/name", i),
				Message: fmt.Sprintf("duplicate configure preset %q", p.Name),
			})
		}
		configure[p.Name] = true
	}

	for i, p := range doc.ConfigurePresets {
		if p.Inherits != "" && !configure[p.Inherits] {
			issues = append(issues, Issue{
				Path:    fmt.Sprintf("/configurePresets/%d/inherits", i),
				Message: fmt.Sprintf("inherits unknown preset %q", p.Inherits),
			})
		}
	}

	build := make(map[string]bool, len(doc.BuildPresets))
	for i, p := range doc.BuildPresets {
		if build[p.Name] {
			issues = append(issues, Issue{
				Path:    fmt.Sprintf("/buildPresets/%d/name", i),
				Message: fmt.Sprintf("duplicate build preset %q", p.Name),
			})
		}
		build[p.Name] = true

		if p.ConfigurePreset != "" && !configure[p.ConfigurePreset] {
			issues = append(issues, Issue{
				Path:    fmt.Sprintf("/buildPresets/%d/configurePreset", i),
				Message: fmt.Sprintf("unknown configure preset %q", p.ConfigurePreset),
			})
		}
	}

	return issues
}
