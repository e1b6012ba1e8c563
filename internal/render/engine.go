package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Engine renders a named template against a set of named values. The concrete
// engine is an implementation detail; the renderer only depends on this.
type Engine interface {
	Render(templateID string, values map[string]any) (string, error)
}

var templateFuncs = template.FuncMap{
	"title": cases.Title(language.Und).String,
	"upper": strings.ToUpper,
}

// DirEngine is a disk-backed Engine over a directory of template files. Every
// file is parsed once at construction and cached.
type DirEngine struct {
	templates map[string]*template.Template
}

// NewDirEngine parses every .txt file in dir.
func NewDirEngine(dir string) (*DirEngine, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading template directory %s: %w", dir, err)
	}

	templates := make(map[string]*template.Template)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}
		tmpl, err := template.New(entry.Name()).Funcs(templateFuncs).Parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}
		templates[entry.Name()] = tmpl
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("no templates found in %s", dir)
	}
	return &DirEngine{templates: templates}, nil
}

// Render executes the named template. The template ID must resolve to exactly
// one parsed file.
func (e *DirEngine) Render(templateID string, values map[string]any) (string, error) {
	tmpl, ok := e.templates[templateID]
	if !ok {
		return "", &TemplateError{TemplateID: templateID, Message: "unknown template"}
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, values); err != nil {
		return "", &TemplateError{TemplateID: templateID, Message: "execution failed", Cause: err}
	}
	return buf.String(), nil
}
