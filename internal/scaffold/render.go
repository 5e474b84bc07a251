package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/fast-create/fast-create/internal/tooling"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// templateData holds the values config templates can reference.
type templateData struct {
	TestRunner bool
}

// render executes the template for name (e.g. ".eslintrc.js") into memory.
func render(name string, data templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// writeFile renders name and writes it into the project directory.
func writeFile(c *Context, name string) error {
	data := templateData{TestRunner: c.Selection.Has(tooling.TestRunner)}
	content, err := render(name, data)
	if err != nil {
		return err
	}

	path := filepath.Join(c.Dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	c.Files = append(c.Files, name)
	c.Logger.WithField("file", name).Debug("wrote config file")
	return nil
}
