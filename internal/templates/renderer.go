package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

// Template actions use the <%= key %> form of the original generator
// templates. Only key/value interpolation is supported.
const (
	leftDelim  = "<%="
	rightDelim = "%>"
)

// Renderer substitutes placeholders in template content.
type Renderer struct {
	funcs template.FuncMap
}

// NewRenderer creates a renderer resolving each key of data to its value.
func NewRenderer(data map[string]string) *Renderer {
	funcs := make(template.FuncMap, len(data))
	for k, v := range data {
		value := v
		funcs[k] = func() string { return value }
	}
	return &Renderer{funcs: funcs}
}

// RenderFile renders a single template file and returns the content.
// Content without any placeholder is returned unchanged, so binary files and
// already-rendered output pass through untouched.
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	if !bytes.Contains(content, []byte(leftDelim)) {
		return content, nil
	}

	tmpl, err := template.New(name).
		Delims(leftDelim, rightDelim).
		Funcs(r.funcs).
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// RenderString renders a template string and returns the result.
func (r *Renderer) RenderString(name, content string) (string, error) {
	result, err := r.RenderFile(name, []byte(content))
	if err != nil {
		return "", err
	}
	return string(result), nil
}
