package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/kerlingfarm/farmsite/content"
	"github.com/kerlingfarm/farmsite/internal/util"
	"github.com/kerlingfarm/farmsite/pkg/interfaces"
)

// HTMLRenderer renders pages from a parsed html/template set.
type HTMLRenderer struct {
	templates *template.Template
}

var _ interfaces.TemplateRenderer = (*HTMLRenderer)(nil)

// NewHTMLRenderer parses every template matching patterns from fsys. The
// icon registry backs the "icon" template helper; a nil registry renders
// empty markup for every key.
func NewHTMLRenderer(fsys fs.FS, icons *content.IconRegistry, patterns ...string) (*HTMLRenderer, error) {
	if len(patterns) == 0 {
		patterns = []string{"*.html"}
	}

	templates, err := template.New("site").Funcs(templateFuncs(icons)).ParseFS(fsys, patterns...)
	if err != nil {
		return nil, fmt.Errorf("generator: parse templates: %w", err)
	}
	return &HTMLRenderer{templates: templates}, nil
}

// Render executes the named template. The rendered document is returned
// and, when writers are given, copied to each of them.
func (r *HTMLRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	if r.templates.Lookup(name) == nil {
		return "", fmt.Errorf("generator: template %q not found", name)
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("generator: execute template %q: %w", name, err)
	}
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return "", fmt.Errorf("generator: write rendered template %q: %w", name, err)
		}
	}
	return buf.String(), nil
}

func templateFuncs(icons *content.IconRegistry) template.FuncMap {
	return template.FuncMap{
		"jsonld": func(doc any) (template.HTML, error) {
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return "", fmt.Errorf("generator: marshal structured data: %w", err)
			}
			return template.HTML(`<script type="application/ld+json">` + "\n" + string(data) + "\n</script>"), nil
		},
		"icon": func(key string) template.HTML {
			if icons == nil {
				return ""
			}
			return icons.Render(key)
		},
		"formatPrice": util.FormatPrice,
		"truncate":    util.TruncateText,
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}
}
