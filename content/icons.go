package content

import "html/template"

// IconRenderer produces inline SVG markup for a value icon.
type IconRenderer func() template.HTML

// IconRegistry maps icon keys used by about-page values to renderers. A key
// that does not resolve yields absence; the presentation layer omits the
// icon instead of failing.
type IconRegistry struct {
	renderers map[string]IconRenderer
}

// NewIconRegistry returns an empty registry.
func NewIconRegistry() *IconRegistry {
	return &IconRegistry{renderers: map[string]IconRenderer{}}
}

// DefaultIconRegistry returns the registry with the icons the site ships.
func DefaultIconRegistry() *IconRegistry {
	registry := NewIconRegistry()
	for key, path := range builtinIconPaths {
		registry.Register(key, svgRenderer(path))
	}
	return registry
}

// Register adds or replaces a renderer. Empty keys and nil renderers are
// ignored.
func (r *IconRegistry) Register(key string, renderer IconRenderer) {
	if r == nil || key == "" || renderer == nil {
		return
	}
	r.renderers[key] = renderer
}

// Resolve looks up the renderer for a key. The boolean reports whether the
// key resolved; a miss is a normal outcome, not an error.
func (r *IconRegistry) Resolve(key string) (IconRenderer, bool) {
	if r == nil {
		return nil, false
	}
	renderer, ok := r.renderers[key]
	return renderer, ok
}

// Render returns the markup for a key, or empty markup when the key does not
// resolve. This is the degrade-gracefully path used by templates.
func (r *IconRegistry) Render(key string) template.HTML {
	renderer, ok := r.Resolve(key)
	if !ok {
		return ""
	}
	return renderer()
}

// builtinIconPaths holds the path data for the icons referenced by the
// shipped about content.
var builtinIconPaths = map[string]string{
	"leaf":     "M5 21c8 0 14-6 14-14V3h-4C7 3 3 9 3 15v2",
	"heart":    "M12 21C7 16.5 3 13 3 8.5 3 5.5 5.5 3 8.5 3c1.7 0 3 .8 3.5 2 .5-1.2 1.8-2 3.5-2C18.5 3 21 5.5 21 8.5c0 4.5-4 8-9 12.5",
	"home":     "M3 10.5 12 3l9 7.5V21h-6v-6H9v6H3v-10.5",
	"users":    "M16 21v-2a4 4 0 0 0-8 0v2M12 11a4 4 0 1 0 0-8 4 4 0 0 0 0 8",
	"sun":      "M12 17a5 5 0 1 0 0-10 5 5 0 0 0 0 10M12 1v2m0 18v2M1 12h2m18 0h2",
	"coffee":   "M18 8h1a4 4 0 0 1 0 8h-1M2 8h16v9a4 4 0 0 1-4 4H6a4 4 0 0 1-4-4V8",
	"windmill": "M12 12V2m0 10 8.5 5M12 12l-8.5 5M12 12l3 9H9l3-9",
}

func svgRenderer(path string) IconRenderer {
	const (
		prefix = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="`
		suffix = `"/></svg>`
	)
	markup := template.HTML(prefix + path + suffix)
	return func() template.HTML {
		return markup
	}
}
