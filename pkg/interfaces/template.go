package interfaces

import "io"

// TemplateRenderer renders a named template with the supplied data. When an
// output writer is provided the rendered markup is streamed to it; otherwise
// the markup is returned as a string.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}
