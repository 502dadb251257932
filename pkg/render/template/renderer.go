package template

import (
	"io"
)

// TemplateRenderer is the contract page renderers use to execute templates.
type TemplateRenderer interface {
	// RenderTemplate executes the named template file.
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// RenderString parses and executes templateContent.
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	// GlobalContext merges data into the values every template sees.
	GlobalContext(data any) error
}
