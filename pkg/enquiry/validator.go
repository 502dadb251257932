package enquiry

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var embeddedDocument []byte

const (
	defaultPath      = "/contact.html"
	formContentType  = "application/x-www-form-urlencoded"
	formLevelErrorID = ""
)

var fieldLabels = map[string]string{
	FieldName:    "Name",
	FieldEmail:   "Email",
	FieldMessage: "Message",
}

// Document returns the embedded OpenAPI document describing the contact
// endpoint.
func Document() []byte {
	out := make([]byte, len(embeddedDocument))
	copy(out, embeddedDocument)
	return out
}

// ValidationError reports every schema violation of an enquiry. Fields is
// keyed by form field name; the empty key holds form-level messages.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, strings.Join(e.Fields[key], "; "))
	}
	return "enquiry: invalid submission: " + strings.Join(parts, "; ")
}

type Option func(*config)

type config struct {
	document []byte
	path     string
}

// WithDocument validates against an alternative OpenAPI document.
func WithDocument(data []byte) Option {
	return func(cfg *config) {
		if len(data) > 0 {
			cfg.document = data
		}
	}
}

// WithPath selects the path whose POST request body holds the schema.
func WithPath(path string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(path) != "" {
			cfg.path = strings.TrimSpace(path)
		}
	}
}

// Validator checks enquiries against the request body schema of the contact
// endpoint.
type Validator struct {
	schema *openapi3.Schema
}

// NewValidator loads and validates the OpenAPI document and extracts the
// form request body schema.
func NewValidator(options ...Option) (*Validator, error) {
	cfg := config{document: embeddedDocument, path: defaultPath}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(cfg.document)
	if err != nil {
		return nil, fmt.Errorf("enquiry: load document: %w", err)
	}
	if err := doc.Validate(loader.Context, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("enquiry: validate document: %w", err)
	}

	schema, err := requestSchema(doc, cfg.path)
	if err != nil {
		return nil, err
	}
	return &Validator{schema: schema}, nil
}

func requestSchema(doc *openapi3.T, path string) (*openapi3.Schema, error) {
	if doc.Paths == nil {
		return nil, errors.New("enquiry: document does not contain any paths")
	}
	item := doc.Paths.Find(path)
	if item == nil || item.Post == nil {
		return nil, fmt.Errorf("enquiry: document has no POST %s operation", path)
	}
	body := item.Post.RequestBody
	if body == nil || body.Value == nil {
		return nil, fmt.Errorf("enquiry: POST %s has no request body", path)
	}
	media := body.Value.Content.Get(formContentType)
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, fmt.Errorf("enquiry: POST %s has no %s schema", path, formContentType)
	}
	return media.Schema.Value, nil
}

// Validate returns nil when e satisfies the schema, otherwise a
// *ValidationError listing every violation.
func (v *Validator) Validate(ctx context.Context, e Enquiry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := v.schema.VisitJSON(e.payload(), openapi3.MultiErrors())
	if err == nil {
		return nil
	}

	fields := make(map[string][]string)
	collectErrors(err, fields)
	return &ValidationError{Fields: fields}
}

func collectErrors(err error, fields map[string][]string) {
	switch e := err.(type) {
	case openapi3.MultiError:
		for _, inner := range e {
			collectErrors(inner, fields)
		}
	case *openapi3.SchemaError:
		field := strings.Join(e.JSONPointer(), "/")
		fields[field] = appendUnique(fields[field], schemaMessage(field, e))
	default:
		fields[formLevelErrorID] = appendUnique(fields[formLevelErrorID], err.Error())
	}
}

func schemaMessage(field string, err *openapi3.SchemaError) string {
	label, ok := fieldLabels[field]
	if !ok {
		return err.Reason
	}
	switch err.SchemaField {
	case "required":
		return label + " is required"
	case "minLength":
		return label + " is required"
	case "maxLength":
		if err.Schema != nil && err.Schema.MaxLength != nil {
			return fmt.Sprintf("%s must be at most %d characters", label, *err.Schema.MaxLength)
		}
		return label + " is too long"
	case "pattern":
		if field == FieldEmail {
			return "Email must be a valid email address"
		}
		return label + " has an invalid format"
	default:
		return label + ": " + err.Reason
	}
}

func appendUnique(messages []string, message string) []string {
	for _, existing := range messages {
		if existing == message {
			return messages
		}
	}
	return append(messages, message)
}
