// Package enquiry validates contact form submissions against the embedded
// OpenAPI description of the contact endpoint. Submission is a stub:
// enquiries are acknowledged but never delivered.
package enquiry

import (
	"net/url"
	"strings"
)

// Field names posted by the contact form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// FieldNames lists the form fields in display order.
var FieldNames = []string{FieldName, FieldEmail, FieldMessage}

// Enquiry is one contact form submission.
type Enquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// FromValues reads an enquiry from posted form values, trimming whitespace.
func FromValues(values url.Values) Enquiry {
	return Enquiry{
		Name:    strings.TrimSpace(values.Get(FieldName)),
		Email:   strings.TrimSpace(values.Get(FieldEmail)),
		Message: strings.TrimSpace(values.Get(FieldMessage)),
	}
}

// Values returns the enquiry keyed by form field, for re-populating a form.
func (e Enquiry) Values() map[string]string {
	return map[string]string{
		FieldName:    e.Name,
		FieldEmail:   e.Email,
		FieldMessage: e.Message,
	}
}

// payload is the JSON-shaped body validated by the schema. Empty fields are
// omitted so they report as missing.
func (e Enquiry) payload() map[string]any {
	out := make(map[string]any, len(FieldNames))
	for key, value := range e.Values() {
		if value == "" {
			continue
		}
		out[key] = value
	}
	return out
}
