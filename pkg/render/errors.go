package render

import (
	"strconv"
	"strings"
)

// ErrorMapping splits validation feedback into field-level and form-level
// messages. Field keys are the flat form field names.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MergeFormErrors concatenates and normalises form-level messages, trimming
// whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload maps error keys (plain names, dotted paths or JSON
// pointers such as "/body/email") onto the known form fields. Keys that match
// no field become form-level errors so messages are never lost.
func MapErrorPayload(fields []string, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string][]string),
	}
	if len(payload) == 0 {
		mapping.Fields = nil
		return mapping
	}

	known := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if name := strings.TrimSpace(field); name != "" {
			known[name] = struct{}{}
		}
	}

	for rawPath, messages := range payload {
		normalizedMessages := normalizeMessages(messages)
		if len(normalizedMessages) == 0 {
			continue
		}

		field, ok := mapErrorPath(rawPath, known)
		if !ok {
			mapping.Form = append(mapping.Form, normalizedMessages...)
			continue
		}
		mapping.Fields[field] = append(mapping.Fields[field], normalizedMessages...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func mapErrorPath(raw string, known map[string]struct{}) (string, bool) {
	if isFormLevelKey(raw) {
		return "", false
	}
	segments := dropWrapperSegments(stripNumericSegments(parsePathSegments(raw)))
	for _, segment := range segments {
		if _, ok := known[segment]; ok {
			return segment, true
		}
	}
	return "", false
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	clean = strings.TrimPrefix(clean, "#/")
	clean = strings.TrimPrefix(clean, "$/")
	clean = strings.TrimPrefix(clean, "$.")
	clean = strings.TrimLeft(clean, "#/.$")

	replacer := strings.NewReplacer("[", ".", "]", "", "//", "/")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" || segment == "properties" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func dropWrapperSegments(segments []string) []string {
	wrappers := map[string]struct{}{
		"body":    {},
		"request": {},
		"payload": {},
		"data":    {},
		"enquiry": {},
	}

	out := segments
	for len(out) > 0 {
		if _, ok := wrappers[strings.ToLower(out[0])]; ok {
			out = out[1:]
			continue
		}
		break
	}
	return out
}

func stripNumericSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
