// Package chatlink builds WhatsApp click-to-chat deep links. It only formats
// strings; no request is ever made.
package chatlink

import (
	"net/url"
	"strings"
	"unicode"
)

// BaseURL is the click-to-chat endpoint.
const BaseURL = "https://wa.me/"

// Link returns a deep link opening a chat with phone, prefilled with text.
// Non-digit characters are dropped from phone except for placeholder X/x
// characters, which are kept so unconfigured content stays recognisable.
// An empty text omits the query string.
func Link(phone, text string) string {
	var b strings.Builder
	b.WriteString(BaseURL)
	b.WriteString(normalizePhone(phone))
	if text = strings.TrimSpace(text); text != "" {
		b.WriteString("?text=")
		b.WriteString(EscapeText(text))
	}
	return b.String()
}

// EscapeText escapes text as a URI component: spaces become %20 rather than
// the form-encoding "+".
func EscapeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) || r == 'X' || r == 'x' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
