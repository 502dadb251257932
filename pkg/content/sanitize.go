package content

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextPolicyOnce sync.Once
	richTextPolicy     *bluemonday.Policy
)

// SanitizeHTML strips everything from fragment except inline emphasis.
func SanitizeHTML(fragment RichText) string {
	trimmed := strings.TrimSpace(string(fragment))
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(richTextSanitizer().Sanitize(trimmed))
}

func richTextSanitizer() *bluemonday.Policy {
	richTextPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("span", "strong", "em", "br")
		policy.AllowAttrs("class").
			Matching(regexp.MustCompile(`^[a-z][a-z0-9-]*( [a-z][a-z0-9-]*)*$`)).
			OnElements("span")
		richTextPolicy = policy
	})
	return richTextPolicy
}
