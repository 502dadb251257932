package testsupport

import (
	"context"
	"testing"

	"github.com/goliatone/go-tarotsite/pkg/content"
)

// Site returns the embedded default content, failing the test on error.
func Site(t *testing.T) *content.Site {
	t.Helper()

	site, err := content.Default()
	if err != nil {
		t.Fatalf("load default content: %v", err)
	}
	return site
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
