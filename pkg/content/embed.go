package content

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed data/site.yaml
var embeddedData embed.FS

var (
	defaultOnce sync.Once
	defaultSite *Site
	defaultErr  error
)

// EmbeddedFS returns the bundled content directory.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		return embeddedData
	}
	return sub
}

// Default returns the bundled site content. The value is shared; callers
// must not modify it.
func Default() (*Site, error) {
	defaultOnce.Do(func() {
		defaultSite, defaultErr = LoadFS(EmbeddedFS())
	})
	return defaultSite, defaultErr
}
