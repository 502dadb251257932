package tarotsite

import (
	"io/fs"

	sitehtml "github.com/goliatone/go-tarotsite/pkg/renderers/html"
)

// AssetsPrefix is the URL path the stylesheet and images are served under.
const AssetsPrefix = "/assets/"

// AssetsFS exposes the built-in stylesheet so applications can serve it
// without importing the renderer package.
//
// Typical mount:
//
//	mux.Handle(tarotsite.AssetsPrefix,
//	  http.StripPrefix(tarotsite.AssetsPrefix,
//	    http.FileServerFS(tarotsite.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return sitehtml.AssetsFS()
}

// EmbeddedTemplates exposes the built-in page templates so callers can copy
// and override them through WithTemplatesDir.
func EmbeddedTemplates() fs.FS {
	return sitehtml.TemplatesFS()
}
