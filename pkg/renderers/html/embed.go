package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl templates/partials/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// StylesheetName is the file name of the bundled stylesheet.
const StylesheetName = "site.css"

// TemplatesFS exposes the embedded page templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded static assets so callers can serve them over
// HTTP or copy them into a static build.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
