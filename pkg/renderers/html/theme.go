package html

import (
	"fmt"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

const (
	// DefaultThemeName is the manifest used when no theme is requested.
	DefaultThemeName = "luv"

	// StylesheetAsset is the asset key resolving the site stylesheet.
	StylesheetAsset = "stylesheet"
)

// DefaultManifest describes the built-in look of the site: a deep indigo
// palette with a gold accent, plus a lighter "dawn" variant.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"color-bg":      "#0f0b1e",
			"color-surface": "#1b1533",
			"color-ink":     "#f4efe6",
			"color-muted":   "#b9b0c9",
			"color-accent":  "#d9b45b",
			"font-display":  "'Cormorant Garamond', Georgia, serif",
			"font-body":     "'Inter', system-ui, sans-serif",
		},
		Templates: map[string]string{
			"page.layout": "templates/layout.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "assets",
			Files: map[string]string{
				StylesheetAsset: StylesheetName,
			},
		},
		Variants: map[string]theme.Variant{
			"dawn": {
				Tokens: map[string]string{
					"color-bg":      "#faf6ef",
					"color-surface": "#ffffff",
					"color-ink":     "#241c3a",
					"color-muted":   "#6b6280",
					"color-accent":  "#9a6d1c",
				},
			},
		},
	}
}

// Selector resolves theme selections from a fixed set of manifests. The first
// manifest registered is the default.
type Selector struct {
	manifests   map[string]*theme.Manifest
	defaultName string
}

var _ theme.ThemeSelector = (*Selector)(nil)

// NewSelector validates manifests through a go-theme registry and indexes them
// by name. With no manifests the built-in DefaultManifest is used.
func NewSelector(manifests ...*theme.Manifest) (*Selector, error) {
	if len(manifests) == 0 {
		manifests = []*theme.Manifest{DefaultManifest()}
	}

	registry := theme.NewRegistry()
	sel := &Selector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("html renderer: register theme %q: %w", manifest.Name, err)
		}
		if sel.defaultName == "" {
			sel.defaultName = manifest.Name
		}
		sel.manifests[manifest.Name] = manifest
	}
	if sel.defaultName == "" {
		return nil, fmt.Errorf("html renderer: no theme manifests provided")
	}
	return sel, nil
}

// Select returns the manifest for name and variant. Empty name selects the
// default manifest; empty variant selects the base tokens.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultName
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("html renderer: unknown theme %q", name)
	}
	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("html renderer: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{
		Theme:    manifest.Name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// RendererConfig flattens a selection into the renderer view: variant tokens
// override base tokens, every token becomes a "--token" CSS custom property,
// and asset keys resolve against the manifest prefix.
func RendererConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest

	tokens := mergeStrings(manifest.Tokens, nil)
	partials := mergeStrings(manifest.Templates, nil)
	assets := mergeStrings(manifest.Assets.Files, nil)
	prefix := manifest.Assets.Prefix

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		tokens = mergeStrings(tokens, variant.Tokens)
		partials = mergeStrings(partials, variant.Templates)
		assets = mergeStrings(assets, variant.Assets.Files)
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   tokens,
		CSSVars:  cssVars,
		Partials: partials,
		AssetURL: func(key string) string {
			file, ok := assets[key]
			if !ok || file == "" {
				return ""
			}
			if prefix == "" {
				return file
			}
			return path.Join(prefix, file)
		},
	}
}

func mergeStrings(base, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overrides))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overrides {
		out[key] = value
	}
	return out
}

// cssVarsStyle renders custom properties as a sorted declaration list.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString("; ")
	}
	return strings.TrimSpace(b.String())
}
