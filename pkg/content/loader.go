package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidContent wraps every validation failure reported by Validate.
var ErrInvalidContent = errors.New("content: invalid site content")

// SiteFileNames lists the document names LoadFS looks for, in priority order.
var SiteFileNames = []string{"site.yaml", "site.yml", "site.json"}

// LoadFS reads the first site document found at the root of fsys.
func LoadFS(fsys fs.FS) (*Site, error) {
	if fsys == nil {
		return nil, errors.New("content: filesystem is nil")
	}
	for _, name := range SiteFileNames {
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", name, err)
		}
		return Parse(data, name)
	}
	return nil, fmt.Errorf("content: no site document (%s) found", strings.Join(SiteFileNames, ", "))
}

// Load reads a site document from r. name is used in error messages.
func Load(r io.Reader, name string) (*Site, error) {
	if r == nil {
		return nil, errors.New("content: missing reader")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes a JSON or YAML site document and validates it.
func Parse(data []byte, source string) (*Site, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("content: file %s is empty", source)
	}

	var site Site
	var err error
	if strings.EqualFold(path.Ext(source), ".json") {
		err = json.Unmarshal(data, &site)
	} else {
		err = yaml.Unmarshal(data, &site)
	}
	if err != nil {
		return nil, fmt.Errorf("content: parse %s: %w", source, err)
	}

	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return &site, nil
}

// IsSiteFile reports whether name is one of the recognised site documents.
func IsSiteFile(name string) bool {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	for _, candidate := range SiteFileNames {
		if base == candidate {
			return true
		}
	}
	return false
}

// Validate checks the invariants renderers rely on.
func (s *Site) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: site is nil", ErrInvalidContent)
	}

	var problems []string
	if strings.TrimSpace(s.Brand.Name) == "" {
		problems = append(problems, "brand.name is required")
	}
	if len(s.Testimonials) == 0 {
		problems = append(problems, "at least one testimonial is required")
	}
	for i, t := range s.Testimonials {
		if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Text) == "" {
			problems = append(problems, fmt.Sprintf("testimonials[%d] needs a name and text", i))
		}
	}

	slugs := make(map[string]struct{}, len(s.Services))
	for i, svc := range s.Services {
		slug := strings.TrimSpace(svc.Slug)
		if slug == "" {
			problems = append(problems, fmt.Sprintf("services[%d].slug is required", i))
			continue
		}
		if _, dup := slugs[slug]; dup {
			problems = append(problems, fmt.Sprintf("services[%d].slug %q is duplicated", i, slug))
		}
		slugs[slug] = struct{}{}
	}

	for i, tier := range s.Tiers {
		if tier.Minutes <= 0 {
			problems = append(problems, fmt.Sprintf("tiers[%d].minutes must be positive", i))
		}
		if tier.PriceINR <= 0 {
			problems = append(problems, fmt.Sprintf("tiers[%d].priceInr must be positive", i))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(problems, "; "))
}
