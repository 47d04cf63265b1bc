package sizes

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Spec describes one output raster: its exact pixel size and file name.
type Spec struct {
	Width  int    `yaml:"width" mapstructure:"width"`
	Height int    `yaml:"height" mapstructure:"height"`
	Name   string `yaml:"name" mapstructure:"name"`
}

func (s Spec) String() string {
	return fmt.Sprintf("%s (%dx%d)", s.Name, s.Width, s.Height)
}

// Dimensions returns "WxH", the form used by ImageMagick and web manifests.
func (s Spec) Dimensions() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func (s Spec) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%q: width and height must be positive, got %dx%d", s.Name, s.Width, s.Height)
	}
	return CheckName(s.Name)
}

// CheckName accepts only a plain file name, so outputs stay inside the
// output directory.
func CheckName(name string) error {
	if name == "" {
		return errors.New("empty output name")
	}
	if name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%q: output name must be a plain file name", name)
	}
	return nil
}

// ValidateAll checks every spec and rejects duplicate names, which would
// silently overwrite each other within one run.
func ValidateAll(specs []Spec) error {
	if len(specs) == 0 {
		return errors.New("size list is empty")
	}
	seen := make(map[string]bool, len(specs))
	for i, s := range specs {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if seen[s.Name] {
			return fmt.Errorf("entry %d: duplicate output name %q", i, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// Pick returns the specs whose names are listed, in the order of names.
// Unknown names are an error.
func Pick(specs []Spec, names ...string) ([]Spec, error) {
	out := make([]Spec, 0, len(names))
	for _, n := range names {
		found := false
		for _, s := range specs {
			if s.Name == n {
				out = append(out, s)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no size entry named %q", n)
		}
	}
	return out, nil
}

func square(px int, name string) Spec {
	return Spec{Width: px, Height: px, Name: name}
}

// PWAIcons is the icon set rasterized from the SVG logo.
var PWAIcons = []Spec{
	// PWA standard
	square(192, "icon-192.png"),
	square(512, "icon-512.png"),

	// Apple touch
	square(180, "apple-touch-icon.png"),
	square(152, "icon-152.png"),
	square(167, "icon-167.png"), // iPad Pro

	// Favicon
	square(32, "favicon-32.png"),
	square(16, "favicon-16.png"),

	// Other Apple sizes
	square(120, "icon-120.png"), // iPhone retina
	square(144, "icon-144.png"), // iPad retina
}

// PWAFaviconICO names the PWA outputs bundled into favicon.ico.
var PWAFaviconICO = []string{"favicon-16.png", "favicon-32.png"}

// Favicons is the set resized from the raster logo.
var Favicons = []Spec{
	square(16, "favicon-16.png"),
	square(32, "favicon-32.png"),
	square(48, "favicon-48.png"),
	square(64, "favicon-64.png"),
	square(96, "favicon-96.png"),
	square(128, "favicon-128.png"),
	square(180, "apple-touch-icon.png"),
	square(192, "favicon-192.png"),
	square(256, "favicon-256.png"),
	square(512, "favicon-512.png"),
}

// FaviconICO names the favicon outputs bundled into the multi-resolution ICO.
var FaviconICO = []string{"favicon-16.png", "favicon-32.png", "favicon-48.png"}
