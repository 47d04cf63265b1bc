package config

import (
	"errors"
	"fmt"

	"pwa-icons/internal/markup"
	"pwa-icons/internal/raster"
	"pwa-icons/internal/sizes"
)

const (
	PWAName     = "pwa-icons"
	FaviconName = "favicons"

	DefaultOutputDir = "icons"

	// SVG generator
	DefaultLogo       = "logo.svg"
	DefaultLogoSmall  = "logo_no_text.svg"
	DefaultSmallBelow = 180
	DefaultPWAICO     = "favicon.ico"
	DefaultPrimary    = raster.NameRSVG
	DefaultFallback   = raster.NameMagick

	// Raster generator
	DefaultFaviconSource = "crimitrack.jpg"
	DefaultFaviconICO    = "favicon.ico"
	DefaultFilter        = string(raster.Lanczos)
	DefaultThemeColor    = markup.DefaultThemeColor
)

// Common holds the settings shared by both generators.
type Common struct {
	Output    string `mapstructure:"output"`
	SizesFile string `mapstructure:"sizes-file"`
	NoColor   bool   `mapstructure:"no-color"`
	Verbose   bool   `mapstructure:"verbose"`
}

// specs returns the size list from SizesFile, or def when none is configured.
func (c Common) specs(def []sizes.Spec) ([]sizes.Spec, error) {
	if c.SizesFile == "" {
		return def, nil
	}
	return sizes.LoadFile(c.SizesFile)
}

func (c Common) validate() error {
	if c.Output == "" {
		return errors.New("output directory must not be empty")
	}
	return nil
}

// PWA configures the SVG icon generator.
type PWA struct {
	Common `mapstructure:",squash"`

	Logo        string `mapstructure:"logo"`
	LogoSmall   string `mapstructure:"logo-small"`
	SmallBelow  int    `mapstructure:"small-below"`
	Primary     string `mapstructure:"primary"`
	Fallback    string `mapstructure:"fallback"`
	RSVGBin     string `mapstructure:"rsvg-bin"`
	MagickBin   string `mapstructure:"magick-bin"`
	ICO         string `mapstructure:"ico"`
	Manifest    string `mapstructure:"manifest"`
	PrintMarkup bool   `mapstructure:"print-markup"`
}

func (p PWA) Specs() ([]sizes.Spec, error) {
	return p.specs(sizes.PWAIcons)
}

func (p PWA) Tools() raster.Tools {
	return raster.Tools{RSVG: p.RSVGBin, Magick: p.MagickBin}
}

// Converter builds the primary/fallback chain named by the configuration.
func (p PWA) Converter() (raster.Converter, error) {
	primary, err := raster.ByName(p.Primary, p.Tools())
	if err != nil {
		return nil, fmt.Errorf("primary: %w", err)
	}
	if primary == nil {
		return nil, errors.New("a primary converter is required")
	}
	fallback, err := raster.ByName(p.Fallback, p.Tools())
	if err != nil {
		return nil, fmt.Errorf("fallback: %w", err)
	}
	return raster.Chain{Primary: primary, Fallback: fallback}, nil
}

func (p PWA) Validate() error {
	if err := p.validate(); err != nil {
		return err
	}
	if p.Logo == "" || p.LogoSmall == "" {
		return errors.New("logo paths must not be empty")
	}
	if p.SmallBelow < 0 {
		return fmt.Errorf("small-below must not be negative, got %d", p.SmallBelow)
	}
	if p.ICO == "" {
		return errors.New("ico path must not be empty")
	}
	_, err := p.Converter()
	return err
}

// Favicon configures the raster favicon generator.
type Favicon struct {
	Common `mapstructure:",squash"`

	Source     string `mapstructure:"source"`
	Filter     string `mapstructure:"filter"`
	ThemeColor string `mapstructure:"theme-color"`
	ICO        string `mapstructure:"ico"`
}

func (f Favicon) Specs() ([]sizes.Spec, error) {
	return f.specs(sizes.Favicons)
}

func (f Favicon) Validate() error {
	if err := f.validate(); err != nil {
		return err
	}
	if f.Source == "" {
		return errors.New("source must not be empty")
	}
	if err := sizes.CheckName(f.ICO); err != nil {
		return fmt.Errorf("ico: %w", err)
	}
	_, err := raster.ParseFilter(f.Filter)
	return err
}
