// Package raster turns a source logo into fixed-size PNG files, either through
// external converters or in-process.
package raster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pwa-icons/internal/sizes"
	"pwa-icons/internal/tool"
)

// ErrToolMissing marks a conversion that failed because the external
// converter is not installed.
var ErrToolMissing = tool.ErrMissing

// Converter writes src rendered at exactly spec.Width x spec.Height to dst.
type Converter interface {
	Convert(ctx context.Context, src string, spec sizes.Spec, dst string) error
}

// ConverterFunc adapts a plain function to Converter.
type ConverterFunc func(ctx context.Context, src string, spec sizes.Spec, dst string) error

func (f ConverterFunc) Convert(ctx context.Context, src string, spec sizes.Spec, dst string) error {
	return f(ctx, src, spec, dst)
}

// Chain tries Primary and, only if that fails, Fallback once.
type Chain struct {
	Primary  Converter
	Fallback Converter
}

func (c Chain) Convert(ctx context.Context, src string, spec sizes.Spec, dst string) error {
	err := c.Primary.Convert(ctx, src, spec, dst)
	if err == nil || c.Fallback == nil {
		return err
	}
	slog.Debug("Primary converter failed, trying fallback", "output", dst, "error", err)

	ferr := c.Fallback.Convert(ctx, src, spec, dst)
	if ferr == nil {
		return nil
	}
	return errors.Join(err, ferr)
}

// Tools holds the binary names of the external converters.
type Tools struct {
	RSVG   string
	Magick string
}

const (
	NameRSVG   = "rsvg"
	NameMagick = "magick"
	NameOkSVG  = "oksvg"
	NameNone   = "none"
)

// ByName resolves a converter name from configuration. NameNone and ""
// resolve to nil, which Chain treats as "no fallback".
func ByName(name string, tools Tools) (Converter, error) {
	switch name {
	case NameRSVG:
		return RSVG{Bin: tools.RSVG}, nil
	case NameMagick:
		return Magick{Bin: tools.Magick}, nil
	case NameOkSVG:
		return OkSVG{}, nil
	case NameNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown converter %q (want %s, %s, %s or %s)", name, NameRSVG, NameMagick, NameOkSVG, NameNone)
	}
}
