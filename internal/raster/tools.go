package raster

import (
	"context"
	"strconv"

	"pwa-icons/internal/sizes"
	"pwa-icons/internal/tool"
)

const (
	DefaultRSVGBin   = "rsvg-convert"
	DefaultMagickBin = "convert"
)

// RSVG rasterizes SVG sources with librsvg's rsvg-convert.
type RSVG struct {
	Bin string
}

func (r RSVG) Convert(ctx context.Context, src string, spec sizes.Spec, dst string) error {
	bin := r.Bin
	if bin == "" {
		bin = DefaultRSVGBin
	}
	return tool.RunFor(ctx, dst, bin,
		"-w", strconv.Itoa(spec.Width),
		"-h", strconv.Itoa(spec.Height),
		src,
		"-o", dst,
	)
}

// Magick converts with ImageMagick, keeping transparency. The geometry
// carries "!" so the output is exactly WxH instead of fitted inside it.
type Magick struct {
	Bin string
}

func (m Magick) Convert(ctx context.Context, src string, spec sizes.Spec, dst string) error {
	bin := m.Bin
	if bin == "" {
		bin = DefaultMagickBin
	}
	return tool.RunFor(ctx, dst, bin,
		"-background", "none",
		"-resize", spec.Dimensions()+"!",
		src,
		dst,
	)
}
