package raster

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"pwa-icons/internal/sizes"
)

// Filter selects the resampling kernel used when resizing raster sources.
type Filter string

const (
	Lanczos    Filter = "lanczos"
	CatmullRom Filter = "catmullrom"
)

func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case Lanczos, CatmullRom:
		return f, nil
	default:
		return "", fmt.Errorf("unknown filter %q (want %s or %s)", s, Lanczos, CatmullRom)
	}
}

// Decode opens and decodes a raster image, normalised to NRGBA.
func Decode(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return ToNRGBA(img), nil
}

func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return dst
}

// Resize returns img scaled to exactly w x h.
func Resize(img image.Image, w, h int, f Filter) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", w, h)
	}
	switch f {
	case Lanczos:
		return resize.Resize(uint(w), uint(h), img, resize.Lanczos3), nil
	case CatmullRom:
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Rect, img, img.Bounds(), xdraw.Over, nil)
		return dst, nil
	default:
		return nil, fmt.Errorf("unknown filter %q", f)
	}
}

// Resampler resizes a raster source in-process. When Source is set it is
// used directly and the src path passed to Convert is ignored.
type Resampler struct {
	Filter Filter
	Source image.Image
}

func (r Resampler) Convert(ctx context.Context, src string, spec sizes.Spec, dst string) error {
	img := r.Source
	if img == nil {
		var err error
		if img, err = Decode(src); err != nil {
			return err
		}
	}

	out, err := Resize(img, spec.Width, spec.Height, r.Filter)
	if err != nil {
		return err
	}
	return WritePNG(dst, out)
}
