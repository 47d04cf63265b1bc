package raster

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"pwa-icons/internal/sizes"
)

// OkSVG rasterizes SVG sources in-process. It handles paths, shapes and
// gradients; filters such as drop shadows are ignored.
type OkSVG struct{}

func (OkSVG) Convert(ctx context.Context, src string, spec sizes.Spec, dst string) error {
	img, err := RenderSVG(src, spec.Width, spec.Height)
	if err != nil {
		return err
	}
	return WritePNG(dst, img)
}

// RenderSVG stretches the SVG view box over a w x h transparent canvas.
func RenderSVG(path string, w, h int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)

	return img, nil
}
