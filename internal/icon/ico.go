// Package icon bundles already-rendered PNGs into a multi-resolution .ico.
package icon

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	ico "github.com/sergeymakinen/go-ico"

	"pwa-icons/internal/raster"
	"pwa-icons/internal/tool"
)

// MaxSize is the largest edge an ICO directory entry can describe.
const MaxSize = 256

// Bundler writes the images in inputs, in order, into a single ICO at dst.
type Bundler interface {
	Bundle(ctx context.Context, inputs []string, dst string) error
}

// Native encodes the ICO in-process.
type Native struct{}

func (Native) Bundle(ctx context.Context, inputs []string, dst string) error {
	if len(inputs) == 0 {
		return errors.New("no images to bundle")
	}

	images := make([]image.Image, 0, len(inputs))
	for _, in := range inputs {
		img, err := readPNG(in)
		if err != nil {
			return err
		}
		if b := img.Bounds(); b.Dx() > MaxSize || b.Dy() > MaxSize {
			return fmt.Errorf("%s is %dx%d, ICO entries are limited to %dpx", in, b.Dx(), b.Dy(), MaxSize)
		}
		images = append(images, img)
	}

	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, images); err != nil {
		return fmt.Errorf("failed to encode ico: %w", err)
	}
	return os.WriteFile(dst, buf.Bytes(), 0644)
}

func readPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// Magick bundles with ImageMagick: convert in1 in2 ... dst.
type Magick struct {
	Bin string
}

func (m Magick) Bundle(ctx context.Context, inputs []string, dst string) error {
	if len(inputs) == 0 {
		return errors.New("no images to bundle")
	}
	bin := m.Bin
	if bin == "" {
		bin = raster.DefaultMagickBin
	}
	args := append(append([]string{}, inputs...), dst)
	return tool.RunFor(ctx, dst, bin, args...)
}

// Chain tries Primary and, only if that fails, Fallback once.
type Chain struct {
	Primary  Bundler
	Fallback Bundler
}

func (c Chain) Bundle(ctx context.Context, inputs []string, dst string) error {
	err := c.Primary.Bundle(ctx, inputs, dst)
	if err == nil || c.Fallback == nil {
		return err
	}
	slog.Debug("Primary ico bundler failed, trying fallback", "output", dst, "error", err)

	ferr := c.Fallback.Bundle(ctx, inputs, dst)
	if ferr == nil {
		return nil
	}
	return errors.Join(err, ferr)
}
