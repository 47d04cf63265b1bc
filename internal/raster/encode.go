package raster

import (
	"image"
	"image/png"
	"os"
)

var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

// WritePNG encodes img to path, replacing any previous file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := pngEncoder.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
