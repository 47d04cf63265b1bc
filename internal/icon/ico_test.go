package icon

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"testing"

	"pwa-icons/internal/raster"
)

func writePNGs(t *testing.T, dir string, px ...int) []string {
	t.Helper()
	var paths []string
	for _, p := range px {
		path := filepath.Join(dir, fmt.Sprintf("favicon-%d.png", p))
		if err := raster.WritePNG(path, image.NewNRGBA(image.Rect(0, 0, p, p))); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	return paths
}

// icoEntries reads the ICONDIR header and returns the width of every entry.
func icoEntries(t *testing.T, path string) []int {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 6 {
		t.Fatalf("ico too short: %d bytes", len(data))
	}
	if typ := binary.LittleEndian.Uint16(data[2:4]); typ != 1 {
		t.Fatalf("expected icon type 1, got %d", typ)
	}
	n := int(binary.LittleEndian.Uint16(data[4:6]))
	var widths []int
	for i := 0; i < n; i++ {
		w := int(data[6+16*i])
		if w == 0 {
			w = 256
		}
		widths = append(widths, w)
	}
	return widths
}

func TestNativeBundle(t *testing.T) {
	dir := t.TempDir()
	inputs := writePNGs(t, dir, 16, 32, 48)
	dst := filepath.Join(dir, "favicon.ico")

	if err := (Native{}).Bundle(context.Background(), inputs, dst); err != nil {
		t.Fatal(err)
	}
	widths := icoEntries(t, dst)
	if len(widths) != 3 {
		t.Fatalf("expected 3 entries, got %v", widths)
	}
	seen := map[int]bool{}
	for _, w := range widths {
		seen[w] = true
	}
	for _, want := range []int{16, 32, 48} {
		if !seen[want] {
			t.Errorf("missing %dpx entry in %v", want, widths)
		}
	}
}

func TestNativeBundleErrors(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "favicon.ico")

	if err := (Native{}).Bundle(context.Background(), nil, dst); err == nil {
		t.Error("expected error for no inputs")
	}
	if err := (Native{}).Bundle(context.Background(), []string{filepath.Join(dir, "missing.png")}, dst); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
	big := writePNGs(t, dir, 512)
	if err := (Native{}).Bundle(context.Background(), big, dst); err == nil {
		t.Error("expected error for oversized entry")
	}
	if _, err := os.Stat(dst); !errors.Is(err, os.ErrNotExist) {
		t.Error("failed bundles must not leave a file behind")
	}
}

func TestChainFallsBackToNative(t *testing.T) {
	dir := t.TempDir()
	inputs := writePNGs(t, dir, 16, 32)
	dst := filepath.Join(dir, "favicon.ico")

	c := Chain{Primary: Magick{Bin: "no-such-imagemagick-bin"}, Fallback: Native{}}
	if err := c.Bundle(context.Background(), inputs, dst); err != nil {
		t.Fatalf("expected fallback to succeed: %v", err)
	}
	if got := icoEntries(t, dst); len(got) != 2 {
		t.Fatalf("expected 2 entries, got %v", got)
	}

	c = Chain{Primary: Magick{Bin: "no-such-imagemagick-bin"}}
	if err := c.Bundle(context.Background(), inputs, dst); !errors.Is(err, raster.ErrToolMissing) {
		t.Fatalf("expected ErrToolMissing, got %v", err)
	}
}
