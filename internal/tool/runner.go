// Package tool runs the external image converters (rsvg-convert, ImageMagick).
package tool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// ErrMissing is returned when the converter binary cannot be found.
var ErrMissing = errors.New("tool not found")

// Run invokes bin with args and waits for it. Stdout is discarded; stderr is
// captured and folded into the returned error.
func Run(ctx context.Context, bin string, args ...string) error {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	slog.Debug("Running tool", "cmd", cmd.String())

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", bin, ErrMissing)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s failed: %v: %s", bin, err, msg)
		}
		return fmt.Errorf("%s failed: %v", bin, err)
	}
	return nil
}

// RunFor removes out, runs the tool and then checks that it left a non-empty
// file at out. Some converters exit 0 without writing anything when the input
// is unusable.
func RunFor(ctx context.Context, out string, bin string, args ...string) error {
	if err := os.Remove(out); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to replace %s: %w", out, err)
	}
	if err := Run(ctx, bin, args...); err != nil {
		return err
	}
	info, err := os.Stat(out)
	if err != nil {
		return fmt.Errorf("%s produced no output: %w", bin, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%s produced an empty file %s", bin, out)
	}
	return nil
}

// Available reports whether bin resolves on PATH.
func Available(bin string) bool {
	_, err := exec.LookPath(bin)
	return err == nil
}
