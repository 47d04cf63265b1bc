// Package batch renders one output file per size specification.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"pwa-icons/internal/raster"
	"pwa-icons/internal/sizes"
)

// ErrSourceMissing is returned by CheckSource when the logo does not exist.
var ErrSourceMissing = errors.New("source image not found")

// Reporter receives one line per output.
type Reporter interface {
	Success(msg string)
	Warning(msg string)
}

// Job describes a batch. Specs narrower than SmallBelow are rendered from
// SmallSource when one is set; everything else comes from Source.
type Job struct {
	Source      string
	SmallSource string
	SmallBelow  int
	OutputDir   string
	Specs       []sizes.Spec
	Converter   raster.Converter
}

func (j Job) SourceFor(s sizes.Spec) string {
	if j.SmallSource != "" && s.Width < j.SmallBelow {
		return j.SmallSource
	}
	return j.Source
}

// Report lists the output paths that were written and the ones that were not.
type Report struct {
	Created []string
	Failed  []string
}

func (r Report) OK() bool {
	return len(r.Failed) == 0
}

// Run processes every spec in order. A failed spec is reported and skipped;
// only an output directory that cannot be created stops the batch.
func Run(ctx context.Context, job Job, rep Reporter) (Report, error) {
	var report Report

	if err := os.MkdirAll(job.OutputDir, 0755); err != nil {
		return report, fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, spec := range job.Specs {
		dst := filepath.Join(job.OutputDir, spec.Name)
		src := job.SourceFor(spec)
		slog.Debug("Rendering", "source", src, "output", dst, "size", spec.Dimensions())

		if err := job.Converter.Convert(ctx, src, spec, dst); err != nil {
			rep.Warning(fmt.Sprintf("Could not create %s: %v", dst, err))
			report.Failed = append(report.Failed, dst)
			continue
		}
		rep.Success(fmt.Sprintf("Created: %s (%dx%d)", dst, spec.Width, spec.Height))
		report.Created = append(report.Created, dst)
	}
	return report, nil
}

// CheckSource fails with ErrSourceMissing when path does not exist or is a
// directory.
func CheckSource(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrSourceMissing, path)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrSourceMissing, path)
	}
	return nil
}
