package generate

import (
	"context"
	"fmt"
	"path/filepath"

	"pwa-icons/internal/batch"
	"pwa-icons/internal/config"
	"pwa-icons/internal/icon"
	"pwa-icons/internal/markup"
	"pwa-icons/internal/raster"
	"pwa-icons/internal/sizes"
	"pwa-icons/internal/ui"
)

// Favicons resizes the raster logo into the favicon set, bundles the small
// sizes into an .ico and prints the <head> markup. A missing or undecodable
// source is returned as an error before anything is written.
func Favicons(ctx context.Context, cfg config.Favicon, con *ui.Console) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	specs, err := cfg.Specs()
	if err != nil {
		return err
	}
	filter, err := raster.ParseFilter(cfg.Filter)
	if err != nil {
		return err
	}

	if err := batch.CheckSource(cfg.Source); err != nil {
		return err
	}
	img, err := raster.Decode(cfg.Source)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	con.Header("Generating favicons")

	report, err := batch.Run(ctx, batch.Job{
		Source:    cfg.Source,
		OutputDir: cfg.Output,
		Specs:     specs,
		Converter: raster.Resampler{Filter: filter, Source: img},
	}, con)
	if err != nil {
		return err
	}

	icoOK := bundleFaviconICO(ctx, cfg, specs, report, con)

	if report.OK() && icoOK {
		con.Success("All favicons were generated")
	} else {
		con.Warning(fmt.Sprintf("%d favicon file(s) could not be generated", missing(report, icoOK)))
	}

	if abs, err := filepath.Abs(cfg.Output); err == nil {
		con.Info("Favicons saved in: " + abs)
	}

	con.Header("Add this to the <head> of your index.html")
	ico := ""
	if icoOK {
		ico = cfg.ICO
	}
	con.Block(markup.FaviconHead(filepath.ToSlash(cfg.Output), ico, specs, cfg.ThemeColor))
	return nil
}

func bundleFaviconICO(ctx context.Context, cfg config.Favicon, specs []sizes.Spec, report batch.Report, con *ui.Console) bool {
	dst := filepath.Join(cfg.Output, cfg.ICO)

	inputs, err := icoInputs(specs, sizes.FaviconICO, report, cfg.Output)
	if err != nil {
		con.Warning(fmt.Sprintf("Could not create %s: %v", dst, err))
		return false
	}

	if err := (icon.Native{}).Bundle(ctx, inputs, dst); err != nil {
		con.Warning(fmt.Sprintf("Could not create %s: %v", dst, err))
		return false
	}
	con.Success(fmt.Sprintf("Created: %s (multi-resolution)", dst))
	return true
}
