// Package generate runs the two icon generators end to end.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pwa-icons/internal/batch"
	"pwa-icons/internal/config"
	"pwa-icons/internal/icon"
	"pwa-icons/internal/logo"
	"pwa-icons/internal/manifest"
	"pwa-icons/internal/markup"
	"pwa-icons/internal/sizes"
	"pwa-icons/internal/ui"
)

// PWA rasterizes the SVG logo into the PWA icon set and bundles favicon.ico.
// Individual outputs that fail are reported and do not make it return an
// error; only unusable configuration or an unwritable workspace does.
func PWA(ctx context.Context, cfg config.PWA, con *ui.Console) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	specs, err := cfg.Specs()
	if err != nil {
		return err
	}
	conv, err := cfg.Converter()
	if err != nil {
		return err
	}

	if err := logo.WriteNoText(cfg.LogoSmall); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.LogoSmall, err)
	}

	con.Header("Generating PWA icons")

	if err := batch.CheckSource(cfg.Logo); err != nil {
		con.Warning(fmt.Sprintf("%v; icons of %dpx and wider will not be created", err, cfg.SmallBelow))
	}

	report, err := batch.Run(ctx, batch.Job{
		Source:      cfg.Logo,
		SmallSource: cfg.LogoSmall,
		SmallBelow:  cfg.SmallBelow,
		OutputDir:   cfg.Output,
		Specs:       specs,
		Converter:   conv,
	}, con)
	if err != nil {
		return err
	}
	if !report.OK() {
		con.Info("Install rsvg-convert or ImageMagick to render the SVG logo")
	}

	icoOK := bundlePWAICO(ctx, cfg, specs, report, con)

	if cfg.Manifest != "" {
		updateManifest(cfg, created(specs, report, cfg.Output), con)
	}

	con.Header("Done")
	if report.OK() && icoOK {
		con.Success("Icon generation finished")
	} else {
		con.Warning(fmt.Sprintf("Icon generation finished with %d missing file(s)", missing(report, icoOK)))
	}
	con.Info("Icons are ready for iOS, iPadOS and PWA")

	if cfg.PrintMarkup {
		con.Block(markup.PWAHead(filepath.ToSlash(cfg.Output), filepath.ToSlash(cfg.ICO), specs))
	}
	return nil
}

func bundlePWAICO(ctx context.Context, cfg config.PWA, specs []sizes.Spec, report batch.Report, con *ui.Console) bool {
	inputs, err := icoInputs(specs, sizes.PWAFaviconICO, report, cfg.Output)
	if err != nil {
		con.Warning(fmt.Sprintf("Could not create %s: %v", cfg.ICO, err))
		return false
	}

	bundler := icon.Chain{Primary: icon.Magick{Bin: cfg.MagickBin}, Fallback: icon.Native{}}
	if err := bundler.Bundle(ctx, inputs, cfg.ICO); err != nil {
		con.Warning(fmt.Sprintf("Could not create %s: %v", cfg.ICO, err))
		return false
	}
	con.Success("Created: " + cfg.ICO)
	return true
}

func updateManifest(cfg config.PWA, specs []sizes.Spec, con *ui.Console) {
	err := manifest.UpdateIcons(cfg.Manifest, filepath.ToSlash(cfg.Output), specs)
	switch {
	case errors.Is(err, os.ErrNotExist):
		con.Warning(fmt.Sprintf("Manifest %s not found, icons not registered", cfg.Manifest))
	case err != nil:
		con.Warning(fmt.Sprintf("Could not update %s: %v", cfg.Manifest, err))
	default:
		con.Success("Updated icons in " + cfg.Manifest)
	}
}

// icoInputs resolves the ICO members to paths and requires each of them to
// have been written by this run, so stale files from an earlier run are
// never bundled.
func icoInputs(specs []sizes.Spec, names []string, report batch.Report, dir string) ([]string, error) {
	parts, err := sizes.Pick(specs, names...)
	if err != nil {
		return nil, err
	}
	ok := make(map[string]bool, len(report.Created))
	for _, p := range report.Created {
		ok[p] = true
	}
	inputs := make([]string, 0, len(parts))
	for _, s := range parts {
		in := filepath.Join(dir, s.Name)
		if !ok[in] {
			return nil, fmt.Errorf("%s was not created", in)
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// created keeps the specs whose output made it to disk.
func created(specs []sizes.Spec, report batch.Report, dir string) []sizes.Spec {
	ok := make(map[string]bool, len(report.Created))
	for _, p := range report.Created {
		ok[p] = true
	}
	var out []sizes.Spec
	for _, s := range specs {
		if ok[filepath.Join(dir, s.Name)] {
			out = append(out, s)
		}
	}
	return out
}

func missing(report batch.Report, icoOK bool) int {
	n := len(report.Failed)
	if !icoOK {
		n++
	}
	return n
}
