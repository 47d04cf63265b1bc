package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pwa-icons/internal/cli"
	"pwa-icons/internal/config"
	"pwa-icons/internal/generate"
	"pwa-icons/internal/raster"
	"pwa-icons/internal/ui"
)

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   config.PWAName,
		Short: "Generate PWA and Apple touch icons from the SVG logo",
		Long: `Writes logo_no_text.svg, then rasterizes every PWA icon size into icons/.
Icons narrower than 180 pixels use the text-free logo; the rest use logo.svg.

Each size is rendered with rsvg-convert, falling back to ImageMagick's convert.
favicon.ico is bundled from the 16 and 32 pixel icons. Sizes that cannot be
rendered are reported and skipped; the run still exits 0.`,
		Args:          cobra.NoArgs,
		Version:       cli.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config.PWA
			if err := cli.Load(v, cmd.Flags(), config.PWAName, cfgFile, &cfg); err != nil {
				return err
			}
			cli.SetupLogging(cmd.ErrOrStderr(), cfg.Verbose)

			con := ui.ForWriter(cmd.OutOrStdout(), cfg.NoColor)
			return generate.PWA(cmd.Context(), cfg, con)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}")

	f := cmd.Flags()
	cli.AddCommonFlags(f, config.DefaultOutputDir)
	f.String("logo", config.DefaultLogo, "SVG logo used for the larger icons")
	f.String("logo-small", config.DefaultLogoSmall, "where the text-free logo is written and read from")
	f.Int("small-below", config.DefaultSmallBelow, "icons narrower than this use the text-free logo")
	f.String("primary", config.DefaultPrimary, "converter tried first: rsvg, magick or oksvg")
	f.String("fallback", config.DefaultFallback, "converter tried when the primary fails: rsvg, magick, oksvg or none")
	f.String("rsvg-bin", raster.DefaultRSVGBin, "rsvg-convert executable")
	f.String("magick-bin", raster.DefaultMagickBin, "ImageMagick executable (use \"magick\" for ImageMagick 7)")
	f.String("ico", config.DefaultPWAICO, "path of the bundled favicon")
	f.String("manifest", "", "web app manifest whose icons array is rewritten")
	f.Bool("print-markup", false, "print <head> markup for the generated icons")
	f.StringVar(&cfgFile, "config", "", "config file (default is ./pwa-icons.yaml)")

	return cmd
}
