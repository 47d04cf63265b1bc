package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pwa-icons/internal/cli"
	"pwa-icons/internal/config"
	"pwa-icons/internal/generate"
	"pwa-icons/internal/ui"
)

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   config.FaviconName,
		Short: "Generate favicons from a raster logo",
		Long: `Resizes a JPEG (or PNG/WebP/BMP) logo into the usual favicon and Apple
touch icon sizes, bundles the 16, 32 and 48 pixel versions into favicon.ico and
prints the <head> markup referencing them.

Run without flags it reads crimitrack.jpg from the working directory and writes
to icons/. A missing or unreadable logo exits non-zero without writing files;
individual sizes that fail are reported and skipped.`,
		Args:          cobra.NoArgs,
		Version:       cli.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config.Favicon
			if err := cli.Load(v, cmd.Flags(), config.FaviconName, cfgFile, &cfg); err != nil {
				return err
			}
			cli.SetupLogging(cmd.ErrOrStderr(), cfg.Verbose)

			con := ui.ForWriter(cmd.OutOrStdout(), cfg.NoColor)
			return generate.Favicons(cmd.Context(), cfg, con)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}")

	f := cmd.Flags()
	cli.AddCommonFlags(f, config.DefaultOutputDir)
	f.StringP("source", "s", config.DefaultFaviconSource, "raster logo to resize")
	f.String("filter", config.DefaultFilter, "resampling filter: lanczos or catmullrom")
	f.String("theme-color", config.DefaultThemeColor, "theme-color value for the printed markup (empty to omit)")
	f.String("ico", config.DefaultFaviconICO, "name of the multi-resolution icon written to the output directory")
	f.StringVar(&cfgFile, "config", "", "config file (default is ./favicons.yaml)")

	return cmd
}
