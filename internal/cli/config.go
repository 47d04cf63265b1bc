package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AddCommonFlags registers the flags both generators understand.
func AddCommonFlags(f *pflag.FlagSet, defaultOutput string) {
	f.StringP("output", "o", defaultOutput, "directory the generated images are written to")
	f.String("sizes-file", "", "YAML file replacing the built-in size list")
	f.Bool("no-color", false, "disable coloured output")
	f.Bool("verbose", false, "log converter invocations to stderr")
}

// Load reads configuration for app into out. Values come from, in order of
// precedence: flags, environment (APP_NAME_KEY), the config file, defaults.
// Without cfgFile, <app>.yaml is looked up in the working directory and may
// be absent.
func Load(v *viper.Viper, flags *pflag.FlagSet, app, cfgFile string, out interface{}) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(app)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(strings.ReplaceAll(app, "-", "_"))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		slog.Debug("Using config file", "path", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}
