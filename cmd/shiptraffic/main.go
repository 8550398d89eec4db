package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/shiptraffic/internal/app"
	"github.com/bft-labs/shiptraffic/internal/cliconfig"
	"github.com/bft-labs/shiptraffic/pkg/log"
)

const longHelp = `Command Line Ships Traffic Analyzer

Loads a ship-traffic data file once and answers queries typed at the prompt:

  help                 list all available commands
  show_countries       unique ship countries, sorted
  top_countries <num>  countries with the most ships
  ships_by_types       ship counts per ship type
  q                    quit

Settings are read from $HOME/.shiptraffic/config.toml when present; flags
override the file.`

var exampleUsage = strings.TrimSpace(`
  shiptraffic
  shiptraffic --data ./ship_traffic_data.json --banner=false
  shiptraffic --format json < commands.txt
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "shiptraffic",
		Short:         "Interactive analyzer for ship traffic records",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config file first (default $HOME/.shiptraffic/config.toml), then flag overrides
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			switch {
			case cfgFile != "" && cliconfig.FileExists(cfgFile):
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			case cfgPath != "":
				return fmt.Errorf("load config: %s not found", cfgPath)
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			zl, err := cliconfig.Logger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			zl.Debug().Interface("config", cfg).Msg("configuration")

			a := app.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), log.NewZerologAdapterWithLogger(zl))
			return a.Run(cmd.Context())
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.shiptraffic/config.toml)")
	root.Flags().StringVar(&cfg.DataFile, "data", cfg.DataFile, "ship traffic data file (.json, .yaml or .yml)")
	root.Flags().StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "prompt shown before each command")
	root.Flags().BoolVar(&cfg.Banner, "banner", cfg.Banner, "print the startup banner")
	root.Flags().StringVar(&cfg.OutputFormat, "format", cfg.OutputFormat, "result format (text|json)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level (debug|info|warn|error|disabled)")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "warn when the data file changes on disk")

	if err := root.ExecuteContext(context.Background()); err != nil {
		// Startup errors are always reported, whatever the configured level.
		zl, _ := cliconfig.Logger(os.Stderr, "error")
		zl.Error().Err(err).Msg("shiptraffic")
		os.Exit(1)
	}
}
