// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the screenref CLI: content validation,
// cross-reference lookups, citation formatting and snapshot export over a
// directory of screening reference content.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/screenref/internal/catalog"
	"github.com/pdiddy/screenref/internal/xref"
	"github.com/pdiddy/screenref/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the screenref CLI.
var rootCmd = &cobra.Command{
	Use:   "screenref",
	Short: "Cross-reference and citation tooling for screening content",
	Long: `screenref loads the static content collections of the screening reference
browser (diseases, medications, protocols, calculators, screenings and
references), derives the bidirectional cross-reference index, and formats
citations and evidence badges.

Use validate in CI to catch dangling links and unknown citation keys before
content ships.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./screenref.yaml or ~/.config/screenref/config.yaml)")
	rootCmd.PersistentFlags().String("content-dir", "", "directory holding the content YAML files")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	cobra.CheckErr(viper.BindPFlag("content.dir", rootCmd.PersistentFlags().Lookup("content-dir")))
	cobra.CheckErr(viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")))

	viper.SetDefault("content.dir", "content")
	viper.SetDefault("citation.style", "numeric")
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("snapshot.path", "build/screenref.db")
	viper.SetDefault("index.cache_size", 4)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("screenref")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "screenref"))
		}
	}

	viper.SetEnvPrefix("SCREENREF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged flag, env, file and default settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// newLogger builds a stderr logger from the log settings.
func newLogger(cfg types.LogConfig) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)

	switch cfg.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unsupported log format %q: use text or json", cfg.Format)
	}
	return log, nil
}

// env bundles what every content command needs.
type env struct {
	cfg   types.Config
	log   *logrus.Logger
	cat   *catalog.Catalog
	index *xref.Index
}

// indexCache is shared by every load in the process, so reloading unchanged
// content reuses its index. It is sized by the first load's config.
var indexCache *xref.Cache

// loadEnv reads config, loads the catalog and builds its index through the
// shared cache.
func loadEnv() (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(cfg.Content.Dir, catalog.WithLogger(log))
	if err != nil {
		return nil, err
	}

	if indexCache == nil {
		indexCache, err = xref.NewCache(cfg.Index.CacheSize, xref.WithLogger(log))
		if err != nil {
			return nil, err
		}
	}
	return &env{cfg: cfg, log: log, cat: cat, index: indexCache.Get(cat)}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
