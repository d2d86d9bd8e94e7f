// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the manga2pdf CLI. The root command
// converts every chapter folder under a parent folder into Chapter_<N>.pdf.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/manga2pdf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts chapter folders; it is also the parent of the version
// subcommand.
var rootCmd = &cobra.Command{
	Use:   "manga2pdf",
	Short: "Convert manga chapter folders to PDF files",
	Long: `manga2pdf turns each chapter folder under a parent folder into one PDF,
written next to the chapter folders as Chapter_<N>.pdf. Pages follow the
natural order of the image file names (page_2 before page_10). PDFs that
already exist are left alone.

Without --folder the parent folder is read from standard input.`,
	Example: `  Interactive mode (prompts for folder):
    manga2pdf

  Specify folder directly:
    manga2pdf -f /path/to/parent/folder
    manga2pdf -f ~/Documents/HxH

  Use current directory:
    cd /path/to/parent/folder
    manga2pdf -f .`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConvert,
}

// flagKeys maps viper keys to the root command's flag names.
var flagKeys = map[string]string{
	"folder":        "folder",
	"jobs":          "jobs",
	"resolution":    "resolution",
	"jpeg_quality":  "jpeg-quality",
	"verify":        "verify",
	"progress":      "progress",
	"report":        "report",
	"fail_on_error": "fail-on-error",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./manga2pdf.yaml or ~/.config/manga2pdf/manga2pdf.yaml)")

	registerFlags(rootCmd.Flags())
	if err := bindFlags(viper.GetViper(), rootCmd.Flags()); err != nil {
		panic(err)
	}
}

// registerFlags adds the conversion flags to f.
func registerFlags(f *pflag.FlagSet) {
	f.StringP("folder", "f", "", "parent folder containing chapter folders (prompted for when empty)")
	f.Int("jobs", types.DefaultJobs, "number of chapters converted at once")
	f.Float64("resolution", types.DefaultResolution, "dots per inch used to size pages")
	f.Int("jpeg-quality", types.DefaultJPEGQuality, "JPEG quality (1-100) for re-encoded pages")
	f.Bool("verify", true, "validate each PDF and its page count before writing it")
	f.Bool("progress", true, "show a page progress bar on terminals")
	f.String("report", "", "write a run report to this path (.json for JSON, YAML otherwise)")
	f.Bool("fail-on-error", false, "exit non-zero when any chapter fails")
}

// bindFlags binds every flag in flagKeys to its viper key.
func bindFlags(v *viper.Viper, f *pflag.FlagSet) error {
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, f.Lookup(name)); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")

	err := readConfig(viper.GetViper(), cfgFile)
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	case cfgFile != "" || !errors.As(err, &notFound):
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

// readConfig points v at the config file (cfgFile, or manga2pdf.yaml in the
// working directory or ~/.config/manga2pdf), enables MANGA2PDF_ environment
// variables and reads the file. Settings from the environment and flags
// apply even when reading fails.
func readConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("manga2pdf")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "manga2pdf"))
		}
	}

	v.SetEnvPrefix("MANGA2PDF")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
		return err
	}
	return nil
}

// loadConfig returns the merged flag, environment and file settings of v.
func loadConfig(v *viper.Viper) (types.ConverterConfig, error) {
	cfg := types.DefaultConverterConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg.Normalize(), nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
