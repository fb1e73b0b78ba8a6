// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the file-converter CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/evanpersinger/File-Converter/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, otherwise the secret value
// for key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the file-converter CLI.
var rootCmd = &cobra.Command{
	Use:   "file-converter",
	Short: "Convert documents, spreadsheets, images and notebooks between formats",
	Long: `file-converter turns files from an input directory into other formats in
an output directory. Spreadsheets, PDFs, Word and PowerPoint documents,
Markdown, HTML, R scripts, Jupyter notebooks and scanned images are all
supported, each as its own subcommand.

Run a subcommand with a filename to convert one file, or with no
arguments to convert everything of that type in the input directory.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./file-converter.yaml or ~/.config/file-converter/config.yaml)")
	rootCmd.PersistentFlags().String("input-dir", "", "directory containing source files (default: input)")
	rootCmd.PersistentFlags().String("output-dir", "", "directory for converted files (default: output)")
	rootCmd.PersistentFlags().String("report", "", "write a YAML batch report to this path")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("file-converter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "file-converter"))
		}
	}

	viper.SetEnvPrefix("FILE_CONVERTER")
	viper.AutomaticEnv()

	viper.SetDefault("input-dir", "input")
	viper.SetDefault("output-dir", "output")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
