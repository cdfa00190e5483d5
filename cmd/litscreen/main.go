// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the litscreen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the litscreen CLI.
var rootCmd = &cobra.Command{
	Use:   "litscreen",
	Short: "Title and abstract screening for systematic reviews",
	Long: `litscreen automates the initial screening phase of a systematic review.
It parses an EndNote-style tagged text export, classifies each record by
keyword rules over its title and abstract, and writes a spreadsheet report
with one sheet per screening category.

Run "litscreen screen" to classify an export, or "litscreen records" to
inspect what the parser finds in a file.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./litscreen.yaml or ~/.config/litscreen/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("litscreen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "litscreen"))
		}
	}

	viper.SetEnvPrefix("LITSCREEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
