// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bookscout CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookscout/internal/logger"
	"github.com/pdiddy/bookscout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the bookscout CLI.
var rootCmd = &cobra.Command{
	Use:   "bookscout",
	Short: "Search Open Library for books from the command line",
	Long: `bookscout is a client for the Open Library search API. Given a book
title it builds a query, performs the request, and prints the matching
books.

Use "search" for one-shot queries, "shell" for an interactive prompt, and
"history" to list past searches.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetDebug(viper.GetBool("debug"))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bookscout.yaml or ~/.config/bookscout/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bookscout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bookscout"))
		}
	}

	viper.SetEnvPrefix("BOOKSCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig merges the defaults with whatever viper picked up from the
// config file, environment, and flags.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()
	if v := viper.GetDuration("search.timeout"); v > 0 {
		cfg.Search.Timeout = v
	}
	if v := viper.GetString("search.user_agent"); v != "" {
		cfg.Search.UserAgent = v
	}
	if v := viper.GetStringSlice("search.fields"); len(v) > 0 {
		cfg.Search.Fields = v
	}
	if v := viper.GetInt("search.limit"); v > 0 {
		cfg.Search.Limit = v
	}
	if v := viper.GetString("history.path"); v != "" {
		cfg.History.Path = v
	}
	if v := viper.GetInt("history.max_entries"); v > 0 {
		cfg.History.MaxEntries = v
	}
	cfg.Debug = viper.GetBool("debug")
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
