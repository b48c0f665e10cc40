package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/killallgit/podcaster-api/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podcaster-api",
	Short: "Podcaster API server",
	Long: `Podcaster API - a podcast publishing backend

Users sign up, upload episodes with cover art and audio, and browse
everything that has been published by category.

Features:
  • Account sign-up and cookie or bearer sessions
  • Multipart uploads to local disk or Supabase Storage
  • Category listings and RSS feeds
  • Response caching in memory or Redis`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// loadConfig initializes configuration for commands that need it and
// applies the configured log level
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("initializing config: %w", err)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}

	log.SetOutput(newLevelWriter(os.Stderr, cfg.Logging.Level))
	return cfg, nil
}
