package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tubedeck/tubedeck/internal/client"
	"github.com/tubedeck/tubedeck/internal/config"
	"github.com/tubedeck/tubedeck/internal/events"
)

var (
	cfgFile  string
	logLevel string

	cfg       *config.Config
	logger    *events.Logger
	appClient *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "tubedeck",
	Short: "Browse a mock video platform from the terminal",
	Long: `Tubedeck is a terminal front end for a simulated video platform.

It keeps your viewing preferences (theme, playback settings, recent
searches, sidebar layout) in local storage and serves feed, search,
video and comment data from an in-process mock backend.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = config.NewLoader(cfgFile).Load()
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}

		logger, err = events.NewLogger(&cfg.Log)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}

		appClient, err = client.New(cfg, logger)
		if err != nil {
			return fmt.Errorf("initialize client: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appClient != nil {
			return appClient.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file path (default searches ./tubedeck.yaml and ~/.config/tubedeck)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
}
