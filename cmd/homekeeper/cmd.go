package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmynk/homekeeper/internal/config"
	"github.com/mmynk/homekeeper/internal/tui"
	"github.com/mmynk/homekeeper/pkg/logging"
)

func newRootCmd() *cobra.Command {
	var configPath, addr string

	// root command
	rootCmd := &cobra.Command{
		Use:          "homekeeper",
		Short:        "Household chores, groceries and car maintenance",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("HOMEKEEPER_CONFIG"), "path to a YAML or TOML config file")

	loadConfig := func() (config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}

	// command for running the Connect API server
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Connect API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			logging.SetupTo(os.Stderr, cfg.LogLevel)
			logStartup(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config and HOMEKEEPER_ADDR)")

	// command for the terminal UI
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			// The UI owns the terminal; logs would corrupt the screen.
			logging.SetupTo(io.Discard, cfg.LogLevel)

			ctx := cmd.Context()
			app, closeApp, err := open(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeApp()
			return tui.Run(ctx, app, cfg.Keys)
		},
	}

	// command for printing car statuses
	carsCmd := &cobra.Command{
		Use:   "cars",
		Short: "Print service, inspection and fuel status of every car",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logging.SetupTo(os.Stderr, cfg.LogLevel)

			ctx := cmd.Context()
			app, closeApp, err := open(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeApp()
			return printCars(ctx, cmd.OutOrStdout(), app.Cars)
		},
	}

	// add commands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(carsCmd)

	return rootCmd
}

func logStartup(cfg config.Config) {
	slog.Info("Configuration loaded",
		"store", cfg.Store,
		"seed", cfg.Seed,
		"family_size", len(cfg.Family),
		"log_level", cfg.LogLevel,
	)
}
