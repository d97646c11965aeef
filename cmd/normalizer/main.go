package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/profile-normalizer/internal/config"
	"github.com/profile-normalizer/internal/logger"
)

var (
	cfg *config.Config

	dryRun    bool
	batchSize int
	debugMode bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:           "normalizer",
		Short:         "Profile attribute normalization pipeline",
		Long:          `Normalizes free-text survey answers in the profile staging table into canonical, queryable values`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if debugMode {
				cfg.Log.Level = "debug"
			}
			logger.Init(cfg.Log.Level, cfg.Log.Format)

			if cmd.Flags().Changed("batch-size") {
				cfg.BatchSize = batchSize
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "compute and log results without writing")
	rootCmd.PersistentFlags().IntVar(&batchSize, "batch-size", 100, "rows per update statement (1-1000)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug output")

	for _, name := range jobNames {
		rootCmd.AddCommand(createJobCmd(name))
	}
	rootCmd.AddCommand(createAllCmd())
	rootCmd.AddCommand(createImportCmd())
	rootCmd.AddCommand(createPreviewCmd())
	rootCmd.AddCommand(createPingCmd())
	rootCmd.AddCommand(createDBCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("normalizer failed")
		stop()
		os.Exit(1)
	}
}
