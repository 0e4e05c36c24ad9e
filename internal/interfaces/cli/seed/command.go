package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"noticeboard/internal/infrastructure/config"
	"noticeboard/internal/infrastructure/database"
	"noticeboard/internal/infrastructure/persistence/seeds"
	"noticeboard/internal/shared/logger"
)

var configPath string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo categories and announcements",
		Long:  `Insert the demo categories and announcements. Does nothing when categories already exist.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("", configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	seeded, err := seeds.SeedAnnouncements(database.Get())
	if err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	if !seeded {
		log.Infow("categories already present, seeding skipped")
		return nil
	}

	log.Infow("seeding completed successfully")
	return nil
}
