package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vmdash/scenario-planner/internal/config"
	"github.com/vmdash/scenario-planner/internal/store"
	"github.com/vmdash/scenario-planner/pkg/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		defer initLogger(cfg)()

		zap.S().Named("migrate").Info("initializing data store")
		db, err := store.InitDB(cfg)
		if err != nil {
			return err
		}

		s := store.NewStore(db)
		defer s.Close()

		// Prefer the SQL migration folder; fall back to AutoMigrate when the
		// deployment ships without one.
		if cfg.Service.MigrationFolder != "" {
			if err := migrations.MigrateStore(db, cfg); err != nil {
				return err
			}
		} else if err := s.InitialMigration(); err != nil {
			return err
		}

		if err := s.Seed(context.Background()); err != nil {
			return err
		}

		zap.S().Named("migrate").Info("db migrated")
		return nil
	},
}
