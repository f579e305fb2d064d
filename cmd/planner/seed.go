package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vmdash/scenario-planner/internal/config"
	"github.com/vmdash/scenario-planner/internal/store"
	"github.com/vmdash/scenario-planner/internal/store/model"
)

var seedDemoTargets bool

func init() {
	seedCmd.Flags().BoolVar(&seedDemoTargets, "demo-targets", false, "also create a set of demo migration targets")
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the strategy parameter defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		defer initLogger(cfg)()

		db, err := store.InitDB(cfg)
		if err != nil {
			return err
		}

		s := store.NewStore(db)
		defer s.Close()

		ctx := context.Background()
		if err := s.Seed(ctx); err != nil {
			return err
		}
		zap.S().Named("seed").Info("strategy defaults seeded")

		if !seedDemoTargets {
			return nil
		}

		for _, target := range demoTargets() {
			if _, err := s.Target().Create(ctx, target); err != nil {
				if errors.Is(err, store.ErrDuplicateKey) {
					continue
				}
				return err
			}
			zap.S().Named("seed").Infof("created demo target %q", target.Name)
		}
		return nil
	},
}

// demoTargets is a starter set covering the common destination shapes, with
// unit costs in USD.
func demoTargets() []model.MigrationTarget {
	return []model.MigrationTarget{
		{
			Name:                  "on-prem-vsphere",
			PlatformType:          "vsphere",
			BandwidthMbps:         10000,
			ComputeCostPerVCPU:    0.005,
			MemoryCostPerGB:       0.002,
			StorageCostPerGB:      0.05,
			SupportsLiveMigration: true,
			SLAUptimePercent:      99.9,
		},
		{
			Name:                    "public-cloud",
			PlatformType:            "aws",
			BandwidthMbps:           1000,
			ComputeCostPerVCPU:      0.02,
			MemoryCostPerGB:         0.005,
			StorageCostPerGB:        0.08,
			NetworkIngressCostPerGB: 0.0,
			NetworkEgressCostPerGB:  0.09,
			SupportsLiveMigration:   false,
			SLAUptimePercent:        99.99,
		},
		{
			Name:                  "container-platform",
			PlatformType:          "kubernetes",
			BandwidthMbps:         2000,
			ComputeCostPerVCPU:    0.015,
			MemoryCostPerGB:       0.004,
			StorageCostPerGB:      0.1,
			SupportsLiveMigration: true,
			SLAUptimePercent:      99.95,
		},
	}
}
