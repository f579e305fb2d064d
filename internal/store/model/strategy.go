package model

import (
	"time"

	"github.com/vmdash/scenario-planner/internal/estimation"
)

// MigrationStrategyConfig holds the tunable parameters of one migration
// strategy. Exactly one row exists per strategy value; the rows are seeded
// deterministically at startup instead of get-or-create at use time.
type MigrationStrategyConfig struct {
	Strategy  string `gorm:"primaryKey;type:VARCHAR(50)"`
	CreatedAt time.Time

	HoursPerVM       float64
	LaborRatePerHour float64

	ComputeMultiplier float64
	MemoryMultiplier  float64
	StorageMultiplier float64
	NetworkMultiplier float64

	SaaSCostPerVMPerMonth float64 `gorm:"column:saas_cost_per_vm_per_month"`

	ReplicationEfficiency float64 `gorm:"default:1.0"`
	// Reserved for parallelism tuning; not applied to the duration formula.
	ParallelReplicationFactor float64 `gorm:"default:1.0"`
}

// Parameters maps the row to the resolved value threaded into the models.
func (c MigrationStrategyConfig) Parameters() estimation.StrategyParameters {
	return estimation.StrategyParameters{
		Strategy:                  estimation.Strategy(c.Strategy),
		HoursPerVM:                c.HoursPerVM,
		LaborRatePerHour:          c.LaborRatePerHour,
		ComputeMultiplier:         c.ComputeMultiplier,
		MemoryMultiplier:          c.MemoryMultiplier,
		StorageMultiplier:         c.StorageMultiplier,
		NetworkMultiplier:         c.NetworkMultiplier,
		SaaSCostPerVMPerMonth:     c.SaaSCostPerVMPerMonth,
		ReplicationEfficiency:     c.ReplicationEfficiency,
		ParallelReplicationFactor: c.ParallelReplicationFactor,
	}
}

// NewStrategyConfig builds a row from a resolved parameter set.
func NewStrategyConfig(params estimation.StrategyParameters) MigrationStrategyConfig {
	return MigrationStrategyConfig{
		Strategy:                  string(params.Strategy),
		HoursPerVM:                params.HoursPerVM,
		LaborRatePerHour:          params.LaborRatePerHour,
		ComputeMultiplier:         params.ComputeMultiplier,
		MemoryMultiplier:          params.MemoryMultiplier,
		StorageMultiplier:         params.StorageMultiplier,
		NetworkMultiplier:         params.NetworkMultiplier,
		SaaSCostPerVMPerMonth:     params.SaaSCostPerVMPerMonth,
		ReplicationEfficiency:     params.ReplicationEfficiency,
		ParallelReplicationFactor: params.ParallelReplicationFactor,
	}
}
