package estimation

import (
	"fmt"
	"math"
)

const (
	// cutoverHoursPerWave is the fixed cutover/validation overhead per wave.
	// Cutover is batched, so the overhead scales with waves, not VMs.
	cutoverHoursPerWave = 2.0
	// maintenanceWindowHours is the usable length of a cutover maintenance
	// window; replication itself runs around the clock.
	maintenanceWindowHours = 8.0
)

// DurationEstimate is the multi-phase replication time estimate.
// Hour and day fields are rounded to two decimals for presentation; the
// computation itself runs on unrounded intermediates.
type DurationEstimate struct {
	InitialReplicationHours float64 `json:"initial_replication_hours"`
	DeltaSyncHours          float64 `json:"delta_sync_hours"`
	TotalReplicationHours   float64 `json:"total_replication_hours"`
	CutoverHours            float64 `json:"cutover_hours"`
	TotalHours              float64 `json:"total_hours"`

	ReplicationDays float64 `json:"replication_days"`
	CutoverDays     float64 `json:"cutover_days"`
	TotalDays       float64 `json:"total_days"`

	MigrationWaves int `json:"migration_waves"`

	OriginalDataTB            float64 `json:"original_data_tb"`
	EffectiveDataTB           float64 `json:"effective_data_tb"`
	CompressionSavingsPercent float64 `json:"compression_savings_percent"`
	DedupSavingsPercent       float64 `json:"dedup_savings_percent"`
}

// CalculateMigrationDuration estimates the wall-clock migration time for a
// VM set: an initial full replication, a number of delta syncs proportional
// to the expected change rate, and a per-wave cutover overhead.
//
// An empty VM set is a defined terminal case yielding an all-zero estimate.
// Zero target bandwidth is likewise degenerate, not an error: the initial
// replication collapses to zero hours. parallelMigrations must be >= 1.
func CalculateMigrationDuration(vms []VM, target TargetProfile, parallelMigrations int, strategy StrategyParameters) (DurationEstimate, error) {
	if len(vms) == 0 {
		return DurationEstimate{}, nil
	}
	if parallelMigrations <= 0 {
		return DurationEstimate{}, fmt.Errorf("parallel migrations must be at least 1, got %d", parallelMigrations)
	}

	target = target.withDefaults()
	summary := Aggregate(vms)

	// Compression and dedup shrink the transfer; protocol overhead grows it.
	effectiveStorageGB := summary.TotalStorageGB * target.CompressionRatio * target.DedupRatio * target.NetworkProtocolOverhead
	effectiveGigabits := effectiveStorageGB * 8
	effectiveBandwidthGbps := float64(target.BandwidthMbps) * target.NetworkEfficiency / 1000

	initialReplicationHours := 0.0
	if effectiveBandwidthGbps > 0 {
		initialReplicationHours = effectiveGigabits / effectiveBandwidthGbps / 3600
	}

	// Each delta pass re-sends the fraction of data expected to change
	// between syncs.
	deltaSyncHours := initialReplicationHours * target.ChangeRatePercent * float64(target.DeltaSyncCount)
	totalReplicationHours := (initialReplicationHours + deltaSyncHours) * strategy.ReplicationEfficiency

	migrationWaves := int(math.Ceil(float64(summary.VMCount) / float64(parallelMigrations)))
	cutoverHours := float64(migrationWaves) * cutoverHoursPerWave

	totalHours := totalReplicationHours + cutoverHours
	replicationDays := totalReplicationHours / 24
	cutoverDays := cutoverHours / maintenanceWindowHours

	return DurationEstimate{
		InitialReplicationHours:   round2(initialReplicationHours),
		DeltaSyncHours:            round2(deltaSyncHours),
		TotalReplicationHours:     round2(totalReplicationHours),
		CutoverHours:              round2(cutoverHours),
		TotalHours:                round2(totalHours),
		ReplicationDays:           round2(replicationDays),
		CutoverDays:               round2(cutoverDays),
		TotalDays:                 round2(replicationDays + cutoverDays),
		MigrationWaves:            migrationWaves,
		OriginalDataTB:            round2(summary.TotalStorageGB / 1024),
		EffectiveDataTB:           round2(effectiveStorageGB / 1024),
		CompressionSavingsPercent: round2((1 - target.CompressionRatio) * 100),
		DedupSavingsPercent:       round2((1 - target.DedupRatio) * 100),
	}, nil
}
