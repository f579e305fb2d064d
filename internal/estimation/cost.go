package estimation

const (
	hoursPerMonth = 24 * 30
	daysPerMonth  = 30.0
)

// MigrationCosts is the one-time cost breakdown of a migration.
type MigrationCosts struct {
	Labor           float64 `json:"labor"`
	NetworkTransfer float64 `json:"network_transfer"`
	Total           float64 `json:"total"`
}

// RuntimeCosts is the recurring monthly cost breakdown on the target.
type RuntimeCosts struct {
	ComputeMonthly float64 `json:"compute_monthly"`
	MemoryMonthly  float64 `json:"memory_monthly"`
	StorageMonthly float64 `json:"storage_monthly"`
	SaaSMonthly    float64 `json:"saas_monthly"`
	TotalMonthly   float64 `json:"total_monthly"`
}

// CostEstimate separates one-time migration spend from ongoing operating
// spend; the two serve different budget decisions. TotalCost prorates the
// runtime cost over the migration duration for side-by-side comparison.
type CostEstimate struct {
	Migration MigrationCosts `json:"migration"`
	Runtime   RuntimeCosts   `json:"runtime"`

	DurationMonths     float64 `json:"duration_months"`
	RuntimeForDuration float64 `json:"runtime_for_duration"`
	TotalCost          float64 `json:"total_cost"`
}

// CalculateMigrationCost computes the one-time and recurring cost of
// migrating a VM set to the target under the given strategy parameters.
// Each runtime term is zero when its multiplier is zero, which models
// strategies like retire/retain that keep no infrastructure running.
// durationDays only prorates runtime cost into the comparison total.
func CalculateMigrationCost(vms []VM, target TargetProfile, durationDays float64, strategy StrategyParameters) CostEstimate {
	if len(vms) == 0 {
		return CostEstimate{}
	}

	summary := Aggregate(vms)

	labor := float64(summary.VMCount) * strategy.HoursPerVM * strategy.LaborRatePerHour

	// Migration-phase network transfer is billed once, proportional to the
	// data moved, not to duration.
	networkTransfer := 0.0
	if strategy.NetworkMultiplier > 0 {
		networkTransfer = summary.TotalStorageGB * (target.NetworkIngressCostPerGB + target.NetworkEgressCostPerGB) * strategy.NetworkMultiplier
	}
	migrationTotal := labor + networkTransfer

	computeMonthly := 0.0
	if strategy.ComputeMultiplier > 0 {
		computeMonthly = float64(summary.TotalVCPUs) * target.ComputeCostPerVCPU * hoursPerMonth * strategy.ComputeMultiplier
	}
	memoryMonthly := 0.0
	if strategy.MemoryMultiplier > 0 {
		memoryMonthly = summary.TotalMemoryGB * target.MemoryCostPerGB * hoursPerMonth * strategy.MemoryMultiplier
	}
	// Storage is billed flat per month, not hourly.
	storageMonthly := 0.0
	if strategy.StorageMultiplier > 0 {
		storageMonthly = summary.TotalStorageGB * target.StorageCostPerGB * strategy.StorageMultiplier
	}
	saasMonthly := 0.0
	if strategy.Strategy == StrategyRepurchase && strategy.SaaSCostPerVMPerMonth > 0 {
		saasMonthly = float64(summary.VMCount) * strategy.SaaSCostPerVMPerMonth
	}
	runtimeMonthly := computeMonthly + memoryMonthly + storageMonthly + saasMonthly

	durationMonths := durationDays / daysPerMonth
	runtimeForDuration := runtimeMonthly * durationMonths

	return CostEstimate{
		Migration: MigrationCosts{
			Labor:           round2(labor),
			NetworkTransfer: round2(networkTransfer),
			Total:           round2(migrationTotal),
		},
		Runtime: RuntimeCosts{
			ComputeMonthly: round2(computeMonthly),
			MemoryMonthly:  round2(memoryMonthly),
			StorageMonthly: round2(storageMonthly),
			SaaSMonthly:    round2(saasMonthly),
			TotalMonthly:   round2(runtimeMonthly),
		},
		DurationMonths:     round2(durationMonths),
		RuntimeForDuration: round2(runtimeForDuration),
		TotalCost:          round2(migrationTotal + runtimeForDuration),
	}
}
