package estimation

import "fmt"

// Strategy is one of the 6Rs cloud-migration strategies.
type Strategy string

const (
	StrategyRetain     Strategy = "retain"
	StrategyRetire     Strategy = "retire"
	StrategyRehost     Strategy = "rehost"
	StrategyReplatform Strategy = "replatform"
	StrategyRefactor   Strategy = "refactor"
	StrategyRepurchase Strategy = "repurchase"
)

// Strategies lists all known strategies in a stable order, used when seeding
// the per-strategy configuration rows.
var Strategies = []Strategy{
	StrategyRetain,
	StrategyRetire,
	StrategyRehost,
	StrategyReplatform,
	StrategyRefactor,
	StrategyRepurchase,
}

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyRetain, StrategyRetire, StrategyRehost, StrategyReplatform, StrategyRefactor, StrategyRepurchase:
		return true
	}
	return false
}

// StrategyParameters is the resolved parameter set for one strategy. It is
// fetched once per orchestration call and threaded explicitly into each
// model function.
type StrategyParameters struct {
	Strategy         Strategy
	HoursPerVM       float64
	LaborRatePerHour float64

	// Cost component multipliers; zero disables the component entirely.
	ComputeMultiplier float64
	MemoryMultiplier  float64
	StorageMultiplier float64
	NetworkMultiplier float64

	// SaaSCostPerVMPerMonth only applies to the repurchase strategy.
	SaaSCostPerVMPerMonth float64

	// ReplicationEfficiency scales the total replication time.
	ReplicationEfficiency float64

	// ParallelReplicationFactor is reserved for future parallelism tuning
	// and is not applied to the duration formula.
	ParallelReplicationFactor float64
}

var defaultParameters = map[Strategy]StrategyParameters{
	StrategyRetain: {
		HoursPerVM:       0.5,
		LaborRatePerHour: 150,
	},
	StrategyRetire: {
		HoursPerVM:       1.0,
		LaborRatePerHour: 150,
	},
	StrategyRehost: {
		HoursPerVM:        4.0,
		LaborRatePerHour:  150,
		ComputeMultiplier: 1.0,
		MemoryMultiplier:  1.0,
		StorageMultiplier: 1.0,
		NetworkMultiplier: 1.0,
	},
	StrategyReplatform: {
		HoursPerVM:        8.0,
		LaborRatePerHour:  150,
		ComputeMultiplier: 0.9,
		MemoryMultiplier:  0.9,
		StorageMultiplier: 0.85,
		NetworkMultiplier: 1.0,
	},
	StrategyRefactor: {
		HoursPerVM:        40.0,
		LaborRatePerHour:  200,
		ComputeMultiplier: 0.6,
		MemoryMultiplier:  0.7,
		StorageMultiplier: 0.5,
		NetworkMultiplier: 0.1,
	},
	StrategyRepurchase: {
		HoursPerVM:            6.0,
		LaborRatePerHour:      150,
		SaaSCostPerVMPerMonth: 100,
	},
}

// DefaultParameters returns the documented default parameter set for the
// given strategy. It errors on unknown strategies rather than guessing.
func DefaultParameters(s Strategy) (StrategyParameters, error) {
	params, ok := defaultParameters[s]
	if !ok {
		return StrategyParameters{}, fmt.Errorf("unknown migration strategy %q", s)
	}
	params.Strategy = s
	params.ReplicationEfficiency = 1.0
	params.ParallelReplicationFactor = 1.0
	return params, nil
}
