package estimation

// VM is the minimal virtual-machine shape the calculators operate on.
// Numeric fields are pointers because inventory rows may carry NULLs;
// a nil value counts as zero during aggregation.
type VM struct {
	ID             string
	CPUs           *int
	MemoryMB       *int
	ProvisionedMiB *float64
}

// Replication parameter defaults applied when a target leaves them unset.
const (
	DefaultCompressionRatio        = 0.6
	DefaultDedupRatio              = 0.8
	DefaultChangeRatePercent       = 0.10
	DefaultNetworkProtocolOverhead = 1.2
	DefaultDeltaSyncCount          = 2
	DefaultNetworkEfficiency       = 0.8
)

// TargetProfile carries the migration-target attributes consumed by the
// duration, cost and risk models. It is a plain value resolved once per
// orchestration call so each model stays a pure function of its inputs.
type TargetProfile struct {
	PlatformType string

	// Replication parameters.
	BandwidthMbps           int
	NetworkEfficiency       float64
	CompressionRatio        float64
	DedupRatio              float64
	ChangeRatePercent       float64
	NetworkProtocolOverhead float64
	DeltaSyncCount          int

	// Unit costs.
	ComputeCostPerVCPU      float64
	MemoryCostPerGB         float64
	StorageCostPerGB        float64
	NetworkIngressCostPerGB float64
	NetworkEgressCostPerGB  float64

	SupportsLiveMigration bool
	SLAUptimePercent      float64
}

// withDefaults returns a copy with unset replication parameters replaced by
// the documented defaults. Zero unit costs are legitimate (free tiers) and
// are left alone.
func (t TargetProfile) withDefaults() TargetProfile {
	if t.CompressionRatio <= 0 {
		t.CompressionRatio = DefaultCompressionRatio
	}
	if t.DedupRatio <= 0 {
		t.DedupRatio = DefaultDedupRatio
	}
	if t.ChangeRatePercent <= 0 {
		t.ChangeRatePercent = DefaultChangeRatePercent
	}
	if t.NetworkProtocolOverhead <= 0 {
		t.NetworkProtocolOverhead = DefaultNetworkProtocolOverhead
	}
	if t.DeltaSyncCount <= 0 {
		t.DeltaSyncCount = DefaultDeltaSyncCount
	}
	if t.NetworkEfficiency <= 0 {
		t.NetworkEfficiency = DefaultNetworkEfficiency
	}
	return t
}
