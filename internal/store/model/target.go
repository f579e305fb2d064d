package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/vmdash/scenario-planner/internal/estimation"
)

// MigrationTarget is a named destination platform with its replication
// parameters and unit costs. Column defaults mirror the documented
// replication defaults so rows created outside the API stay sane.
type MigrationTarget struct {
	ID        uuid.UUID `gorm:"primaryKey"`
	CreatedAt time.Time
	Name      string `gorm:"uniqueIndex;not null"`

	PlatformType string `gorm:"type:VARCHAR(100)"`

	BandwidthMbps           int
	NetworkEfficiency       float64 `gorm:"default:0.8"`
	CompressionRatio        float64 `gorm:"default:0.6"`
	DedupRatio              float64 `gorm:"default:0.8"`
	ChangeRatePercent       float64 `gorm:"default:0.1"`
	NetworkProtocolOverhead float64 `gorm:"default:1.2"`
	DeltaSyncCount          int     `gorm:"default:2"`

	ComputeCostPerVCPU      float64 `gorm:"column:compute_cost_per_vcpu"`
	MemoryCostPerGB         float64
	StorageCostPerGB        float64
	NetworkIngressCostPerGB float64
	NetworkEgressCostPerGB  float64

	SupportsLiveMigration bool
	SLAUptimePercent      float64
}

type MigrationTargetList []MigrationTarget

// Profile maps the row to the value type the estimation models consume.
func (t MigrationTarget) Profile() estimation.TargetProfile {
	return estimation.TargetProfile{
		PlatformType:            t.PlatformType,
		BandwidthMbps:           t.BandwidthMbps,
		NetworkEfficiency:       t.NetworkEfficiency,
		CompressionRatio:        t.CompressionRatio,
		DedupRatio:              t.DedupRatio,
		ChangeRatePercent:       t.ChangeRatePercent,
		NetworkProtocolOverhead: t.NetworkProtocolOverhead,
		DeltaSyncCount:          t.DeltaSyncCount,
		ComputeCostPerVCPU:      t.ComputeCostPerVCPU,
		MemoryCostPerGB:         t.MemoryCostPerGB,
		StorageCostPerGB:        t.StorageCostPerGB,
		NetworkIngressCostPerGB: t.NetworkIngressCostPerGB,
		NetworkEgressCostPerGB:  t.NetworkEgressCostPerGB,
		SupportsLiveMigration:   t.SupportsLiveMigration,
		SLAUptimePercent:        t.SLAUptimePercent,
	}
}

func (t MigrationTarget) String() string {
	val, _ := json.Marshal(t)
	return string(val)
}
