package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/vmdash/scenario-planner/internal/estimation"
)

// SelectionCriteria selects the VM set of a scenario. Every populated
// criterion is one conjunct: a VM must satisfy all of them. Values inside
// a list criterion are alternatives (OR); label pairs must all match (AND).
type SelectionCriteria struct {
	IDs            []string          `json:"ids,omitempty"`
	Datacenters    []string          `json:"datacenters,omitempty"`
	Clusters       []string          `json:"clusters,omitempty"`
	FolderPrefixes []string          `json:"folder_prefixes,omitempty"`
	Labels         map[string]string `json:"labels,omitempty"`
}

// Empty reports whether no criterion is populated.
func (c SelectionCriteria) Empty() bool {
	return len(c.IDs) == 0 && len(c.Datacenters) == 0 && len(c.Clusters) == 0 &&
		len(c.FolderPrefixes) == 0 && len(c.Labels) == 0
}

// MigrationScenario binds a name, target, strategy and VM selection to the
// computed planning outputs. The computation is a snapshot taken at create
// time; rows are never partially updated, only created and deleted.
type MigrationScenario struct {
	ID        uuid.UUID `gorm:"primaryKey"`
	CreatedAt time.Time

	Name        string `gorm:"uniqueIndex;not null"`
	Description *string
	CreatedBy   *string

	TargetID uuid.UUID                     `gorm:"not null;index"`
	Strategy string                        `gorm:"not null;type:VARCHAR(50)"`
	Criteria *JSONField[SelectionCriteria] `gorm:"type:jsonb;not null"`

	ParallelMigrations int

	VMCount        int
	TotalVCPUs     int     `gorm:"column:total_vcpus"`
	TotalMemoryGB  float64
	TotalStorageGB float64

	EstimatedDurationDays       float64
	EstimatedMigrationCost      float64
	EstimatedRuntimeCostMonthly float64
	EstimatedCostTotal          float64

	DurationBreakdown *JSONField[estimation.DurationEstimate] `gorm:"type:jsonb"`
	CostBreakdown     *JSONField[estimation.CostEstimate]     `gorm:"type:jsonb"`

	RiskLevel   string               `gorm:"type:VARCHAR(20)"`
	RiskFactors *JSONField[[]string] `gorm:"type:jsonb"`

	RecommendationScore float64
	Recommended         bool

	Waves []MigrationWave `gorm:"foreignKey:ScenarioID;references:ID;constraint:OnDelete:CASCADE;"`
}

type MigrationScenarioList []MigrationScenario

func (s MigrationScenario) String() string {
	val, _ := json.Marshal(s)
	return string(val)
}
