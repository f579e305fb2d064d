package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Wave lifecycle states. The planner only ever creates waves as planned;
// the remaining states are driven by the execution tooling.
const (
	WaveStatusPlanned    = "planned"
	WaveStatusInProgress = "in_progress"
	WaveStatusCompleted  = "completed"
	WaveStatusFailed     = "failed"
)

// MigrationWave is one ordered batch of VMs inside a scenario. Wave n
// depends on wave n-1 only, forming a strictly linear chain.
type MigrationWave struct {
	ID        uuid.UUID `gorm:"primaryKey"`
	CreatedAt time.Time

	ScenarioID uuid.UUID `gorm:"not null;index"`
	WaveNumber int       `gorm:"not null"`

	VMIDs  *JSONField[[]string] `gorm:"type:jsonb;not null"`
	Status string               `gorm:"type:VARCHAR(20);default:planned"`

	DependsOnWaveIDs *JSONField[[]uuid.UUID] `gorm:"type:jsonb"`
}

type MigrationWaveList []MigrationWave

func (w MigrationWave) String() string {
	val, _ := json.Marshal(w)
	return string(val)
}
