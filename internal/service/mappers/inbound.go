package mappers

import (
	"github.com/google/uuid"

	"github.com/vmdash/scenario-planner/internal/estimation"
	"github.com/vmdash/scenario-planner/internal/store/model"
)

// ScenarioCreateForm is the validated input of scenario creation. The
// computed planning fields are filled in by the service before persisting.
type ScenarioCreateForm struct {
	Name               string
	Description        *string
	CreatedBy          *string
	TargetID           uuid.UUID
	Strategy           string
	Criteria           model.SelectionCriteria
	ParallelMigrations int
}

func (f *ScenarioCreateForm) ToModel() model.MigrationScenario {
	return model.MigrationScenario{
		ID:                 uuid.New(),
		Name:               f.Name,
		Description:        f.Description,
		CreatedBy:          f.CreatedBy,
		TargetID:           f.TargetID,
		Strategy:           f.Strategy,
		Criteria:           model.MakeJSONField(f.Criteria),
		ParallelMigrations: f.ParallelMigrations,
	}
}

// InventoryToEstimationVMs maps inventory rows to the value shape the
// estimation models consume.
func InventoryToEstimationVMs(vms model.VirtualMachineList) []estimation.VM {
	out := make([]estimation.VM, 0, len(vms))
	for _, vm := range vms {
		out = append(out, estimation.VM{
			ID:             vm.ID,
			CPUs:           vm.CPUs,
			MemoryMB:       vm.MemoryMB,
			ProvisionedMiB: vm.ProvisionedMiB,
		})
	}
	return out
}
