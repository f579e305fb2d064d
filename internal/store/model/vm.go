package model

import "encoding/json"

// VirtualMachine is one inventory record. The planner treats the table as
// read-only; rows are populated by the inventory import pipeline.
// Numeric columns are nullable and count as zero during aggregation.
type VirtualMachine struct {
	ID             string   `gorm:"primaryKey;type:VARCHAR(255)"`
	Name           string   `gorm:"type:VARCHAR(255)"`
	CPUs           *int     `gorm:"column:cpus"`
	MemoryMB       *int     `gorm:"column:memory"`
	ProvisionedMiB *float64 `gorm:"column:provisioned_mib"`
	PowerState     string   `gorm:"type:VARCHAR(50)"`

	// Grouping attributes, used only for selection filtering.
	Datacenter string `gorm:"index;type:VARCHAR(255)"`
	Cluster    string `gorm:"index;type:VARCHAR(255)"`
	Folder     string `gorm:"type:VARCHAR(1024)"`

	Labels []VMLabel `gorm:"foreignKey:VMID;references:ID;constraint:OnDelete:CASCADE;"`
}

// VMLabel is one key/value label attached to a VM.
type VMLabel struct {
	Key   string `gorm:"primaryKey;column:key;type:VARCHAR(100)"`
	Value string `gorm:"column:value;type:VARCHAR(100);not null"`
	VMID  string `gorm:"primaryKey;column:vm_id;type:VARCHAR(255)"`
}

type VirtualMachineList []VirtualMachine

func (v VirtualMachine) String() string {
	val, _ := json.Marshal(v)
	return string(val)
}
