package estimation

// ResourceSummary holds the summed resources of a VM collection.
// Memory and storage are converted with a flat /1024, consistent with the
// unit handling in the rest of the system.
type ResourceSummary struct {
	VMCount        int
	TotalVCPUs     int
	TotalMemoryGB  float64
	TotalStorageGB float64
}

// Aggregate sums CPU, memory and provisioned storage across a VM set.
// Nil fields count as zero. An empty collection yields all-zero totals;
// callers are expected to reject empty selections before running the
// duration or cost models.
func Aggregate(vms []VM) ResourceSummary {
	summary := ResourceSummary{VMCount: len(vms)}

	totalMemoryMB := 0
	totalProvisionedMiB := 0.0
	for _, vm := range vms {
		if vm.CPUs != nil {
			summary.TotalVCPUs += *vm.CPUs
		}
		if vm.MemoryMB != nil {
			totalMemoryMB += *vm.MemoryMB
		}
		if vm.ProvisionedMiB != nil {
			totalProvisionedMiB += *vm.ProvisionedMiB
		}
	}

	summary.TotalMemoryGB = float64(totalMemoryMB) / 1024
	summary.TotalStorageGB = totalProvisionedMiB / 1024
	return summary
}
