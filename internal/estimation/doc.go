// Package estimation implements the migration scenario planning models:
// resource aggregation over a VM set, the multi-phase replication duration
// model, the one-time/recurring cost model, the additive risk rubric and
// the recommendation scorer.
//
// Every function in this package is pure: inputs are plain values resolved
// by the caller (service layer) and no I/O happens here. Degenerate inputs
// such as an empty VM set or zero bandwidth are defined terminal cases, not
// errors.
package estimation
