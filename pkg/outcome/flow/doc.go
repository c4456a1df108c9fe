// Package flow lifts the solo primitives over channels for concurrent
// pipelines. Inputs enter via Emit/EmitResults, travel through stages
// pumped by a configurable number of workers, and leave via Finalize,
// Collect or First.
//
// Worker count and drain behavior are carried on the context via
// WithWorkers and WithDrainRemaining, so deeply nested pipeline code
// does not need extra parameters.
package flow
