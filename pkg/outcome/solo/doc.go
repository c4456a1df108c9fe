// Package solo contains single-value, synchronous primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines without channels.
//
// Highlights:
// - Succeed/FailWith: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - FlatMap: move from Result[In] to Result[Out]
// - Map/MapErr: transform the successful value or the error
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeErr: side-effect helpers
// - Match: reduce to a concrete value via success/failure handlers
package solo
