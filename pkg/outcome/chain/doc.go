// Package chain provides a fluent wrapper around Result[T]
// for building synchronous error-aware chains using solo primitives.
//
// It composes functions like FlatMap, Map, Try, Tee, and Match behind a
// convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value
// - Ensure: run side effects without changing the result
// - Or/And: combine chains by outcome
// - Finally: collapse the chain into a final value via handlers
// - Pipe/PipeResult: sequence standalone operations over one value
package chain
