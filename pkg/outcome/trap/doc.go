// Package trap converts operations that may return an error or panic
// into Result values, so that nothing escapes the call except by the
// explicit Rethrow policy.
//
// Key operations:
// - Try/TryVal: run synchronously, always return a plain Result
// - Go/GoVal: run on a goroutine, always return a *future.Future
// - TryWith/GoWith: add OnError/Finally hooks and the Rethrow policy
//
// The wrappers never classify the failure: whatever error was returned
// appears in the Result unchanged, and a recovered panic value rides in
// a *PanicError whose Value field preserves the original payload.
package trap
