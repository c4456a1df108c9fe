// Package pool provides a bounded executor producing deferred Results.
// Tasks are queued up to a configurable depth, run by a fixed set of
// workers, optionally throttled by a token-bucket rate limit, and each
// settles its own future.
package pool
