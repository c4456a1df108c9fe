// Package future provides a settle-once handle for asynchronous
// computations. A Future can be created, passed around and awaited by
// multiple consumers, which is the key difference between a Future and
// a channel: a channel value can only be read once, a settled Future
// can be read any number of times.
package future
