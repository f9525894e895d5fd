// Package cpu ties pool workers to OS threads.
//
// Every worker goroutine is locked to its own OS thread for its whole life, so
// state that is only valid on one thread (a graphics context, a thread-local C
// library handle) can be owned by a worker. ThreadID lets the pool map the
// calling OS thread back to the worker identity it assigned.
package cpu
