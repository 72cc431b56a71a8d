// Package stream implements lazy streams (spec.md §4.6): a stream is
// either the empty list or a pair whose car and cdr are both delays. [Force]
// is the single-writer, memoize-on-first-force primitive every other
// operation here is built on; it forces a delay at most once, grounded on
// the Pending/Resolved state-machine idiom of
// _examples/joeycumines-go-utilpkg/eventloop/promise.go, stripped of the
// mutex and subscriber-channel machinery that file needs for cross-goroutine
// delivery — the core's single-threaded execution model (spec.md §5) means
// no other goroutine can observe a delay mid-force.
package stream
