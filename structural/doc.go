// Package structural implements the operations that walk a [datum.Value]
// graph structurally: equal? (spec.md §4.3), deep-copy (§4.4), and the
// three serializers display/write/pretty-print (§4.2). Pair traversal in
// deep-copy and the serializers is cycle-aware via package listops'
// Floyd-based [listops.Classify] and [listops.CycleEntry]; Equal does not
// detect cycles and terminates on a cyclic chain only through its
// pointer-identity fast path. Object method dispatch (`this->string`, `this=`)
// is reached through [evalapi.MethodDispatcher] rather than a direct link
// to the evaluator, per Design Notes §9.
package structural
