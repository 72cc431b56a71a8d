// Package datum defines the single polymorphic runtime value of the
// interpreter core: a tagged union ([Value]) over every kind of Scheme
// datum the evaluator, reader, and structural layers exchange, plus the
// lexical environment ([Env]) that closures and delays capture.
//
// Atomic-by-value variants (booleans, characters, numbers, symbols) are
// copied by value. Reference variants (pairs, vectors, strings, hash-maps,
// objects, delays, environments) are shared handles: two [Value]s wrapping
// the same pointer are the same cell, and mutation through either is visible
// to both. Pairs may form cycles; nothing in this package assumes
// acyclicity, that is the job of [listops.Classify] and the packages built
// on it.
package datum
