// Package listops implements cycle-safe traversal and the basic list
// operations over package datum's [datum.Pair] chains: Floyd's
// tortoise-and-hare cycle classifier (spec.md §4.1), length, membership,
// association, and cons-based construction (spec.md §4 "L. List algebra").
//
// [Classify] is the single cycle-aware primitive every other cycle-safe
// walker in this module is built on (package structural and package seq
// both call it rather than re-implementing tortoise/hare at each call
// site), per Design Notes §9.
package listops
