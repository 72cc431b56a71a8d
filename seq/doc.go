// Package seq implements the polymorphic sequence combinators of spec.md
// §4.5: map, for-each, filter, remove, fold, fold-right, count, any, every,
// take/drop and their -right/-while variants, unfold, iota, sort, merge,
// and delete-neighbor-dups. Every combinator is written once against
// [github.com/heistscheme/heistcore/internal/seqview.View] and dispatches
// shape by inspecting its sequence arguments' tags, rather than once per
// shape (Design Notes §9).
package seq
