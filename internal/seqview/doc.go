// Package seqview implements the SeqView capability described in spec.md's
// Design Notes §9: a uniform, index-addressable view over the three
// sequence shapes package seq's combinators are polymorphic across —
// proper lists (of cons pairs), vectors, and strings — so that each
// combinator is written once against [View] instead of once per shape.
package seqview
