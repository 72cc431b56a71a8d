// Package interp bundles the process-wide state spec.md §9's "Process-wide
// state" design note calls for passing explicitly rather than through
// globals: the port registry, the jump! slot, configuration, the evaluator
// boundary, and the structured logger.
package interp
