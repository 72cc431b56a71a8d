// Package diag holds the process-wide error taxonomy, the jump!/catch-jump
// slot, ANSI-gated diagnostic formatting, and the structured logging event
// type threaded through an interp.Context.
package diag
