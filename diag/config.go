package diag

// Config is the process-wide tuning surface spec.md §9 calls out as
// previously-global state (pretty-print column width and the ANSI-enable
// flag), plus the guard rails a long-running embedded interpreter needs
// that the source left as compile-time constants. interp.Config is an
// alias of this type; it lives here (rather than in interp) so Format can
// take a Config without diag importing interp, which already imports diag.
type Config struct {
	// ANSIEnabled gates colour formatting in Format; when false, ANSI
	// escape codes expand to "" (spec.md §6).
	ANSIEnabled bool `toml:"ansi_enabled"`
	// PrettyPrintColumns is the column budget structural.PrettyPrint wraps
	// against.
	PrettyPrintColumns int `toml:"pretty_print_columns"`
	// PortRegistryCapacity preallocates the port registry's backing slice.
	PortRegistryCapacity int `toml:"port_registry_capacity"`
	// MaxStackDepth is a limit on (non-tail) recursion depth. No package in
	// this module reads it; enforcing it is left to the evaluator.
	MaxStackDepth int `toml:"max_stack_depth"`
	// MaxCallCount is a limit on iteration counts. No package in this
	// module reads it: seq.Unfold and the stream operations run until
	// their own stop condition holds.
	MaxCallCount int `toml:"max_call_count"`
}

// DefaultConfig returns the configuration used when no TOML file is
// supplied.
func DefaultConfig() Config {
	return Config{
		ANSIEnabled:           false,
		PrettyPrintColumns:    80,
		PortRegistryCapacity:  16,
		MaxStackDepth:         10_000,
		MaxCallCount:          1_000_000,
	}
}
