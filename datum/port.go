package datum

// Port is a handle into the process-wide port registry (package interp):
// an index plus whether it is an output port. The open/closed flag is
// authoritative in the registry, not here, so that closing a port is
// visible through every [Value] wrapping the same index without having to
// chase down and mutate copies (spec.md §5 "Port registry").
type Port struct {
	Index  int
	Output bool
}
