package diag

import "github.com/joeycumines/stumpy"

// Event is the structured logging event type carried by every
// *logiface.Logger[*Event] threaded through an interp.Context: stumpy's
// zero-allocation append-to-[]byte JSON writer, used directly rather than
// wrapped, per the pack's own `stumpy.LoggerFactory[*Event]` pattern.
type Event = stumpy.Event
