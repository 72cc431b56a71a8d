package interp

import (
	"io"
	"os"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"

	"github.com/heistscheme/heistcore/diag"
	"github.com/heistscheme/heistcore/evalapi"
)

// Context bundles the process-wide state spec.md §9 says to pass
// explicitly rather than through globals: the port registry, the jump!
// slot, configuration, the evaluator boundary, and the structured logger.
type Context struct {
	Ports  *PortRegistry
	Jump   *diag.JumpSlot
	Config Config
	Eval   evalapi.Evaluator
	Log    *logiface.Logger[*diag.Event]
}

// Option configures a Context built by New.
type Option func(*options)

type options struct {
	writer io.Writer
	log    *logiface.Logger[*diag.Event]
}

// WithWriter directs the default stumpy-backed logger's output, in place
// of the default os.Stderr. Ignored if WithLogger is also given.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.writer = w }
}

// WithLogger supplies a fully-constructed logger, bypassing the default
// stumpy wiring entirely (e.g. to use a different backend in tests). A nil
// log is treated as not given: New then builds the default logger.
func WithLogger(log *logiface.Logger[*diag.Event]) Option {
	return func(o *options) { o.log = log }
}

// New constructs a Context from cfg and ev, wiring a stumpy-backed
// structured logger the same way the pack's stumpy.WithStumpy option does
// (SPEC_FULL §2 "Logging"), unless overridden by WithLogger.
func New(cfg Config, ev evalapi.Evaluator, opts ...Option) *Context {
	o := options{writer: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	log := o.log
	if log == nil {
		log = logiface.New[*diag.Event](stumpy.WithStumpy(stumpy.WithWriter(o.writer)))
	}

	return &Context{
		Ports:  NewPortRegistry(cfg.PortRegistryCapacity),
		Jump:   &diag.JumpSlot{},
		Config: cfg,
		Eval:   ev,
		Log:    log,
	}
}

// Raise logs err (if c.Log is non-nil) and returns it, for the common
// "log then propagate" pattern at an error site.
func (c *Context) Raise(err *diag.Error) *diag.Error {
	diag.LogError(c.Log, err)
	return err
}
