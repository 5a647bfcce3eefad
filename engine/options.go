package engine

import (
	"github.com/hashicorp/go-hclog"
	"github.com/lukasiewicz/neurosym/schema"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithConfig overrides the schema's own Config wholesale.
func WithConfig(cfg schema.Config) Option {
	return func(e *Engine) { e.config = cfg }
}

// WithMaxIterations overrides only the max-iterations bound.
func WithMaxIterations(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.config.MaxIterations = n
		}
	}
}

// WithLogger attaches an hclog.Logger that receives Trace-level lines per
// iteration and a Debug line on convergence or epoch completion. This is
// ambient observability only — it never changes Run/Train's return
// values — so omitting it (the default) makes the engine silent.
func WithLogger(l hclog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}
