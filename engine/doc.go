// Package engine implements the NeuroSym inference engine: it owns the
// mutable per-variable state derived from a schema.Schema, runs the
// damped forward pass and constraint pass to convergence, answers queries,
// and trains rule weights from labelled examples.
//
// An Engine is constructed from an immutable *schema.Schema plus optional
// Options. Run resets state to priors, locks any evidence, and iterates
// the forward/constraint passes until the maximum per-iteration delta
// drops below the configured convergence threshold or max_iterations is
// reached. Query, GetValue/SetValue, LockVariable and
// GetRuleWeight/SetRuleWeight give direct access to the running state;
// Export and ExportState snapshot the schema (with trained weights) and
// the current values respectively.
//
// Engine is single-threaded and synchronous: Run and Train are CPU-only
// and never suspend. It is not safe for concurrent mutation — concurrent
// Run/Train calls on one Engine are undefined. Engine holds no lock of its
// own: a caller reading ExportState while Run or Train may be in flight
// must synchronize externally.
package engine
