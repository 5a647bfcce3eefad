// Package schema defines the declarative NeuroSym document: named
// Variables with priors, ordered Rules connecting them through the logic
// kernel's operators, ordered argumentation Constraints, and the Engine's
// Config. A Schema is immutable input to the engine package; only the
// engine's own rule-weight table is mutated by training.
//
// Schema documents round-trip through YAML (LoadYAML/ToYAML) and can be
// decoded from loosely-typed maps (FromMap, for callers decoding JSON or
// similar formats themselves); there is no encoder back to a map. Validate is advisory: the engine tolerates partial or
// malformed schemas at runtime regardless of what Validate reports.
package schema
