// Package graph bridges an arbitrary labelled property graph — nodes and
// edges annotated with logic metadata — onto the engine's declarative
// schema. It extracts or fetches a bounded context subgraph, maps it to a
// schema.Schema through a stable, invertible name mapping, runs inference,
// and (optionally) writes the resulting truth values back through a
// Storage collaborator (store.Memory is the in-memory implementation).
//
// Bridge is the stateful entry point: construct with NewBridge(storage),
// tune with SetConfig, then call SolveContext/QueryNode/RunInference.
package graph
