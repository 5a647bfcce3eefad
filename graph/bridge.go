package graph

import (
	"context"
	"fmt"

	"github.com/lukasiewicz/neurosym/engine"
	"github.com/lukasiewicz/neurosym/schema"
)

// Storage is the contract a graph database adapter must satisfy for a
// Bridge to fetch context windows and write inference results back.
// store.Memory is the in-memory reference implementation.
type Storage interface {
	// GetNode returns a single node, or ok=false if it does not exist.
	GetNode(ctx context.Context, id string) (*Node, bool, error)

	// GetNeighborhood returns the subgraph within depth hops of centerID,
	// including both endpoints of every included edge.
	GetNeighborhood(ctx context.Context, centerID string, depth int) (*Subgraph, error)

	// BulkUpdateNodes writes node-id-keyed truth values back.
	BulkUpdateNodes(ctx context.Context, updates map[string]float64) error
}

// Option configures a Bridge at construction time.
type Option func(*Bridge)

// WithConfig overrides the engine config a Bridge passes to every
// inference run it drives.
func WithConfig(cfg schema.Config) Option {
	return func(b *Bridge) { b.config = cfg }
}

// Bridge wraps a Storage collaborator and a default engine config. All
// inference entry points hang off it so the storage handle and config are
// threaded through one place.
type Bridge struct {
	storage Storage
	config  schema.Config
}

// NewBridge constructs a Bridge over storage with the engine's default
// config. storage may be nil for callers that only use ExtractContext/
// ToSchema/RunInference/QueryNode/GroundAbstractRules on in-memory data.
func NewBridge(storage Storage, opts ...Option) *Bridge {
	b := &Bridge{storage: storage, config: schema.DefaultConfig()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetConfig re-applies construction Options to a live Bridge. WithConfig
// replaces the config wholesale; callers wanting a partial override should
// read b.Config(), mutate, and call SetConfig with the result.
func (b *Bridge) SetConfig(opts ...Option) {
	for _, opt := range opts {
		opt(b)
	}
}

// Config returns the Bridge's current engine config.
func (b *Bridge) Config() schema.Config {
	return b.config
}

// FetchContext reads a bounded neighbourhood around centerID from the
// storage collaborator.
func (b *Bridge) FetchContext(ctx context.Context, centerID string, depth int) (*Subgraph, error) {
	if b.storage == nil {
		return nil, ErrNoStorage
	}
	return b.storage.GetNeighborhood(ctx, centerID, depth)
}

// RunInference builds a schema from sg, constructs an engine using the
// Bridge's config, translates node-id evidence into variable names
// (dropping ids not present in sg), runs inference, and translates the
// result back to node ids.
func (b *Bridge) RunInference(sg *Subgraph, evidence map[string]float64, iterations int) map[string]float64 {
	s := ToSchema(sg)
	s.Config = b.config

	e := engine.New(s)

	varEvidence := make(engine.Evidence, len(evidence))
	for nodeID, v := range evidence {
		varName := nodeToVarName(nodeID)
		if _, ok := s.Variables[varName]; ok {
			varEvidence[varName] = v
		}
	}

	result := e.Run(varEvidence, iterations)

	nodeResults := make(map[string]float64, len(result))
	for varName, v := range result {
		nodeResults[varNameToNodeID(varName)] = v
	}
	return nodeResults
}

// SolveContext fetches the neighbourhood around centerID, runs inference,
// and — when writeBack is true — persists the resulting truth values
// through the storage collaborator.
func (b *Bridge) SolveContext(ctx context.Context, centerID string, depth int, evidence map[string]float64, writeBack bool) (map[string]float64, error) {
	sg, err := b.FetchContext(ctx, centerID, depth)
	if err != nil {
		return nil, err
	}

	results := b.RunInference(sg, evidence, 0)

	if writeBack {
		if b.storage == nil {
			return results, ErrNoStorage
		}
		if err := b.storage.BulkUpdateNodes(ctx, results); err != nil {
			return results, fmt.Errorf("graph: write-back failed: %w", err)
		}
	}

	return results, nil
}

// QueryNode runs inference over sg and returns nodeID's resulting truth
// value, or 0.5 if the node is absent from the result.
func (b *Bridge) QueryNode(sg *Subgraph, nodeID string, evidence map[string]float64) float64 {
	result := b.RunInference(sg, evidence, 0)
	if v, ok := result[nodeID]; ok {
		return v
	}
	return 0.5
}
