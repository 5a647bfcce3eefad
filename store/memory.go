package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/lukasiewicz/neurosym/graph"
)

// ErrNodeNotFound indicates an operation referenced a non-existent node.
var ErrNodeNotFound = errors.New("store: node not found")

// Memory is a concrete, mutex-protected in-memory graph.Storage. muNodes
// guards the node table; muEdges guards the edge table and adjacency
// index, so node and edge operations lock independently.
type Memory struct {
	muNodes sync.RWMutex
	nodes   map[string]*graph.Node

	muEdges   sync.RWMutex
	edges     map[string]*graph.Edge
	adjacency map[string]map[string]struct{} // nodeID -> set of incident edge IDs
}

// NewMemory constructs an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		nodes:     make(map[string]*graph.Node),
		edges:     make(map[string]*graph.Edge),
		adjacency: make(map[string]map[string]struct{}),
	}
}

// AddNode inserts or replaces n. If n.ID is empty, a new id is minted via
// uuid.NewString and returned.
func (m *Memory) AddNode(n *graph.Node) string {
	m.muNodes.Lock()
	defer m.muNodes.Unlock()

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	m.nodes[n.ID] = n
	return n.ID
}

// AddEdge inserts or replaces e, indexing it under both endpoints. If
// e.ID is empty, a new id is minted via uuid.NewString and returned.
func (m *Memory) AddEdge(e *graph.Edge) string {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	m.muEdges.Lock()
	defer m.muEdges.Unlock()

	m.edges[e.ID] = e
	ensureAdjacency(m.adjacency, e.SourceID)
	ensureAdjacency(m.adjacency, e.TargetID)
	m.adjacency[e.SourceID][e.ID] = struct{}{}
	m.adjacency[e.TargetID][e.ID] = struct{}{}
	return e.ID
}

func ensureAdjacency(adj map[string]map[string]struct{}, nodeID string) {
	if adj[nodeID] == nil {
		adj[nodeID] = make(map[string]struct{})
	}
}

// GetNode implements graph.Storage.
func (m *Memory) GetNode(_ context.Context, id string) (*graph.Node, bool, error) {
	m.muNodes.RLock()
	defer m.muNodes.RUnlock()

	n, ok := m.nodes[id]
	return n, ok, nil
}

// BulkUpdateNodes implements graph.Storage: each update overwrites the
// named node's Prior with its resulting truth value. Unknown ids are
// silently ignored, per the data-tolerance policy this store shares with
// the engine and bridge.
func (m *Memory) BulkUpdateNodes(_ context.Context, updates map[string]float64) error {
	m.muNodes.Lock()
	defer m.muNodes.Unlock()

	for id, v := range updates {
		if n, ok := m.nodes[id]; ok {
			n.Prior = v
		}
	}
	return nil
}
