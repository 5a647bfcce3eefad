package store

import (
	"context"
	"sort"

	"github.com/lukasiewicz/neurosym/graph"
)

// nhQueueItem pairs a node ID with its BFS depth.
type nhQueueItem struct {
	id    string
	depth int
}

// GetNeighborhood implements graph.Storage: a breadth-first walk from
// centerID up to depth hops (depth==0 returns the centre alone),
// collecting every visited node, plus every edge incident to a node
// fewer than depth hops from the centre together with both its stored
// endpoints. Edges reachable only from nodes exactly depth hops away are
// not included. Incident edges are visited in sorted-id order so the
// subgraph's NodeOrder/EdgeOrder — and therefore the fixed point any
// downstream inference selects — is a deterministic function of the
// stored ids.
func (m *Memory) GetNeighborhood(ctx context.Context, centerID string, depth int) (*graph.Subgraph, error) {
	m.muNodes.RLock()
	_, ok := m.nodes[centerID]
	m.muNodes.RUnlock()
	if !ok {
		return nil, ErrNodeNotFound
	}

	sg := &graph.Subgraph{
		Nodes:    make(map[string]*graph.Node),
		Edges:    make(map[string]*graph.Edge),
		CenterID: centerID,
	}

	visited := map[string]bool{centerID: true}
	queue := []nhQueueItem{{id: centerID, depth: 0}}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		m.muNodes.RLock()
		node, ok := m.nodes[item.id]
		m.muNodes.RUnlock()
		if !ok {
			continue
		}
		if _, already := sg.Nodes[item.id]; !already {
			sg.Nodes[item.id] = node
			sg.NodeOrder = append(sg.NodeOrder, item.id)
		}

		if item.depth >= depth {
			continue
		}

		m.muEdges.RLock()
		incident := m.adjacency[item.id]
		edgeIDs := make([]string, 0, len(incident))
		for eid := range incident {
			edgeIDs = append(edgeIDs, eid)
		}
		sort.Strings(edgeIDs)
		edgesByID := make(map[string]*graph.Edge, len(edgeIDs))
		for _, eid := range edgeIDs {
			edgesByID[eid] = m.edges[eid]
		}
		m.muEdges.RUnlock()

		for _, eid := range edgeIDs {
			e := edgesByID[eid]
			if _, already := sg.Edges[eid]; !already {
				sg.Edges[eid] = e
				sg.EdgeOrder = append(sg.EdgeOrder, eid)
			}

			other := e.TargetID
			if other == item.id {
				other = e.SourceID
			}
			if !visited[other] {
				visited[other] = true
				queue = append(queue, nhQueueItem{id: other, depth: item.depth + 1})
			}
		}
	}

	return sg, nil
}
