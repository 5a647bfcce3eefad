package graph_test

import (
	"testing"

	"github.com/lukasiewicz/neurosym/graph"
	"github.com/stretchr/testify/require"
)

func penguinSubgraph() *graph.Subgraph {
	nodes := []*graph.Node{
		{ID: "penguin", Prior: 1.0},
		{ID: "bird", Prior: 0.1},
		{ID: "fly", Prior: 0.7},
	}
	edges := []*graph.Edge{
		{ID: "e1", SourceID: "penguin", TargetID: "bird", Kind: graph.Implies,
			Logic: &graph.LogicMeta{Op: "IDENTITY", Weight: 0.95, Learnable: false}},
		{ID: "e2", SourceID: "penguin", TargetID: "fly", Kind: graph.Attacks,
			Logic: &graph.LogicMeta{Weight: 0.9}},
	}
	return graph.ExtractContext(nodes, edges, "penguin")
}

func TestToSchemaMapsNodesAndEdges(t *testing.T) {
	sg := penguinSubgraph()
	s := graph.ToSchema(sg)

	require.Len(t, s.Variables, 3)
	require.Contains(t, s.Variables, "node_penguin")
	require.Contains(t, s.Variables, "node_bird")
	require.Contains(t, s.Variables, "node_fly")

	require.Len(t, s.Rules, 1)
	require.Equal(t, []string{"node_penguin"}, s.Rules[0].Inputs)
	require.Equal(t, "node_bird", s.Rules[0].Output)

	require.Len(t, s.Constraints, 1)
	require.Equal(t, "node_penguin", s.Constraints[0].Source)
	require.Equal(t, "node_fly", s.Constraints[0].Target)
}

func TestToSchemaIgnoresEdgesWithMissingEndpoints(t *testing.T) {
	nodes := []*graph.Node{{ID: "a", Prior: 0.5}}
	edges := []*graph.Edge{
		{ID: "e1", SourceID: "a", TargetID: "ghost", Kind: graph.Implies, Logic: &graph.LogicMeta{Weight: 1}},
	}
	sg := graph.ExtractContext(nodes, edges, "a")
	s := graph.ToSchema(sg)
	require.Empty(t, s.Rules)
}

func TestToSchemaIgnoresEdgesWithNoLogicMeta(t *testing.T) {
	nodes := []*graph.Node{{ID: "a", Prior: 0.5}, {ID: "b", Prior: 0.5}}
	edges := []*graph.Edge{{ID: "e1", SourceID: "a", TargetID: "b", Kind: graph.Implies}}
	sg := graph.ExtractContext(nodes, edges, "a")
	s := graph.ToSchema(sg)
	require.Empty(t, s.Rules)
}

func TestToSchemaDependsIsHalvedImplication(t *testing.T) {
	nodes := []*graph.Node{{ID: "a", Prior: 0.5}, {ID: "b", Prior: 0.5}}
	edges := []*graph.Edge{
		{ID: "e1", SourceID: "a", TargetID: "b", Kind: graph.Depends, Logic: &graph.LogicMeta{Weight: 1.0}},
	}
	sg := graph.ExtractContext(nodes, edges, "a")
	s := graph.ToSchema(sg)
	require.Len(t, s.Rules, 1)
	require.InDelta(t, 0.5, s.Rules[0].Weight, 1e-9)
}
