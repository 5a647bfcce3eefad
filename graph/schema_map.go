package graph

import (
	"fmt"

	"github.com/lukasiewicz/neurosym/schema"
)

// ExtractContext assembles a Subgraph from in-memory nodes and edges
// around centerID, with no storage access.
func ExtractContext(nodes []*Node, edges []*Edge, centerID string) *Subgraph {
	sg := &Subgraph{
		Nodes:     make(map[string]*Node, len(nodes)),
		Edges:     make(map[string]*Edge, len(edges)),
		CenterID:  centerID,
		NodeOrder: make([]string, 0, len(nodes)),
		EdgeOrder: make([]string, 0, len(edges)),
	}
	for _, n := range nodes {
		if _, exists := sg.Nodes[n.ID]; !exists {
			sg.NodeOrder = append(sg.NodeOrder, n.ID)
		}
		sg.Nodes[n.ID] = n
	}
	for _, e := range edges {
		if _, exists := sg.Edges[e.ID]; !exists {
			sg.EdgeOrder = append(sg.EdgeOrder, e.ID)
		}
		sg.Edges[e.ID] = e
	}
	return sg
}

// ToSchema maps a Subgraph onto a schema.Schema: every node becomes a
// variable named by nodeToVarName; every logic-carrying edge whose
// endpoints are both present becomes a rule or constraint per its Kind.
// Edges with no Logic, or whose source/target is missing from sg, are
// ignored — the data-tolerance policy that lets a bridge operate over a
// partially loaded neighbourhood.
func ToSchema(sg *Subgraph) *schema.Schema {
	s := schema.New()
	s.Name = fmt.Sprintf("context_%s", shortID(sg.CenterID))

	for _, id := range sg.NodeOrder {
		n, ok := sg.Nodes[id]
		if !ok {
			continue
		}
		s.AddVariable(nodeToVarName(n.ID), schema.Variable{
			Type:   schema.KindBool,
			Prior:  n.Prior,
			Locked: n.IsLocked,
		})
	}

	ruleCounter, constraintCounter := 0, 0
	for _, id := range sg.EdgeOrder {
		e, ok := sg.Edges[id]
		if !ok || e.Logic == nil {
			continue
		}
		source, sok := sg.Nodes[e.SourceID]
		target, tok := sg.Nodes[e.TargetID]
		if !sok || !tok {
			continue
		}
		sourceVar := nodeToVarName(source.ID)
		targetVar := nodeToVarName(target.ID)

		switch e.Kind {
		case Implies:
			ruleCounter++
			s.AddRule(schema.Rule{
				ID:        fmt.Sprintf("rule_%d_%s", ruleCounter, shortID(e.ID)),
				Type:      schema.Implication,
				Inputs:    []string{sourceVar},
				Output:    targetVar,
				Op:        e.Logic.Op,
				Weight:    e.Logic.Weight,
				Learnable: e.Logic.Learnable,
			})
		case Attacks:
			constraintCounter++
			s.AddConstraint(schema.Constraint{
				ID:     fmt.Sprintf("attack_%d_%s", constraintCounter, shortID(e.ID)),
				Kind:   schema.Attack,
				Source: sourceVar,
				Target: targetVar,
				Weight: e.Logic.Weight,
			})
		case Supports:
			constraintCounter++
			s.AddConstraint(schema.Constraint{
				ID:     fmt.Sprintf("support_%d_%s", constraintCounter, shortID(e.ID)),
				Kind:   schema.Support,
				Source: sourceVar,
				Target: targetVar,
				Weight: e.Logic.Weight,
			})
		case Depends:
			ruleCounter++
			s.AddRule(schema.Rule{
				ID:        fmt.Sprintf("depends_%d_%s", ruleCounter, shortID(e.ID)),
				Type:      schema.Implication,
				Inputs:    []string{sourceVar},
				Output:    targetVar,
				Op:        e.Logic.Op,
				Weight:    e.Logic.Weight * 0.5,
				Learnable: e.Logic.Learnable,
			})
		case Mutex:
			constraintCounter++
			s.AddConstraint(schema.Constraint{
				ID:      fmt.Sprintf("mutex_%d_%s", constraintCounter, shortID(e.ID)),
				Kind:    schema.Mutex,
				Source:  sourceVar,
				Targets: []string{targetVar},
				Weight:  e.Logic.Weight,
			})
		}
	}

	return s
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
