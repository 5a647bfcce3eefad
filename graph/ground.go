package graph

// GroundAbstractRules scans sg's nodes for ones whose Tags or
// PrototypeIDs contain an AbstractRule's SourceTag, and for each match
// synthesises a derived target variable id (<node_id>_<TargetTag>) and a
// matching Edge of the rule's Kind and Weight. It returns a new Subgraph
// with the original nodes/edges plus the grounded edges appended, and a
// synthetic Node (prior 0.5) for every target id not already present; sg
// itself is left untouched. This is an intentionally minimal grounding —
// richer first-order unification is out of scope.
func GroundAbstractRules(sg *Subgraph, rules []AbstractRule) *Subgraph {
	out := &Subgraph{
		Nodes:     make(map[string]*Node, len(sg.Nodes)),
		Edges:     make(map[string]*Edge, len(sg.Edges)),
		CenterID:  sg.CenterID,
		NodeOrder: append([]string(nil), sg.NodeOrder...),
		EdgeOrder: append([]string(nil), sg.EdgeOrder...),
	}
	for id, n := range sg.Nodes {
		out.Nodes[id] = n
	}
	for id, e := range sg.Edges {
		out.Edges[id] = e
	}

	for _, rule := range rules {
		if rule.SourceTag == "" || rule.TargetTag == "" {
			continue
		}
		for _, nodeID := range sg.NodeOrder {
			node, ok := sg.Nodes[nodeID]
			if !ok || !hasTag(node, rule.SourceTag) {
				continue
			}
			targetVarID := nodeID + "_" + rule.TargetTag
			if _, exists := out.Nodes[targetVarID]; !exists {
				out.Nodes[targetVarID] = &Node{ID: targetVarID, Prior: 0.5}
				out.NodeOrder = append(out.NodeOrder, targetVarID)
			}
			edgeID := "ground_" + shortID(nodeID) + "_" + rule.TargetTag
			out.Edges[edgeID] = &Edge{
				ID:       edgeID,
				SourceID: nodeID,
				TargetID: targetVarID,
				Kind:     rule.Kind,
				Logic:    &LogicMeta{Op: "IDENTITY", Weight: rule.Weight, Learnable: true},
			}
			out.EdgeOrder = append(out.EdgeOrder, edgeID)
		}
	}

	return out
}

func hasTag(n *Node, tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	for _, t := range n.PrototypeIDs {
		if t == tag {
			return true
		}
	}
	return false
}
