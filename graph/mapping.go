package graph

import "strings"

// nodeVarPrefix is the fixed prefix every node-derived variable name
// carries, making the mapping injective and its inverse total on names it
// produced.
const nodeVarPrefix = "node_"

// nodeToVarName derives a variable name deterministically from a node id.
func nodeToVarName(nodeID string) string {
	return nodeVarPrefix + nodeID
}

// varNameToNodeID inverts nodeToVarName. Names not produced by the
// forward map (no "node_" prefix) are returned unchanged, so callers can
// pass through already-bare ids without special-casing them.
func varNameToNodeID(varName string) string {
	if strings.HasPrefix(varName, nodeVarPrefix) {
		return strings.TrimPrefix(varName, nodeVarPrefix)
	}
	return varName
}
