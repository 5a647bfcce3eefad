// Package store provides Memory, an in-memory, mutex-protected
// implementation of graph.Storage — a stand-in for the real, out-of-scope
// persistent graph database the bridge package is written against.
//
// Memory keeps separate RWMutex guards for the node table and the
// edge/adjacency tables, and answers GetNeighborhood with a plain BFS
// walk (queue, visited set, depth tracking) bounded by the requested hop
// count.
package store
