// Package core defines the Graph, Vertex, and Edge primitives shared by every
// downstream analytics package (bfs, dfs, dijkstra, gridgraph, prim_kruskal,
// flow, matrix, tsp). It is the conversion target for islandmap.Map.LandGraph
// and the other Map accessors that export the generated mesh to a generic
// graph shape.
//
// Graph is a thread-safe adjacency-list graph. A single RWMutex guards the
// vertex catalog, edge catalog, and adjacency index together, since every
// topology-changing operation (AddEdge, RemoveVertex, ...) touches more than
// one of them atomically anyway. Configuration (directedness default,
// weighted, loop/multi/mixed policy) is fixed at construction time via
// functional options and never changes afterward.
package core
