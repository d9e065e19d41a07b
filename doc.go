// Package islandmap generates a single procedural island on a flat-top hex
// grid and labels it with ocean/coast/land, elevation, moisture, rivers, and
// biomes.
//
// A Map is built once via New and Generate, then queried through Centers,
// Corners, Edges and CenterAt for downstream consumers (renderers,
// simulations, spatial queries). LandGraph exports the generated mesh as a
// core.Graph, the entry point for the bundled downstream analytics:
// distance-to-coast (bfs), river acyclicity (dfs), terrain-weighted routing
// (dijkstra), raster connected components (gridgraph), minimum spanning
// road networks (prim_kruskal), river discharge capacity (flow), all-pairs
// land distances (matrix), and a coastal patrol route (tsp).
//
// Generation is deterministic: the same Config and seed always produce the
// same mesh, the same labelling, and the same river layout.
package islandmap
