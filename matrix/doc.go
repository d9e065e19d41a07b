// Package matrix exports a core.Graph as a dense adjacency matrix and runs
// Floyd-Warshall all-pairs shortest paths over it, backing
// islandmap.Map.AdjacencyMatrix and islandmap.Map.AllPairsLandDistances.
package matrix
