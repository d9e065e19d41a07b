// Package tsp approximates the Traveling Salesman Problem over a dense
// distance matrix: a nearest-neighbor construction followed by 2-opt local
// search. Map.CoastalPatrolRoute uses it to build a short closed tour
// visiting every coastal Center.
package tsp

import (
	"errors"
	"math"
)

// ErrNonSquare indicates the distance matrix is not square.
var ErrNonSquare = errors.New("tsp: matrix is not square")

// ErrTooSmall indicates fewer than 2 vertices were given; no tour exists.
var ErrTooSmall = errors.New("tsp: need at least 2 vertices")

// ErrNegativeWeight indicates a negative distance was encountered.
var ErrNegativeWeight = errors.New("tsp: negative distance encountered")

func validate(dist [][]float64) error {
	n := len(dist)
	if n < 2 {
		return ErrTooSmall
	}
	for _, row := range dist {
		if len(row) != n {
			return ErrNonSquare
		}
		for _, d := range row {
			if d < 0 {
				return ErrNegativeWeight
			}
		}
	}

	return nil
}

// Solve builds a nearest-neighbor tour starting at vertex 0 and refines it
// with first-improvement 2-opt until no swap reduces length. Returns the
// tour as a permutation of [0..n) (implicitly closed back to tour[0]) and
// its total cost.
func Solve(dist [][]float64) (tour []int, cost float64, err error) {
	if err := validate(dist); err != nil {
		return nil, 0, err
	}

	tour = nearestNeighborTour(dist)
	tour = twoOpt(dist, tour)

	return tour, tourLength(dist, tour), nil
}

func nearestNeighborTour(dist [][]float64) []int {
	n := len(dist)
	visited := make([]bool, n)
	tour := make([]int, 0, n)

	cur := 0
	visited[0] = true
	tour = append(tour, cur)

	for len(tour) < n {
		best := -1
		bestDist := math.Inf(1)
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if dist[cur][j] < bestDist {
				bestDist = dist[cur][j]
				best = j
			}
		}
		visited[best] = true
		tour = append(tour, best)
		cur = best
	}

	return tour
}

func tourLength(dist [][]float64, tour []int) float64 {
	total := 0.0
	n := len(tour)
	for i := 0; i < n; i++ {
		total += dist[tour[i]][tour[(i+1)%n]]
	}

	return total
}

// twoOpt repeatedly reverses segments that shorten the tour until a full
// pass finds no improvement.
func twoOpt(dist [][]float64, tour []int) []int {
	n := len(tour)
	improved := true

	for improved {
		improved = false
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				a, b := tour[i], tour[(i+1)%n]
				c, d := tour[j], tour[(j+1)%n]
				if a == c || b == d {
					continue
				}

				delta := (dist[a][c] + dist[b][d]) - (dist[a][b] + dist[c][d])
				if delta < -1e-9 {
					reverseSegment(tour, i+1, j)
					improved = true
				}
			}
		}
	}

	return tour
}

func reverseSegment(tour []int, i, j int) {
	for i < j {
		tour[i], tour[j] = tour[j], tour[i]
		i++
		j--
	}
}
