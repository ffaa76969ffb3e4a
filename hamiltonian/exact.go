// Package hamiltonian - Held–Karp exact solver (DP O(n²·2ⁿ)).
//
// heldKarp computes an optimal Hamiltonian cycle over an asymmetric
// cost matrix whose return-to-start column has been zeroed (the
// open-tour trick), which makes the optimal "cycle" an optimal path
// from node 0.
//
// Contracts:
//   - c is square, n ≥ 1; node 0 is the start (checked here:
//     ErrMatrixShape otherwise).
//   - entries ≥ InfCost mean "no edge"; all other entries are finite
//     and non-negative.
//
// Complexity:
//   - Time:  O(n²·2ⁿ).
//   - Memory: O(n·2ⁿ) for the DP and parent tables.
package hamiltonian

import (
	"math/bits"

	"gonum.org/v1/gonum/mat"
)

// heldKarp returns the optimal visit permutation over all n nodes of c,
// starting at node 0, and its total cost. The trailing return edge
// c[last][0] is included in the cost (zero under the open-tour trick).
// Returns ErrNoFeasibleTour when every completion crosses an InfCost
// edge, and ErrMatrixShape on a malformed matrix.
func heldKarp(c *mat.Dense) ([]int, float64, error) {
	if c == nil {
		return nil, 0, ErrMatrixShape
	}
	nr, nc := c.Dims()
	if nr != nc || nr == 0 {
		return nil, 0, ErrMatrixShape
	}
	n := nr

	// Degenerate board: only the start node. One-element "tour".
	if n == 1 {
		return []int{0}, 0, nil
	}

	// Prefetch weights into a flat buffer w[i*n+j]; the DP hot loops
	// index it directly instead of going through the matrix interface.
	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w[i*n+j] = c.At(i, j)
		}
	}

	// DP tables in a flat layout:
	//   dp[mask*n + j]     — min cost to visit set "mask" ending at j
	//                        (mask always contains bit 0),
	//   parent[mask*n + j] — predecessor of j on that optimal prefix.
	totalMasks := 1 << uint(n)
	dp := make([]float64, totalMasks*n)
	parent := make([]int, totalMasks*n)
	for idx := range dp {
		dp[idx] = InfCost
		parent[idx] = -1
	}
	dp[1*n+0] = 0 // base state: at node 0, only node 0 visited

	// Bucket masks by popcount so subset sizes grow monotonically.
	// Only masks containing the start bit matter.
	masksBySize := make([][]int, n+1)
	for mask := 1; mask < totalMasks; mask++ {
		if mask&1 == 0 {
			continue
		}
		masksBySize[bits.OnesCount(uint(mask))] = append(masksBySize[bits.OnesCount(uint(mask))], mask)
	}

	// Main DP: grow subset size from 2..n.
	for size := 2; size <= n; size++ {
		for _, mask := range masksBySize[size] {
			for j := 1; j < n; j++ {
				if mask&(1<<uint(j)) == 0 {
					continue
				}
				prev := mask ^ (1 << uint(j))
				best, argk := InfCost, -1
				for k := 0; k < n; k++ {
					if prev&(1<<uint(k)) == 0 {
						continue
					}
					base := dp[prev*n+k]
					if base >= InfCost {
						continue // unreachable prefix
					}
					edge := w[k*n+j]
					if edge >= InfCost {
						continue // no edge k→j
					}
					if cand := base + edge; cand < best {
						best, argk = cand, k
					}
				}
				if argk >= 0 {
					dp[mask*n+j] = best
					parent[mask*n+j] = argk
				}
			}
		}
	}

	// Close the tour back to node 0. With the open-tour trick every
	// closing edge is zero, so this effectively picks the cheapest
	// Hamiltonian path endpoint.
	all := totalMasks - 1
	bestCost, last := InfCost, -1
	for j := 1; j < n; j++ {
		base := dp[all*n+j]
		if base >= InfCost {
			continue
		}
		edge := w[j*n+0]
		if edge >= InfCost {
			continue
		}
		if total := base + edge; total < bestCost {
			bestCost, last = total, j
		}
	}
	if last < 0 || bestCost >= InfCost {
		return nil, 0, ErrNoFeasibleTour
	}

	// Reconstruct by walking parents backward from (all, last).
	perm := make([]int, n)
	mask, cur := all, last
	for idx := n - 1; idx >= 1; idx-- {
		perm[idx] = cur
		prev := parent[mask*n+cur]
		mask ^= 1 << uint(cur)
		cur = prev
	}
	perm[0] = 0

	return perm, bestCost, nil
}
