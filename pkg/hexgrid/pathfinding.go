// pkg/hexgrid/pathfinding.go
package hexgrid

import (
	"container/heap"
)

// FindPath returns the shortest walkable route from start to goal,
// inclusive of both endpoints, with every consecutive pair adjacent.
// The result is empty when either endpoint is unwalkable or when no
// walkable route connects them; unreachable goals are an expected
// outcome, not an error. start == goal yields a single-element path.
//
// Search is A* with uniform step cost 1 and the hex distance as the
// heuristic, which is admissible and consistent on a uniform-cost grid,
// so a returned path is always shortest in step count.
func (g *Grid) FindPath(start, goal Hex) []Hex {
	if !g.IsWalkable(start) || !g.IsWalkable(goal) {
		return []Hex{}
	}
	if start == goal {
		return []Hex{start}
	}

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &node{hex: start, cost: 0, parent: nil})
	costSoFar := map[Hex]int{start: 0}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*node)
		if current.hex == goal {
			return reconstructPath(current)
		}
		for _, neighbor := range current.hex.Neighbors() {
			if !g.IsWalkable(neighbor) {
				continue
			}
			newCost := costSoFar[current.hex] + 1
			if known, exists := costSoFar[neighbor]; !exists || newCost < known {
				costSoFar[neighbor] = newCost
				heap.Push(pq, &node{
					hex:    neighbor,
					cost:   newCost + neighbor.Distance(goal),
					parent: current,
				})
			}
		}
	}
	return []Hex{}
}

// HasPath reports whether a walkable route exists between the two
// coordinates.
func (g *Grid) HasPath(start, goal Hex) bool {
	return len(g.FindPath(start, goal)) > 0
}

type node struct {
	hex    Hex
	cost   int // f-score: g + heuristic
	parent *node
}

// priorityQueue orders open-set candidates by f-score. Equal scores
// fall back to lexicographic (Q, R) order so that path selection is
// deterministic across runs and platforms.
type priorityQueue []*node

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	if pq[i].hex.Q != pq[j].hex.Q {
		return pq[i].hex.Q < pq[j].hex.Q
	}
	return pq[i].hex.R < pq[j].hex.R
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(*node))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

func reconstructPath(n *node) []Hex {
	length := 0
	for cursor := n; cursor != nil; cursor = cursor.parent {
		length++
	}
	path := make([]Hex, length)
	for cursor := n; cursor != nil; cursor = cursor.parent {
		length--
		path[length] = cursor.hex
	}
	return path
}
