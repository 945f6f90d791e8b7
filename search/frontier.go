package search

import "github.com/katalvlaran/amphipod/burrow"

// stateItem is a frontier entry: a state, the energy spent to reach it and
// its priority g + h.
type stateItem struct {
	state burrow.State
	g     int
	f     int
}

// statePQ is a min-heap of *stateItem ordered by f, then by g descending
// so that deeper entries win ties. Stale duplicates are left in place and
// skipped on pop through the visited set.
type statePQ []*stateItem

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool {
	if pq[i].f == pq[j].f {
		return pq[i].g > pq[j].g
	}

	return pq[i].f < pq[j].f
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
