package fogsaa

import "container/heap"

// node is one partial-alignment state in the search frontier. Grounded
// on the donor's dijkstra nodeItem: a small value type plus a heap index
// field, pushed into a container/heap-backed priority queue ordered here
// by upper bound descending (best-first) rather than dijkstra's distance
// ascending.
type node struct {
	i, j    int     // matrix coordinates reached
	score   float64 // present_score: accumulated score to reach (i,j)
	lower   float64 // present_score + pessimistic remaining estimate
	upper   float64 // present_score + optimistic remaining estimate
	parent  *node
	fromDir moveDir // which step produced this node from parent
	runLen  int     // length of the contiguous gap run fromDir belongs to, 0 for diagonal

	index int // heap bookkeeping
}

type moveDir int

const (
	moveNone moveDir = iota
	moveDiagonal
	moveHorizontal // gap in A
	moveVertical   // gap in B
)

// frontier is a max-heap on upper bound: the most promising node (by
// optimistic bound) is always popped first, per FOGSAA's best-first
// branch-and-bound strategy (spec.md §4.2.4).
type frontier []*node

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(a, b int) bool {
	if f[a].upper != f[b].upper {
		return f[a].upper > f[b].upper
	}
	return f[a].lower > f[b].lower
}
func (f frontier) Swap(a, b int) {
	f[a], f[b] = f[b], f[a]
	f[a].index, f[b].index = a, b
}
func (f *frontier) Push(x any) {
	n := x.(*node)
	n.index = len(*f)
	*f = append(*f, n)
}
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*f = old[:n-1]
	return item
}

func newFrontier(capHint int) *frontier {
	f := make(frontier, 0, capHint)
	heap.Init(&f)
	return &f
}
