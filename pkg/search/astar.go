// Package search implements a generic best-first A* search, parameterized
// over an arbitrary node and cost type, following the insertion-ordered
// parent table and stale-entry discarding rules of a classic textbook A*
// with re-opening on improved cost.
package search

import (
	"time"
)

// Node is the constraint on the search's node type: comparable so it can
// key the parent table.
type Node comparable

// Cost is the constraint on the search's cost type: non-negative, totally
// ordered, zero-initializable, and additive with +.
type Cost interface {
	~uint32 | ~uint64
}

// Outcome tags a terminal search result.
type Outcome int

const (
	Found Outcome = iota
	NotFound
	Timeout
)

// Stats are advisory counters collected during a run.
type Stats struct {
	TotalTime       time.Duration
	SuccessorsSpend time.Duration
	LoopSpend       time.Duration
	Visited         int
}

// Result is the terminal outcome of a search.
type Result[N Node] struct {
	Outcome Outcome
	Path    []N
	Cost    uint64
	Stats   Stats
}

// Successor is one outgoing edge from a node: the node it leads to and the
// cost of taking it.
type Successor[N Node, C Cost] struct {
	Node N
	Step C
}

// entry is a parent-table record: which index produced this node and the
// best g known for it so far.
type entry[C Cost] struct {
	parent int
	g      C
}

const sentinel = -1

// heapItem is one pending open-set entry: f = g + h for priority, g for
// tie-breaking (larger g first), and the insertion index identifying the
// node.
type heapItem[C Cost] struct {
	f, g  C
	index int
}

// openHeap is a concrete, array-backed min-heap on f, breaking ties toward
// larger g — deeper-g candidates are tried first among equal f, matching
// the reference tie-break rule. push/pop sift by hand rather than going
// through container/heap, so heapItem values are stored and compared
// directly instead of through an any-boxed heap.Interface. There is no
// decrease-key: an improved path pushes a fresh, lower-keyed entry for the
// same index, and the older entry is discarded as stale when it is popped.
type openHeap[C Cost] struct {
	items []heapItem[C]
}

func (h *openHeap[C]) Len() int { return len(h.items) }

func less[C Cost](a, b heapItem[C]) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.g > b.g
}

func (h *openHeap[C]) push(item heapItem[C]) {
	h.items = append(h.items, item)
	i := len(h.items) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !less(h.items[i], h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *openHeap[C]) pop() heapItem[C] {
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]

	i := 0
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < len(h.items) && less(h.items[left], h.items[smallest]) {
			smallest = left
		}
		if right < len(h.items) && less(h.items[right], h.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
	return top
}

// Params bundles the callbacks a search run needs. SuccessorsFn enumerates
// the outgoing edges of a node; HeuristicFn estimates the remaining cost
// from a node to the goal; GoalFn reports whether a node is a goal.
type Params[N Node, C Cost] struct {
	Start       N
	SuccessorsFn func(N) []Successor[N, C]
	HeuristicFn  func(N) C
	GoalFn       func(N) bool
	Timeout      time.Duration
}

// Run executes A* from p.Start until the goal predicate holds, the open
// set empties, or the timeout elapses.
func Run[N Node, C Cost](p Params[N, C]) Result[N] {
	start := time.Now()
	deadline := start.Add(p.Timeout)

	nodes := []N{p.Start}
	index := map[N]int{p.Start: 0}
	parents := []entry[C]{{parent: sentinel, g: 0}}

	open := &openHeap[C]{}
	open.push(heapItem[C]{f: p.HeuristicFn(p.Start), g: 0, index: 0})

	var stats Stats

	for open.Len() > 0 {
		if p.Timeout > 0 && time.Now().After(deadline) {
			stats.TotalTime = time.Since(start)
			return Result[N]{Outcome: Timeout, Stats: stats}
		}

		loopStart := time.Now()
		top := open.pop()
		stats.Visited++

		node := nodes[top.index]
		if top.g > parents[top.index].g {
			// Stale: a better path to this index was already found.
			stats.LoopSpend += time.Since(loopStart)
			continue
		}

		if p.GoalFn(node) {
			path := reconstructPath(nodes, parents, top.index)
			stats.TotalTime = time.Since(start)
			return Result[N]{Outcome: Found, Path: path, Cost: uint64(top.g), Stats: stats}
		}

		succStart := time.Now()
		successors := p.SuccessorsFn(node)
		stats.SuccessorsSpend += time.Since(succStart)

		for _, succ := range successors {
			newG := top.g + succ.Step
			if idx, ok := index[succ.Node]; ok {
				if newG < parents[idx].g {
					parents[idx] = entry[C]{parent: top.index, g: newG}
					h := p.HeuristicFn(succ.Node)
					open.push(heapItem[C]{f: newG + h, g: newG, index: idx})
				}
				continue
			}
			idx := len(nodes)
			nodes = append(nodes, succ.Node)
			index[succ.Node] = idx
			parents = append(parents, entry[C]{parent: top.index, g: newG})
			h := p.HeuristicFn(succ.Node)
			open.push(heapItem[C]{f: newG + h, g: newG, index: idx})
		}
		stats.LoopSpend += time.Since(loopStart)
	}

	stats.TotalTime = time.Since(start)
	return Result[N]{Outcome: NotFound, Stats: stats}
}

func reconstructPath[N Node, C Cost](nodes []N, parents []entry[C], index int) []N {
	var reversed []N
	for index != sentinel {
		reversed = append(reversed, nodes[index])
		index = parents[index].parent
	}
	path := make([]N, len(reversed))
	for i, n := range reversed {
		path[len(reversed)-1-i] = n
	}
	return path
}
