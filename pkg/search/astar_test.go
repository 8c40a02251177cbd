package search

import (
	"testing"
	"time"
)

// An unbounded line graph 0-1-2-3-... with uniform edge cost 1, used to
// exercise the engine without depending on the starmap package.
func lineSuccessors(n int) []Successor[int, uint32] {
	var out []Successor[int, uint32]
	if n > 0 {
		out = append(out, Successor[int, uint32]{Node: n - 1, Step: 1})
	}
	out = append(out, Successor[int, uint32]{Node: n + 1, Step: 1})
	return out
}

func TestRunFindsShortestPath(t *testing.T) {
	result := Run(Params[int, uint32]{
		Start:        0,
		SuccessorsFn: lineSuccessors,
		HeuristicFn:  func(n int) uint32 { return uint32(abs(4 - n)) },
		GoalFn:       func(n int) bool { return n == 4 },
		Timeout:      time.Second,
	})
	if result.Outcome != Found {
		t.Fatalf("Outcome = %v, want Found", result.Outcome)
	}
	if result.Cost != 4 {
		t.Errorf("Cost = %d, want 4", result.Cost)
	}
	want := []int{0, 1, 2, 3, 4}
	if len(result.Path) != len(want) {
		t.Fatalf("Path = %v, want %v", result.Path, want)
	}
	for i := range want {
		if result.Path[i] != want[i] {
			t.Errorf("Path[%d] = %d, want %d", i, result.Path[i], want[i])
		}
	}
}

func TestRunNotFoundOnDeadEnd(t *testing.T) {
	result := Run(Params[int, uint32]{
		Start:        0,
		SuccessorsFn: func(n int) []Successor[int, uint32] { return nil },
		HeuristicFn:  func(n int) uint32 { return 0 },
		GoalFn:       func(n int) bool { return n == 99 },
		Timeout:      time.Second,
	})
	if result.Outcome != NotFound {
		t.Fatalf("Outcome = %v, want NotFound", result.Outcome)
	}
}

func TestRunTimeout(t *testing.T) {
	result := Run(Params[int, uint32]{
		Start:        0,
		SuccessorsFn: lineSuccessors,
		HeuristicFn:  func(n int) uint32 { return 0 },
		GoalFn:       func(n int) bool { return false },
		Timeout:      time.Nanosecond,
	})
	if result.Outcome != Timeout {
		t.Fatalf("Outcome = %v, want Timeout", result.Outcome)
	}
}

func TestRunReopensOnImprovedPath(t *testing.T) {
	// Diamond: 0 -> 1 (cost 5) -> 3, and 0 -> 2 (cost 1) -> 1 (cost 1) -> 3.
	// The cheaper route to 1 arrives after 1 is already in the open set.
	succ := func(n int) []Successor[int, uint32] {
		switch n {
		case 0:
			return []Successor[int, uint32]{{Node: 1, Step: 5}, {Node: 2, Step: 1}}
		case 2:
			return []Successor[int, uint32]{{Node: 1, Step: 1}}
		case 1:
			return []Successor[int, uint32]{{Node: 3, Step: 1}}
		}
		return nil
	}
	result := Run(Params[int, uint32]{
		Start:        0,
		SuccessorsFn: succ,
		HeuristicFn:  func(n int) uint32 { return 0 },
		GoalFn:       func(n int) bool { return n == 3 },
		Timeout:      time.Second,
	})
	if result.Outcome != Found {
		t.Fatalf("Outcome = %v, want Found", result.Outcome)
	}
	if result.Cost != 3 {
		t.Errorf("Cost = %d, want 3 (via the cheaper 0->2->1->3 route)", result.Cost)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
