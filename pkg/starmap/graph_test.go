package starmap

import "testing"

func TestConnectionLessOrdersByKindThenDistance(t *testing.T) {
	gate := Connection{Kind: Gate, DistanceLY: 50}
	smart := Connection{Kind: SmartGate, DistanceLY: 1}
	jump := Connection{Kind: Jump, DistanceLY: 1}

	if !gate.Less(smart) {
		t.Error("Gate should sort before SmartGate regardless of distance")
	}
	if !smart.Less(jump) {
		t.Error("SmartGate should sort before Jump regardless of distance")
	}

	nearGate := Connection{Kind: Gate, DistanceLY: 1}
	if !nearGate.Less(gate) {
		t.Error("within the same kind, smaller distance should sort first")
	}
}

func TestSortAdjacencyEstablishesInvariant(t *testing.T) {
	g := NewGraph()
	g.Systems[1] = &System{
		ID: 1,
		Adjacency: []Connection{
			{Kind: Jump, DistanceLY: 5, Target: 2},
			{Kind: Gate, DistanceLY: 10, Target: 3},
			{Kind: Gate, DistanceLY: 2, Target: 4},
			{Kind: SmartGate, DistanceLY: 1, Target: 5},
		},
	}
	g.SortAdjacency()

	adj := g.Systems[1].Adjacency
	for i := 1; i < len(adj); i++ {
		if adj[i].Less(adj[i-1]) {
			t.Fatalf("adjacency not sorted at index %d: %+v", i, adj)
		}
	}
	if adj[0].Kind != Gate || adj[0].DistanceLY != 2 {
		t.Errorf("first entry = %+v, want Gate/2", adj[0])
	}
}

func TestLookupMissingSystem(t *testing.T) {
	g := NewGraph()
	if _, ok := g.Lookup(42); ok {
		t.Error("Lookup on empty graph should report not found")
	}
}
