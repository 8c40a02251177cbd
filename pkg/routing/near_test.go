package routing

import (
	"testing"

	"github.com/azybler/evepath/pkg/starmap"
)

func TestNearReturnsJumpsWithinRadiusInOrder(t *testing.T) {
	g := starmap.NewGraph()
	g.Systems[1] = &starmap.System{ID: 1, Adjacency: []starmap.Connection{
		{Kind: starmap.Gate, DistanceLY: 0, Target: 9},
		{Kind: starmap.Jump, DistanceLY: 5, Target: 2, EdgeID: 10},
		{Kind: starmap.Jump, DistanceLY: 20, Target: 3, EdgeID: 11},
		{Kind: starmap.Jump, DistanceLY: 45, Target: 4, EdgeID: 12},
	}}
	g.SortAdjacency()

	out, err := Near(g, 1, 25)
	if err != nil {
		t.Fatalf("Near: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0].DistanceLY != 5 || out[1].DistanceLY != 20 {
		t.Errorf("out = %+v, want distances [5, 20] in order", out)
	}
}

func TestNearUnknownSystem(t *testing.T) {
	g := starmap.NewGraph()
	if _, err := Near(g, 1, 10); err != ErrUnknownSystem {
		t.Errorf("err = %v, want ErrUnknownSystem", err)
	}
}

func TestNearExcludesGatesAndSmartGates(t *testing.T) {
	g := starmap.NewGraph()
	g.Systems[1] = &starmap.System{ID: 1, Adjacency: []starmap.Connection{
		{Kind: starmap.Gate, DistanceLY: 1, Target: 2},
		{Kind: starmap.SmartGate, DistanceLY: 2, Target: 3},
	}}
	g.SortAdjacency()

	out, err := Near(g, 1, 1000)
	if err != nil {
		t.Fatalf("Near: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0 (no Jump edges present)", len(out))
	}
}
