package cost

import (
	"testing"

	"github.com/azybler/evepath/pkg/starmap"
)

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{"distance": Distance, "fuel": Fuel, "hops": Hops}
	for s, want := range cases {
		got, ok := ParseMode(s)
		if !ok || got != want {
			t.Errorf("ParseMode(%q) = (%v, %v), want (%v, true)", s, got, ok, want)
		}
	}
	if _, ok := ParseMode("warp"); ok {
		t.Error("ParseMode(\"warp\") should fail")
	}
}

func TestEdgeCostDistanceMode(t *testing.T) {
	c := starmap.Connection{Kind: starmap.Gate, DistanceLY: 42}
	if got := EdgeCost(Distance, c); got != 42 {
		t.Errorf("EdgeCost(Distance, gate) = %d, want 42", got)
	}
}

func TestEdgeCostFuelModeGateVsSmartGate(t *testing.T) {
	gate := starmap.Connection{Kind: starmap.Gate, DistanceLY: 99}
	smart := starmap.Connection{Kind: starmap.SmartGate, DistanceLY: 99}
	jump := starmap.Connection{Kind: starmap.Jump, DistanceLY: 7}

	if got := EdgeCost(Fuel, gate); got != 1 {
		t.Errorf("EdgeCost(Fuel, gate) = %d, want 1", got)
	}
	if got := EdgeCost(Fuel, smart); got != 2 {
		t.Errorf("EdgeCost(Fuel, smartgate) = %d, want 2", got)
	}
	if got := EdgeCost(Fuel, jump); got != 7 {
		t.Errorf("EdgeCost(Fuel, jump) = %d, want 7 (distance_ly)", got)
	}
}

func TestEdgeCostHopsModeIsUniform(t *testing.T) {
	for _, k := range []starmap.ConnKind{starmap.Gate, starmap.SmartGate, starmap.Jump} {
		c := starmap.Connection{Kind: k, DistanceLY: 123}
		if got := EdgeCost(Hops, c); got != 100 {
			t.Errorf("EdgeCost(Hops, %v) = %d, want 100", k, got)
		}
	}
}

func TestHeuristicFuelModeZeroOnNonJumpArrival(t *testing.T) {
	target := starmap.System{X: 0, Y: 0, Z: 0}
	end := starmap.System{X: 1e17, Y: 0, Z: 0}
	c := starmap.Connection{Kind: starmap.Gate}
	if got := Heuristic(Fuel, c, target, end); got != 0 {
		t.Errorf("Heuristic(Fuel, gate-arrival) = %d, want 0", got)
	}
	c.Kind = starmap.Jump
	if got := Heuristic(Fuel, c, target, end); got == 0 {
		t.Error("Heuristic(Fuel, jump-arrival) should be positive for a distant end")
	}
}

func TestHeuristicHopsModeAlwaysZero(t *testing.T) {
	target := starmap.System{X: 0, Y: 0, Z: 0}
	end := starmap.System{X: 1e20, Y: 0, Z: 0}
	if got := Heuristic(Hops, starmap.Connection{}, target, end); got != 0 {
		t.Errorf("Heuristic(Hops, ...) = %d, want 0", got)
	}
}
