package routing

import (
	"time"

	"github.com/azybler/evepath/pkg/cost"
	"github.com/azybler/evepath/pkg/ids"
	"github.com/azybler/evepath/pkg/search"
	"github.com/azybler/evepath/pkg/starmap"
)

// syntheticEdgeID marks the initial edge the search starts from; it never
// appears in a returned path.
const syntheticEdgeID = 0

// PathStep is one Connection translated to the caller's external ID space.
type PathStep struct {
	Kind       starmap.ConnKind
	DistanceLY uint16
	Target     uint32
	EdgeID     uint32
}

// PathResult is the terminal outcome of a path query.
type PathResult struct {
	Outcome search.Outcome
	Path    []PathStep
	Cost    uint64
	Stats   search.Stats
}

// CalcPath runs A* over edges-as-nodes from startID to endID under mode,
// honoring jumpBudgetLY as a cutoff on base Jump edges and layering
// smartGates as a per-query overlay on top of the shared graph. When
// useSmartGates is false, smartGates are ignored entirely (parsed and
// validated by the caller, but never injected into the search) — useful
// for a caller that wants to compare a route with and without its smart
// gates without resending the request twice.
func CalcPath(
	g *starmap.Graph,
	startID, endID starmap.SystemID,
	jumpBudgetLY uint16,
	mode cost.Mode,
	smartGates []SmartGateSpec,
	useSmartGates bool,
	timeout time.Duration,
) (PathResult, error) {
	start, ok := g.Lookup(startID)
	if !ok {
		return PathResult{}, ErrUnknownSystem
	}
	end, ok := g.Lookup(endID)
	if !ok {
		return PathResult{}, ErrUnknownSystem
	}

	var ov overlay
	if useSmartGates {
		ov = newOverlay(smartGates)
	}

	successorsFn := func(e starmap.Connection) []search.Successor[starmap.Connection, uint32] {
		sys, ok := g.Lookup(e.Target)
		if !ok {
			return nil
		}
		var out []search.Successor[starmap.Connection, uint32]
		for _, c := range ov.at(e.Target) {
			out = append(out, search.Successor[starmap.Connection, uint32]{Node: c, Step: cost.EdgeCost(mode, c)})
		}
		for _, c := range sys.Adjacency {
			if c.Kind == starmap.Jump && c.DistanceLY > jumpBudgetLY {
				break
			}
			out = append(out, search.Successor[starmap.Connection, uint32]{Node: c, Step: cost.EdgeCost(mode, c)})
		}
		return out
	}

	heuristicFn := func(e starmap.Connection) uint32 {
		target, ok := g.Lookup(e.Target)
		if !ok {
			return 0
		}
		return cost.Heuristic(mode, e, *target, *end)
	}

	goalFn := func(e starmap.Connection) bool { return e.Target == endID }

	initial := starmap.Connection{EdgeID: syntheticEdgeID, Kind: starmap.Jump, DistanceLY: 0, Target: start.ID}

	result := search.Run(search.Params[starmap.Connection, uint32]{
		Start:        initial,
		SuccessorsFn: successorsFn,
		HeuristicFn:  heuristicFn,
		GoalFn:       goalFn,
		Timeout:      timeout,
	})

	out := PathResult{Outcome: result.Outcome, Cost: result.Cost, Stats: result.Stats}
	if result.Outcome != search.Found {
		return out, nil
	}

	for _, edge := range result.Path {
		if edge.EdgeID == syntheticEdgeID {
			continue
		}
		out.Path = append(out.Path, PathStep{
			Kind:       edge.Kind,
			DistanceLY: edge.DistanceLY,
			Target:     ids.Unpack(edge.Target),
			EdgeID:     edge.EdgeID,
		})
	}
	return out, nil
}
