package starmap

import (
	"fmt"
	"log"
	"math"

	"github.com/azybler/evepath/pkg/ids"
	"github.com/azybler/evepath/pkg/rawmap"
)

// BuildOptions configures the graph builder.
type BuildOptions struct {
	MaxJumpDistanceLY float64
	MinJumpDistanceLY float64
}

// Build constructs a fully connected Graph from decoded raw topology: one
// Gate edge pair per NPC jump, one Jump edge for every ordered system pair
// whose distance falls strictly between MinJumpDistanceLY and
// MaxJumpDistanceLY, and a (Kind, DistanceLY)-sorted adjacency list per
// system. Coordinates are held in contiguous slices and the O(N^2) jump
// enumeration iterates them directly, without per-pair allocation.
func Build(raw *rawmap.Map, opts BuildOptions) (*Graph, error) {
	g := NewGraph()

	type coord struct {
		id      SystemID
		x, y, z float64
	}
	coords := make([]coord, 0, len(raw.SolarSystems))

	for idStr, sys := range raw.SolarSystems {
		external, err := parseUint32(idStr)
		if err != nil {
			return nil, fmt.Errorf("build: system id %q: %w", idStr, err)
		}
		id, err := ids.Pack(external)
		if err != nil {
			return nil, fmt.Errorf("build: system id %d: %w", external, err)
		}
		g.Systems[id] = &System{
			ID: id,
			X:  float64(sys.Center[0]),
			Y:  float64(sys.Center[1]),
			Z:  float64(sys.Center[2]),
		}
		coords = append(coords, coord{id, float64(sys.Center[0]), float64(sys.Center[1]), float64(sys.Center[2])})
	}

	var nextEdgeID uint32

	// NPC gates, both directions.
	for _, j := range raw.Jumps {
		fromID, err := ids.Pack(j.FromSystemID)
		if err != nil {
			return nil, fmt.Errorf("build: jump fromSystemID %d: %w", j.FromSystemID, err)
		}
		toID, err := ids.Pack(j.ToSystemID)
		if err != nil {
			return nil, fmt.Errorf("build: jump toSystemID %d: %w", j.ToSystemID, err)
		}
		from, ok := g.Systems[fromID]
		if !ok {
			return nil, fmt.Errorf("build: jump references unknown system %d", j.FromSystemID)
		}
		to, ok := g.Systems[toID]
		if !ok {
			return nil, fmt.Errorf("build: jump references unknown system %d", j.ToSystemID)
		}

		dist := distanceLY(from.X, from.Y, from.Z, to.X, to.Y, to.Z)

		nextEdgeID++
		from.Adjacency = append(from.Adjacency, Connection{EdgeID: nextEdgeID, Kind: Gate, DistanceLY: dist, Target: toID})
		nextEdgeID++
		to.Adjacency = append(to.Adjacency, Connection{EdgeID: nextEdgeID, Kind: Gate, DistanceLY: dist, Target: fromID})
	}

	// Free-space jumps: all ordered pairs within (min, max), strict.
	n := len(coords)
	logEvery := n / 20
	if logEvery == 0 {
		logEvery = 1
	}
	for i := 0; i < n; i++ {
		a := coords[i]
		from := g.Systems[a.id]
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			b := coords[j]
			dLY := euclideanMeters(a.x, a.y, a.z, b.x, b.y, b.z) / MetersPerLightYear
			if !(opts.MinJumpDistanceLY < dLY && dLY < opts.MaxJumpDistanceLY) {
				continue
			}
			nextEdgeID++
			from.Adjacency = append(from.Adjacency, Connection{EdgeID: nextEdgeID, Kind: Jump, DistanceLY: truncateLY(dLY * MetersPerLightYear), Target: b.id})
		}
		if (i+1)%logEvery == 0 || i == n-1 {
			log.Printf("starmap: build jump edges %d/%d systems processed", i+1, n)
		}
	}

	g.SortAdjacency()
	return g, nil
}

// MetersPerLightYear converts a meter distance to light-years.
const MetersPerLightYear = 9.4607e15

// distanceLY returns the truncated light-year distance between two points
// given in meters, matching the §3 "rounded toward zero" rule.
func distanceLY(x1, y1, z1, x2, y2, z2 float64) uint16 {
	return truncateLY(euclideanMeters(x1, y1, z1, x2, y2, z2))
}

func euclideanMeters(x1, y1, z1, x2, y2, z2 float64) float64 {
	dx, dy, dz := x2-x1, y2-y1, z2-z1
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func truncateLY(meters float64) uint16 {
	ly := math.Trunc(meters / MetersPerLightYear)
	if ly < 0 {
		return 0
	}
	if ly > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(ly)
}

func parseUint32(s string) (uint32, error) {
	var v uint64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a non-negative integer: %q", s)
		}
		v = v*10 + uint64(r-'0')
		if v > math.MaxUint32 {
			return 0, fmt.Errorf("value %q overflows uint32", s)
		}
	}
	if len(s) == 0 {
		return 0, fmt.Errorf("empty system id")
	}
	return uint32(v), nil
}
