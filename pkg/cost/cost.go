// Package cost implements the per-mode edge cost and heuristic table the
// search engine consults while expanding successors.
package cost

import (
	"math"

	"github.com/azybler/evepath/pkg/starmap"
)

// Mode selects which quantity the engine optimizes for.
type Mode int

const (
	Distance Mode = iota
	Fuel
	Hops
)

// ParseMode maps the external "fuel"|"distance"|"hops" strings onto a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "distance":
		return Distance, true
	case "fuel":
		return Fuel, true
	case "hops":
		return Hops, true
	default:
		return 0, false
	}
}

func (m Mode) String() string {
	switch m {
	case Distance:
		return "distance"
	case Fuel:
		return "fuel"
	case Hops:
		return "hops"
	default:
		return "unknown"
	}
}

// EdgeCost returns g(c), the step cost of traversing connection c under m.
//
// Fuel mode charges SmartGate 2 against Gate's 1, so the two never tie and
// an NPC gate is preferred over an otherwise equal smart gate.
func EdgeCost(m Mode, c starmap.Connection) uint32 {
	switch m {
	case Distance:
		return uint32(c.DistanceLY)
	case Fuel:
		switch c.Kind {
		case starmap.Gate:
			return 1
		case starmap.SmartGate:
			return 2
		default:
			return uint32(c.DistanceLY)
		}
	case Hops:
		return 100
	default:
		return uint32(c.DistanceLY)
	}
}

// Heuristic returns h(c): an admissible estimate of the remaining cost to
// reach end once positioned on c.Target.
func Heuristic(m Mode, c starmap.Connection, target starmap.System, end starmap.System) uint32 {
	switch m {
	case Distance:
		return euclideanLY(target, end)
	case Fuel:
		if c.Kind != starmap.Jump {
			return 0
		}
		return euclideanLY(target, end)
	case Hops:
		return 0
	default:
		return 0
	}
}

func euclideanLY(a, b starmap.System) uint32 {
	dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	meters := math.Sqrt(dx*dx + dy*dy + dz*dz)
	ly := math.Floor(meters / starmap.MetersPerLightYear)
	if ly < 0 {
		return 0
	}
	return uint32(ly)
}
