// Package starmap holds the graph data model, the build pipeline that turns
// raw topology into an adjacency-sorted graph, its binary persistence
// format, and a connectivity diagnostic.
package starmap

import (
	"sort"

	"github.com/azybler/evepath/pkg/ids"
)

// SystemID is the internal 16-bit key for a solar system. Alias of ids.SystemID
// so callers of this package don't need to import pkg/ids directly.
type SystemID = ids.SystemID

// ConnKind is the kind of a Connection. The zero value is Gate.
type ConnKind uint8

// Total order Gate < SmartGate < Jump, enforced by adjacency sort.
const (
	Gate ConnKind = iota
	SmartGate
	Jump
)

func (k ConnKind) String() string {
	switch k {
	case Gate:
		return "gate"
	case SmartGate:
		return "smartgate"
	case Jump:
		return "jump"
	default:
		return "unknown"
	}
}

// Connection is a directed edge leaving some System. Ordering is
// lexicographic by (Kind, DistanceLY). Equality (and map keying) is Go
// struct equality over all four fields, not EdgeID alone: two Connections
// that share an EdgeID but differ in another field are distinct values.
type Connection struct {
	EdgeID     uint32
	Kind       ConnKind
	DistanceLY uint16
	Target     SystemID
}

// Less reports whether c sorts before other under the adjacency invariant:
// ascending by (Kind, DistanceLY).
func (c Connection) Less(other Connection) bool {
	if c.Kind != other.Kind {
		return c.Kind < other.Kind
	}
	return c.DistanceLY < other.DistanceLY
}

// System is a single solar system: an absolute position in meters and an
// adjacency list sorted ascending by (Kind, DistanceLY).
type System struct {
	ID        SystemID
	X, Y, Z   float64
	Adjacency []Connection
}

// Graph is an immutable mapping from SystemID to System, built once and
// shared read-only across concurrent queries.
type Graph struct {
	Systems map[SystemID]*System
}

// NewGraph creates an empty Graph ready for population by the builder.
func NewGraph() *Graph {
	return &Graph{Systems: make(map[SystemID]*System)}
}

// Lookup returns the System for id, or nil if it is not present.
func (g *Graph) Lookup(id SystemID) (*System, bool) {
	s, ok := g.Systems[id]
	return s, ok
}

// SortAdjacency sorts every system's adjacency list ascending by
// (Kind, DistanceLY), the invariant the search engine's early-termination
// optimizations depend on. Safe to call multiple times; sort.SliceStable
// keeps relative order of edges already compared equal.
func (g *Graph) SortAdjacency() {
	for _, s := range g.Systems {
		adj := s.Adjacency
		sort.SliceStable(adj, func(i, j int) bool {
			return adj[i].Less(adj[j])
		})
	}
}
