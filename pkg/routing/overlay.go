package routing

import "github.com/azybler/evepath/pkg/starmap"

// SmartGateSpec is one caller-supplied smart gate: a directed connection
// the base graph doesn't know about, scoped to a single query.
type SmartGateSpec struct {
	From       starmap.SystemID
	To         starmap.SystemID
	DistanceLY uint16
	EdgeID     uint32
}

// overlay holds per-query SmartGate connections keyed by their source
// system. It is built fresh for each query and discarded afterward; the
// shared base graph is never mutated.
type overlay struct {
	bySource map[starmap.SystemID][]starmap.Connection
}

func newOverlay(specs []SmartGateSpec) overlay {
	o := overlay{bySource: make(map[starmap.SystemID][]starmap.Connection, len(specs))}
	for _, s := range specs {
		o.bySource[s.From] = append(o.bySource[s.From], starmap.Connection{
			EdgeID:     s.EdgeID,
			Kind:       starmap.SmartGate,
			DistanceLY: s.DistanceLY,
			Target:     s.To,
		})
	}
	return o
}

// at returns the overlay connections leaving id, if any.
func (o overlay) at(id starmap.SystemID) []starmap.Connection {
	return o.bySource[id]
}
