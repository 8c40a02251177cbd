package routing

import (
	"github.com/azybler/evepath/pkg/ids"
	"github.com/azybler/evepath/pkg/starmap"
)

// Near enumerates Jump edges from id with distance at most radiusLY, in
// adjacency order. Because Jump edges sort last and ascending by distance,
// the scan stops at the first one exceeding the radius.
func Near(g *starmap.Graph, id starmap.SystemID, radiusLY uint16) ([]PathStep, error) {
	sys, ok := g.Lookup(id)
	if !ok {
		return nil, ErrUnknownSystem
	}

	var out []PathStep
	for _, c := range sys.Adjacency {
		if c.Kind != starmap.Jump {
			continue
		}
		if c.DistanceLY > radiusLY {
			break
		}
		out = append(out, PathStep{
			Kind:       c.Kind,
			DistanceLY: c.DistanceLY,
			Target:     ids.Unpack(c.Target),
			EdgeID:     c.EdgeID,
		})
	}
	return out, nil
}
