// Package routing turns a loaded starmap.Graph into path and proximity
// queries: a generic A* search over edges-as-nodes for CalcPath, and a
// sorted-adjacency scan for Near.
package routing

import (
	"context"
	"errors"
	"time"

	"github.com/azybler/evepath/pkg/cost"
	"github.com/azybler/evepath/pkg/gate"
	"github.com/azybler/evepath/pkg/starmap"
)

// ErrUnknownSystem is returned when a query names a system absent from the
// loaded graph.
var ErrUnknownSystem = errors.New("routing: unknown system id")

// DefaultPathTimeout is used for interactive (HTTP) path queries.
const DefaultPathTimeout = 25 * time.Second

// DefaultCLITimeout is used for CLI path queries, which tolerate longer
// runs than an interactive request.
const DefaultCLITimeout = 60 * time.Second

// Router answers path and proximity queries against a fixed graph,
// admitting path queries through a concurrency gate.
type Router struct {
	graph *starmap.Graph
	gate  *gate.Gate
}

// New creates a Router over g, bounding concurrent path searches with the
// given gate.
func New(g *starmap.Graph, g2 *gate.Gate) *Router {
	return &Router{graph: g, gate: g2}
}

// CalcPath acquires a permit, runs the search, and releases the permit
// regardless of outcome.
func (r *Router) CalcPath(
	ctx context.Context,
	startID, endID starmap.SystemID,
	jumpBudgetLY uint16,
	mode cost.Mode,
	smartGates []SmartGateSpec,
	useSmartGates bool,
	timeout time.Duration,
) (PathResult, error) {
	if err := r.gate.Acquire(ctx); err != nil {
		return PathResult{}, err
	}
	defer r.gate.Release()

	return CalcPath(r.graph, startID, endID, jumpBudgetLY, mode, smartGates, useSmartGates, timeout)
}

// Near is not rate-limited: it is a bounded adjacency scan, not a search.
func (r *Router) Near(id starmap.SystemID, radiusLY uint16) ([]PathStep, error) {
	return Near(r.graph, id, radiusLY)
}
