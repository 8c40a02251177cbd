// Package api exposes the routing core over HTTP: JSON request/response
// bodies for the path and near services, plus the middleware stack that
// wraps them.
package api

import (
	"github.com/azybler/evepath/pkg/routing"
)

// PathRequest is the decoded body of POST /api/path.
type PathRequest struct {
	From          uint32           `json:"from"`
	To            uint32           `json:"to"`
	JumpDistance  uint16           `json:"jump_distance"`
	Optimize      *string          `json:"optimize"`
	SmartGates    []smartGateInput `json:"smart_gates"`
	UseSmartGates *bool            `json:"use_smart_gates"`
}

type smartGateInput struct {
	From     uint32 `json:"from"`
	To       uint32 `json:"to"`
	Distance uint16 `json:"distance"`
	ID       uint32 `json:"id"`
}

// ConnectionView is one path step or near-neighbor rendered for the wire.
type ConnectionView struct {
	ConnType string `json:"conn_type"`
	Distance uint16 `json:"distance"`
	Target   uint32 `json:"target"`
	ID       uint32 `json:"id"`
}

// StatsView mirrors search.Stats in wire-friendly units.
type StatsView struct {
	Cost            uint64  `json:"cost"`
	TotalTime       float64 `json:"total_time"`
	SuccessorsSpend float64 `json:"successors_spend"`
	LoopSpend       float64 `json:"loop_spend"`
	Visited         int     `json:"visited"`
}

// PathResponse is the JSON body of a path query response.
type PathResponse struct {
	Status string           `json:"status"`
	Path   []ConnectionView `json:"path"`
	Stats  StatsView        `json:"stats"`
}

func statsView(r routing.PathResult) StatsView {
	return StatsView{
		Cost:            r.Cost,
		TotalTime:       r.Stats.TotalTime.Seconds(),
		SuccessorsSpend: r.Stats.SuccessorsSpend.Seconds(),
		LoopSpend:       r.Stats.LoopSpend.Seconds(),
		Visited:         r.Stats.Visited,
	}
}

func connectionViews(steps []routing.PathStep) []ConnectionView {
	out := make([]ConnectionView, len(steps))
	for i, s := range steps {
		out[i] = ConnectionView{
			ConnType: s.Kind.String(),
			Distance: s.DistanceLY,
			Target:   s.Target,
			ID:       s.EdgeID,
		}
	}
	return out
}

// NearRequest is the decoded body of POST /api/near.
type NearRequest struct {
	From     uint32 `json:"from"`
	Distance uint16 `json:"distance"`
}

// NearResponse is the JSON body of a near query response.
type NearResponse struct {
	Connections []ConnectionView `json:"connections"`
}
