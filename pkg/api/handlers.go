package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/azybler/evepath/pkg/cost"
	"github.com/azybler/evepath/pkg/ids"
	"github.com/azybler/evepath/pkg/routing"
	"github.com/azybler/evepath/pkg/search"
)

// HandlePath serves POST /api/path.
func (s *Server) HandlePath(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.Optimize == nil {
		writeError(w, http.StatusBadRequest, "optimize is required")
		return
	}
	mode, ok := cost.ParseMode(*req.Optimize)
	if !ok {
		writeError(w, http.StatusBadRequest, "optimize must be one of fuel, distance, hops")
		return
	}

	startID, err := ids.Pack(req.From)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	endID, err := ids.Pack(req.To)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	smartGates := make([]routing.SmartGateSpec, 0, len(req.SmartGates))
	for _, sg := range req.SmartGates {
		from, err := ids.Pack(sg.From)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		to, err := ids.Pack(sg.To)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		smartGates = append(smartGates, routing.SmartGateSpec{From: from, To: to, DistanceLY: sg.Distance, EdgeID: sg.ID})
	}

	useSmartGates := len(smartGates) > 0
	if req.UseSmartGates != nil {
		useSmartGates = *req.UseSmartGates
	}

	result, err := s.Router.CalcPath(r.Context(), startID, endID, req.JumpDistance, mode, smartGates, useSmartGates, routing.DefaultPathTimeout)
	if err != nil {
		if errors.Is(err, routing.ErrUnknownSystem) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := PathResponse{Status: statusString(result.Outcome), Stats: statsView(result)}
	if result.Outcome == search.Found {
		resp.Path = connectionViews(result.Path)
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleNear serves POST /api/near.
func (s *Server) HandleNear(w http.ResponseWriter, r *http.Request) {
	var req NearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	fromID, err := ids.Pack(req.From)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	steps, err := s.Router.Near(fromID, req.Distance)
	if err != nil {
		if errors.Is(err, routing.ErrUnknownSystem) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, NearResponse{Connections: connectionViews(steps)})
}

// HandleRoot serves GET / with an empty body, used as a liveness probe.
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func statusString(o search.Outcome) string {
	switch o {
	case search.Found:
		return "found"
	case search.Timeout:
		return "timeout"
	default:
		return "notfound"
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
