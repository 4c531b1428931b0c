package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkuchta/orbit/pkg/cache"
	"github.com/mkuchta/orbit/pkg/errors"
	"github.com/mkuchta/orbit/pkg/geom"
	"github.com/mkuchta/orbit/pkg/layout"
	"github.com/mkuchta/orbit/pkg/menu"
)

// =============================================================================
// Request / Response Types
// =============================================================================

// straightRequest mirrors layout.StraightSpec for the wire.
type straightRequest struct {
	Direction     string     `json:"direction"`
	Spacing       float64    `json:"spacing"`
	PrimarySize   float64    `json:"primary_size"`
	SatelliteSize float64    `json:"satellite_size"`
	Count         int        `json:"count"`
	Center        geom.Point `json:"center"`
}

// arcRequest mirrors layout.ArcSpec for the wire.
type arcRequest struct {
	StartAngle float64    `json:"start_angle"`
	EndAngle   float64    `json:"end_angle"`
	Radius     float64    `json:"radius"`
	Count      int        `json:"count"`
	Center     geom.Point `json:"center"`
	Winding    string     `json:"winding"`
}

// pointsResponse carries computed positions in placement order.
type pointsResponse struct {
	Points []geom.Point `json:"points"`
	Cached bool         `json:"cached"`
}

// createPlanRequest builds and persists a plan.
type createPlanRequest struct {
	Config menu.Config `json:"config"`
	Items  []menu.Item `json:"items"`
}

// =============================================================================
// Layout Handlers
// =============================================================================

func (s *Server) handleStraight(w http.ResponseWriter, r *http.Request) {
	var req straightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if err := errors.ValidateCount(req.Count); err != nil {
		writeError(w, err)
		return
	}
	if err := errors.ValidateDirection(req.Direction); err != nil {
		writeError(w, err)
		return
	}

	s.respondWithLayout(w, r, req, func() []geom.Point {
		return layout.Straight(layout.StraightSpec{
			Direction:     layout.Direction(req.Direction),
			Spacing:       req.Spacing,
			PrimarySize:   req.PrimarySize,
			SatelliteSize: req.SatelliteSize,
			Count:         req.Count,
			Center:        req.Center,
		})
	}, req.Count)
}

func (s *Server) handleArc(w http.ResponseWriter, r *http.Request) {
	var req arcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if err := errors.ValidateCount(req.Count); err != nil {
		writeError(w, err)
		return
	}
	if err := errors.ValidateWinding(req.Winding); err != nil {
		writeError(w, err)
		return
	}

	s.respondWithLayout(w, r, req, func() []geom.Point {
		return layout.Arc(layout.ArcSpec{
			StartAngle: req.StartAngle,
			EndAngle:   req.EndAngle,
			Radius:     req.Radius,
			Count:      req.Count,
			Center:     req.Center,
			Winding:    layout.Winding(req.Winding),
		})
	}, req.Count)
}

// respondWithLayout serves points from cache when the identical request was
// seen before, computing and storing otherwise.
func (s *Server) respondWithLayout(w http.ResponseWriter, r *http.Request, req any, compute func() []geom.Point, count int) {
	reqData, _ := json.Marshal(req)
	key := s.keyer.PlanKey(cache.Hash(reqData), count)

	if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		var points []geom.Point
		if err := json.Unmarshal(data, &points); err == nil {
			writeJSON(w, http.StatusOK, pointsResponse{Points: points, Cached: true})
			return
		}
	}

	points := compute()
	if data, err := json.Marshal(points); err == nil {
		// Cache writes are best-effort; transient backend failures get retried.
		_ = cache.RetryWithBackoff(r.Context(), func() error {
			return cache.Retryable(s.cache.Set(r.Context(), key, data, layoutTTL))
		})
	}
	writeJSON(w, http.StatusOK, pointsResponse{Points: points, Cached: false})
}

// =============================================================================
// Plan Handlers
// =============================================================================

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if err := errors.ValidateMode(req.Config.Mode); err != nil {
		writeError(w, err)
		return
	}

	plan, err := menu.Build(req.Config, req.Items)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.store.Save(r.Context(), plan); err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info("plan created", "plan", plan.ID, "mode", plan.Mode, "placements", plan.Count())
	writeJSON(w, http.StatusCreated, plan)
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if plans == nil {
		plans = []menu.Plan{}
	}
	writeJSON(w, http.StatusOK, plans)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidatePlanID(id); err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Response Helpers
// =============================================================================

// errorResponse is the wire shape for failures.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidCount, errors.ErrCodeInvalidMode,
		errors.ErrCodeInvalidDirection, errors.ErrCodeInvalidWinding,
		errors.ErrCodeInvalidPreset, errors.ErrCodeInvalidPlan:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodePlanNotFound,
		errors.ErrCodePresetNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}
