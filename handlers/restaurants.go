// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/food-selector/cliparse"
	"github.com/danielhkuo/food-selector/metrics"
	"github.com/danielhkuo/food-selector/middleware"
	"github.com/danielhkuo/food-selector/models"
	"github.com/danielhkuo/food-selector/selector"
	"github.com/danielhkuo/food-selector/session"
)

type RestaurantHandler struct {
	svc *selector.Service
	cfg cliparse.Config
}

func NewRestaurantHandler(svc *selector.Service, cfg cliparse.Config) *RestaurantHandler {
	return &RestaurantHandler{svc: svc, cfg: cfg}
}

// ListRestaurants handles GET /api/restaurants
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	visitor := session.Visitor(r)

	views, err := h.svc.Restaurants(r.Context(), visitor)
	if err != nil {
		h.writeError(w, "list", err)
		return
	}

	resp := models.RestaurantsResponse{Restaurants: views}
	if visitor != "" {
		resp.CurrentUser = &visitor
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// SetUser handles POST /api/set-user
func (h *RestaurantHandler) SetUser(w http.ResponseWriter, r *http.Request) {
	var req models.SetUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name, err := h.svc.Identify(r.Context(), session.Visitor(r), req.Name)
	if err != nil {
		h.writeError(w, "set_user", err)
		return
	}

	session.SetVisitor(w, name, h.cfg.SecureCookie)
	metrics.Mutations.WithLabelValues("set_user", metrics.OutcomeOK).Inc()
	middleware.JSONResponse(w, http.StatusOK, models.SetUserResponse{
		Success: true,
		Name:    name,
	})
}

// Vote handles POST /api/vote
func (h *RestaurantHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.Vote(r.Context(), session.Visitor(r), req.RestaurantID, req.VoteType); err != nil {
		h.writeError(w, "vote", err)
		return
	}
	h.writeSuccess(w, "vote")
}

// Note handles POST /api/note
func (h *RestaurantHandler) Note(w http.ResponseWriter, r *http.Request) {
	var req models.NoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.SetNote(r.Context(), session.Visitor(r), req.RestaurantID, req.Note); err != nil {
		h.writeError(w, "note", err)
		return
	}
	h.writeSuccess(w, "note")
}

// Suggest handles POST /api/suggest
func (h *RestaurantHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req models.SuggestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	restaurant, err := h.svc.Suggest(r.Context(), session.Visitor(r), req.Name, req.Cuisine)
	if err != nil {
		h.writeError(w, "suggest", err)
		return
	}

	metrics.Mutations.WithLabelValues("suggest", metrics.OutcomeOK).Inc()
	middleware.JSONResponse(w, http.StatusOK, models.SuggestResponse{
		Success:    true,
		Restaurant: *restaurant,
	})
}

// Reset handles POST /api/reset. The body is ignored.
func (h *RestaurantHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context(), session.Visitor(r)); err != nil {
		h.writeError(w, "reset", err)
		return
	}
	h.writeSuccess(w, "reset")
}

func (h *RestaurantHandler) writeSuccess(w http.ResponseWriter, operation string) {
	metrics.Mutations.WithLabelValues(operation, metrics.OutcomeOK).Inc()
	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// writeError maps selector error kinds onto status codes.
// Anything unrecognised is a 500.
func (h *RestaurantHandler) writeError(w http.ResponseWriter, operation string, err error) {
	status := statusFor(err)
	if operation != "list" {
		metrics.Mutations.WithLabelValues(operation, metrics.OutcomeError).Inc()
	}

	var selErr *selector.Error
	if !errors.As(err, &selErr) {
		slog.Error("unexpected error", "operation", operation, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "operation", operation, "error", err)
	}
	middleware.ErrorResponse(w, status, selErr.Message)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, selector.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, selector.ErrInvalidInput), errors.Is(err, selector.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, selector.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
