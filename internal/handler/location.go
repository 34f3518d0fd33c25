package handler

import (
	"net/http"

	"github.com/osse101/ShopBot_Go/internal/world"
)

// LocationHandler serves the /locations routes
type LocationHandler struct {
	world world.Service
}

// NewLocationHandler creates a location handler
func NewLocationHandler(w world.Service) *LocationHandler {
	return &LocationHandler{world: w}
}

// HandleList lists every location
// @Summary List locations
// @Tags locations
// @Produce json
// @Success 200 {array} domain.Location
// @Router /api/v1/locations [get]
func (h *LocationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	locations, err := h.world.ListLocations(r.Context())
	if err != nil {
		respondServiceError(w, r, OpListLocations, err)
		return
	}
	respondJSON(w, http.StatusOK, locations)
}

// HandleDescribe returns a location and what is for sale there
// @Summary Describe a location
// @Tags locations
// @Produce json
// @Param locationID path int true "Location ID"
// @Success 200 {object} domain.LocationDescription
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/locations/{locationID} [get]
func (h *LocationHandler) HandleDescribe(w http.ResponseWriter, r *http.Request) {
	locationID, ok := locationIDFrom(r, w)
	if !ok {
		return
	}

	desc, err := h.world.DescribeLocation(r.Context(), locationID)
	if err != nil {
		respondServiceError(w, r, OpDescribeLocation, err)
		return
	}
	respondJSON(w, http.StatusOK, desc)
}

// HandleWhoIsHere lists the players at a location
// @Summary Who is here
// @Tags locations
// @Produce json
// @Param locationID path int true "Location ID"
// @Success 200 {array} domain.Entity
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/locations/{locationID}/entities [get]
func (h *LocationHandler) HandleWhoIsHere(w http.ResponseWriter, r *http.Request) {
	locationID, ok := locationIDFrom(r, w)
	if !ok {
		return
	}

	players, err := h.world.WhoIsHere(r.Context(), locationID)
	if err != nil {
		respondServiceError(w, r, OpWhoIsHere, err)
		return
	}
	respondJSON(w, http.StatusOK, players)
}
