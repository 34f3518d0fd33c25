package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/ShopBot_Go/internal/chat"
	"github.com/osse101/ShopBot_Go/internal/directory"
	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/economy"
	"github.com/osse101/ShopBot_Go/internal/inventory"
	"github.com/osse101/ShopBot_Go/internal/logger"
	"github.com/osse101/ShopBot_Go/internal/world"
)

// EntityHandler serves the /entities routes
type EntityHandler struct {
	directory directory.Service
	inventory inventory.Service
	economy   economy.Service
	world     world.Service
	chat      chat.Service
}

// NewEntityHandler creates a handler over the entity-facing services
func NewEntityHandler(dir directory.Service, inv inventory.Service, eco economy.Service, w world.Service, c chat.Service) *EntityHandler {
	return &EntityHandler{
		directory: dir,
		inventory: inv,
		economy:   eco,
		world:     w,
		chat:      c,
	}
}

// RegisterRequest registers a player under an external identity
type RegisterRequest struct {
	ExternalIdentity string `json:"external_identity" validate:"notblank,max=128"`
	DisplayName      string `json:"display_name"`
}

// RenameRequest changes a player's display name
type RenameRequest struct {
	Name string `json:"name"`
}

// MoveRequest moves an entity to another location
type MoveRequest struct {
	DestinationLocationID int64 `json:"destination_location_id" validate:"required"`
}

// PurchaseRequest buys from a priced inventory record. Quantity defaults to 1.
type PurchaseRequest struct {
	InventoryRecordID int64 `json:"inventory_record_id" validate:"required"`
	Quantity          *int  `json:"quantity,omitempty"`
}

// SayRequest broadcasts a chat line to the speaker's location
type SayRequest struct {
	Text string `json:"text"`
}

// HandleRegister handles player registration
// @Summary Register a player
// @Description Creates a player at the start location with zero money. A blank display name becomes "Unnamed".
// @Tags entities
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration"
// @Success 201 {object} domain.Entity
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/entities/register [post]
func (h *EntityHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpRegister); err != nil {
		return
	}

	name := req.DisplayName
	if strings.TrimSpace(name) == "" {
		name = domain.DefaultPlayerName
	}

	entity, err := h.directory.Register(r.Context(), req.ExternalIdentity, name)
	if err != nil {
		respondServiceError(w, r, OpRegister, err)
		return
	}

	respondJSON(w, http.StatusCreated, entity)
}

// HandleResolve looks a player up by external identity
// @Summary Resolve an external identity
// @Tags entities
// @Produce json
// @Param external_identity query string true "External identity, e.g. discord:1234"
// @Success 200 {object} domain.Entity
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/entities/resolve [get]
func (h *EntityHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetQueryParam(r, w, "external_identity")
	if !ok {
		return
	}

	entity, err := h.directory.Resolve(r.Context(), identity)
	if err != nil {
		respondServiceError(w, r, OpResolve, err)
		return
	}

	respondJSON(w, http.StatusOK, entity)
}

// HandleRename changes an entity's display name
// @Summary Rename an entity
// @Tags entities
// @Accept json
// @Produce json
// @Param entityID path int true "Entity ID"
// @Param request body RenameRequest true "New name"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/entities/{entityID}/name [put]
func (h *EntityHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	entityID, ok := entityIDFrom(r, w)
	if !ok {
		return
	}
	var req RenameRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpRename); err != nil {
		return
	}

	if err := h.directory.Rename(r.Context(), entityID, req.Name); err != nil {
		respondServiceError(w, r, OpRename, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRenamed})
}

// HandleStatus returns name, money, location and holdings
// @Summary Entity status
// @Tags entities
// @Produce json
// @Param entityID path int true "Entity ID"
// @Success 200 {object} domain.EntityStatus
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/entities/{entityID}/status [get]
func (h *EntityHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	entityID, ok := entityIDFrom(r, w)
	if !ok {
		return
	}

	status, err := h.world.Status(r.Context(), entityID)
	if err != nil {
		respondServiceError(w, r, OpStatus, err)
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// HandleHoldings lists an entity's holdings
// @Summary List holdings
// @Tags entities
// @Produce json
// @Param entityID path int true "Entity ID"
// @Success 200 {array} domain.Holding
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/entities/{entityID}/holdings [get]
func (h *EntityHandler) HandleHoldings(w http.ResponseWriter, r *http.Request) {
	entityID, ok := entityIDFrom(r, w)
	if !ok {
		return
	}

	holdings, err := h.inventory.ListHoldings(r.Context(), entityID)
	if err != nil {
		respondServiceError(w, r, OpListHoldings, err)
		return
	}

	respondJSON(w, http.StatusOK, holdings)
}

// HandleMove moves an entity
// @Summary Move to a location
// @Tags entities
// @Accept json
// @Produce json
// @Param entityID path int true "Entity ID"
// @Param request body MoveRequest true "Destination"
// @Success 200 {object} domain.EntityStatus
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/entities/{entityID}/move [post]
func (h *EntityHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	entityID, ok := entityIDFrom(r, w)
	if !ok {
		return
	}
	var req MoveRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpMove); err != nil {
		return
	}

	if err := h.world.Move(r.Context(), entityID, req.DestinationLocationID); err != nil {
		respondServiceError(w, r, OpMove, err)
		return
	}

	// The bot shows the new status right after a move
	status, err := h.world.Status(r.Context(), entityID)
	if err != nil {
		respondServiceError(w, r, OpStatus, err)
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// HandlePurchase buys from shop stock
// @Summary Purchase
// @Tags entities
// @Accept json
// @Produce json
// @Param entityID path int true "Buyer entity ID"
// @Param request body PurchaseRequest true "What to buy"
// @Success 200 {object} domain.PurchaseResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/entities/{entityID}/purchase [post]
func (h *EntityHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	entityID, ok := entityIDFrom(r, w)
	if !ok {
		return
	}
	var req PurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpPurchase); err != nil {
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	log := logger.FromContext(r.Context())
	log.Debug(LogMsgPurchaseRequest, "buyer_id", entityID, "record_id", req.InventoryRecordID, "quantity", quantity)

	result, err := h.economy.Purchase(r.Context(), entityID, req.InventoryRecordID, quantity)
	if err != nil {
		respondServiceError(w, r, OpPurchase, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleSay broadcasts chat to co-located players
// @Summary Say something
// @Tags entities
// @Accept json
// @Produce json
// @Param entityID path int true "Speaker entity ID"
// @Param request body SayRequest true "Text"
// @Success 200 {object} domain.ChatResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/entities/{entityID}/say [post]
func (h *EntityHandler) HandleSay(w http.ResponseWriter, r *http.Request) {
	entityID, ok := entityIDFrom(r, w)
	if !ok {
		return
	}
	var req SayRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSay); err != nil {
		return
	}

	result, err := h.chat.Say(r.Context(), entityID, req.Text)
	if err != nil {
		respondServiceError(w, r, OpSay, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
