package carts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/cappadocia-tours/internal/api/handlers"
	"github.com/m04kA/cappadocia-tours/internal/service/cart"
	"github.com/m04kA/cappadocia-tours/internal/service/cart/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidItemID      = "некорректный ID позиции"
	msgCartNotFound       = "корзина не найдена или истекла"
	msgEmptyCart          = "корзина пуста"
	msgInvalidItem        = "некорректная позиция корзины"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/carts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	resp := h.service.Create()
	h.logger.Info("POST /carts - Cart created: cart_id=%s", resp.ID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// Get GET /api/v1/carts/{cartId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	cartID := mux.Vars(r)["cartId"]
	resp, err := h.service.Get(cartID)
	h.respond(w, "GET /carts/{id}", cartID, resp, err)
}

// Delete DELETE /api/v1/carts/{cartId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	cartID := mux.Vars(r)["cartId"]
	if err := h.service.Delete(cartID); err != nil {
		h.respondError(w, "DELETE /carts/{id}", cartID, err)
		return
	}

	h.logger.Info("DELETE /carts/{id} - Cart closed: cart_id=%s", cartID)
	w.WriteHeader(http.StatusNoContent)
}

// AddItem POST /api/v1/carts/{cartId}/items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	cartID := mux.Vars(r)["cartId"]

	var req models.AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /carts/{id}/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.AddItem(r.Context(), cartID, &req)
	h.respond(w, "POST /carts/{id}/items", cartID, resp, err)
}

// RemoveItem DELETE /api/v1/carts/{cartId}/items/{itemId}
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cartID := vars["cartId"]

	// синтезированные позиции имеют отрицательные ID
	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil || itemID == 0 {
		h.logger.Warn("DELETE /carts/{id}/items/{itemId} - Invalid item ID: %q", vars["itemId"])
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	resp, err := h.service.RemoveItem(cartID, itemID)
	h.respond(w, "DELETE /carts/{id}/items/{itemId}", cartID, resp, err)
}

// Clear DELETE /api/v1/carts/{cartId}/items
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	cartID := mux.Vars(r)["cartId"]
	resp, err := h.service.Clear(cartID)
	h.respond(w, "DELETE /carts/{id}/items", cartID, resp, err)
}

// SetBundle PUT /api/v1/carts/{cartId}/bundle
func (h *Handler) SetBundle(w http.ResponseWriter, r *http.Request) {
	cartID := mux.Vars(r)["cartId"]

	var req models.BundleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /carts/{id}/bundle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.SetBundle(cartID, &req)
	h.respond(w, "PUT /carts/{id}/bundle", cartID, resp, err)
}

// ClearBundle DELETE /api/v1/carts/{cartId}/bundle
func (h *Handler) ClearBundle(w http.ResponseWriter, r *http.Request) {
	cartID := mux.Vars(r)["cartId"]
	resp, err := h.service.ClearBundle(cartID)
	h.respond(w, "DELETE /carts/{id}/bundle", cartID, resp, err)
}

// Checkout POST /api/v1/carts/{cartId}/checkout
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	cartID := mux.Vars(r)["cartId"]

	resp, err := h.service.Checkout(cartID)
	if err != nil {
		h.respondError(w, "POST /carts/{id}/checkout", cartID, err)
		return
	}

	h.logger.Info("POST /carts/{id}/checkout - Checked out: cart_id=%s, items=%d, total=%.2f",
		cartID, len(resp.Items), resp.Totals.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) respond(w http.ResponseWriter, op, cartID string, resp *models.CartResponse, err error) {
	if err != nil {
		h.respondError(w, op, cartID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) respondError(w http.ResponseWriter, op, cartID string, err error) {
	switch {
	case errors.Is(err, cart.ErrCartNotFound):
		h.logger.Warn("%s - Cart not found: cart_id=%s", op, cartID)
		handlers.RespondNotFound(w, msgCartNotFound)

	case errors.Is(err, cart.ErrEmptyCart):
		h.logger.Warn("%s - Empty cart: cart_id=%s", op, cartID)
		handlers.RespondConflict(w, msgEmptyCart)

	case errors.Is(err, cart.ErrInvalidItem):
		h.logger.Warn("%s - Invalid item: cart_id=%s, error=%v", op, cartID, err)
		handlers.RespondBadRequest(w, msgInvalidItem)

	default:
		h.logger.Error("%s - Failed: cart_id=%s, error=%v", op, cartID, err)
		handlers.RespondInternalError(w)
	}
}
