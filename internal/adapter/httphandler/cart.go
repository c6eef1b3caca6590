package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/urbandrop/storefront/internal/core/domain"
	"github.com/urbandrop/storefront/internal/core/port"
)

// SessionHeader carries the opaque cart session id. A request without
// one gets a fresh id; the response always echoes the id back so the
// client can keep it.
const SessionHeader = "X-Session-Id"

type CartHandler struct {
	editor port.CartEditor
}

func RegisterCart(mux *http.ServeMux, editor port.CartEditor) {
	h := CartHandler{editor}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.AddItem)
	mux.HandleFunc("PATCH /v1/cart/items", h.UpdateItem)
	mux.HandleFunc("DELETE /v1/cart/items", h.RemoveItem)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	sessionID := sessionID(w, r)

	cart, err := h.editor.ViewCart(r.Context(), sessionID)
	if err != nil {
		http.Error(w, "failed to read cart", http.StatusServiceUnavailable)
		log.Error("failed to view cart", "err", err)
		return
	}

	writeJSON(w, log, http.StatusOK, toCartResponse(cart))
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	var item AddCartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	sessionID := sessionID(w, r)

	cart, err := h.editor.AddToCart(
		r.Context(), sessionID, item.ProductID, item.Size,
	)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			log.Warn("unknown product", "productID", item.ProductID)
			return
		}
		http.Error(w, "failed to add item", http.StatusServiceUnavailable)
		log.Error("failed to add item", "err", err)
		return
	}

	writeJSON(w, log, http.StatusOK, toCartResponse(cart))
	log.Info("item added", "productID", item.ProductID, "size", item.Size)
}

func (h CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.UpdateItem"
	log := slog.With("op", op)

	var item UpdateCartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	sessionID := sessionID(w, r)

	cart, err := h.editor.SetCartQuantity(
		r.Context(), sessionID, item.ProductID, item.Size, item.Quantity,
	)
	if err != nil {
		http.Error(w, "failed to update item", http.StatusServiceUnavailable)
		log.Error("failed to update item", "err", err)
		return
	}

	writeJSON(w, log, http.StatusOK, toCartResponse(cart))
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.RemoveItem"
	log := slog.With("op", op)

	var item RemoveCartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	sessionID := sessionID(w, r)

	cart, err := h.editor.RemoveFromCart(
		r.Context(), sessionID, item.ProductID, item.Size,
	)
	if err != nil {
		http.Error(w, "failed to remove item", http.StatusServiceUnavailable)
		log.Error("failed to remove item", "err", err)
		return
	}

	writeJSON(w, log, http.StatusOK, toCartResponse(cart))
}

func sessionID(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(SessionHeader, id)
	return id
}

func toCartResponse(cart domain.Cart) CartResponse {
	resp := CartResponse{
		Items:     make([]CartItem, len(cart.Items)),
		Total:     cart.Total().StringFixed(2),
		ItemCount: cart.ItemCount(),
	}
	for i, li := range cart.Items {
		resp.Items[i] = CartItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			Price:     li.Price,
			Size:      li.Size,
			Quantity:  li.Quantity,
			Subtotal:  li.Subtotal().StringFixed(2),
		}
	}
	return resp
}
