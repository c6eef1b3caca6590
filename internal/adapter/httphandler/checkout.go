package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/urbandrop/storefront/internal/core/domain"
	"github.com/urbandrop/storefront/internal/core/port"
)

type CheckoutHandler struct {
	sender port.CheckoutSender
}

func RegisterCheckout(mux *http.ServeMux, sender port.CheckoutSender) {
	h := CheckoutHandler{sender}
	mux.HandleFunc("POST /v1/checkout", h.PostCheckout)
}

func (h CheckoutHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PostCheckout"
	log := slog.With("op", op)

	var req CheckoutRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON data", http.StatusBadRequest)
			log.Warn("failed to parse JSON", "err", err)
			return
		}
	}

	sessionID := sessionID(w, r)

	order, err := h.sender.Checkout(r.Context(), sessionID, req.Locale)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			http.Error(w, "cart is empty", http.StatusConflict)
			log.Warn("checkout on empty cart", "sessionID", sessionID)
			return
		}
		http.Error(w, "failed to checkout", http.StatusServiceUnavailable)
		log.Error("failed to checkout", "err", err)
		return
	}

	resp := CheckoutResponse{
		Message:   order.Message,
		Recipient: order.Recipient,
		Link:      order.Link,
		Total:     order.Total.StringFixed(2),
	}
	writeJSON(w, log, http.StatusOK, resp)
	log.Info("order composed", "sessionID", sessionID, "locale", order.Locale)
}
