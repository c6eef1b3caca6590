package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/urbandrop/storefront/internal/core/domain"
	"github.com/urbandrop/storefront/internal/core/port"
)

type AdminHandler struct {
	pSender  port.ProductsSender
	sSetter  port.ProductStatusSetter
	insights port.InsightsProvider
}

func RegisterAdmin(
	mux *http.ServeMux,
	pSender port.ProductsSender,
	sSetter port.ProductStatusSetter,
	insights port.InsightsProvider,
) {
	h := AdminHandler{pSender, sSetter, insights}
	mux.HandleFunc("POST /v1/admin/products", h.PostProducts)
	mux.HandleFunc("POST /v1/admin/products/status", h.PostStatus)
	mux.HandleFunc("GET /v1/admin/insights", h.GetInsights)
}

func (h AdminHandler) PostProducts(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PostProducts"
	log := slog.With("op", op)

	var ps []Product
	if err := json.NewDecoder(r.Body).Decode(&ps); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := h.pSender.SendProducts(r.Context(), h.toDomain(ps)); err != nil {
		http.Error(
			w, "failed to accept products", http.StatusServiceUnavailable,
		)
		log.Error("failed to send products", "err", err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	if _, err := w.Write([]byte("Accepted")); err != nil {
		log.Error("failed to write response body", "err", err)
		return
	}

	log.Info("accepted", "nProducts", len(ps))
}

func (h AdminHandler) PostStatus(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PostStatus"
	log := slog.With("op", op)

	var status ProductStatus
	if err := json.NewDecoder(r.Body).Decode(&status); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	err := h.sSetter.SetProductStatus(r.Context(), domain.ProductStatus{
		ProductID:    status.ProductID,
		Discontinued: status.Discontinued,
	})
	if err != nil {
		http.Error(
			w, "failed to accept status", http.StatusServiceUnavailable,
		)
		log.Error("failed to set product status", "err", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Error("failed to write response body", "err", err)
		return
	}

	log.Info(
		"status accepted",
		"productID", status.ProductID,
		"discontinued", status.Discontinued,
	)
}

func (h AdminHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.GetInsights"
	log := slog.With("op", op)

	reports, err := h.insights.OrderInsights(r.Context())
	if err != nil {
		http.Error(w, "failed to get insights", http.StatusServiceUnavailable)
		log.Error("failed to get order insights", "err", err)
		return
	}

	if len(reports) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := make([]SalesReport, len(reports))
	for i, rep := range reports {
		resp[i] = SalesReport{SessionID: rep.SessionID, Orders: rep.Orders}
	}
	writeJSON(w, log, http.StatusOK, resp)
	log.Info("insights served", "nReports", len(resp))
}

func (h AdminHandler) toDomain(ps []Product) (domainPs []domain.Product) {
	for _, p := range ps {
		domainPs = append(domainPs, domain.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Price:       p.Price,
			Sizes:       p.Sizes,
			InStock:     p.InStock,
			Images:      p.Images,
		})
	}
	return domainPs
}
