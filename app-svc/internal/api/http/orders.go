package httpapi

import (
	"context"
	"net/http"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Orders.Orders())
}

func (h *Handler) getActiveOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.Orders.ActiveOrder()
	if !ok {
		writeError(w, http.StatusNotFound, "No active order")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.Orders.GetOrderByID(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := h.Orders.GetOrderByID(id); !ok {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	png, err := h.QR.Generate(id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) confirmOrder(w http.ResponseWriter, r *http.Request) {
	h.transitionOrder(w, r, h.Orders.ConfirmOrder)
}

func (h *Handler) advanceOrder(w http.ResponseWriter, r *http.Request) {
	h.transitionOrder(w, r, h.Orders.AdvanceOrder)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	h.transitionOrder(w, r, h.Orders.CancelOrder)
}

func (h *Handler) transitionOrder(w http.ResponseWriter, r *http.Request, move func(context.Context, string) (domain.Order, error)) {
	order, err := move(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
