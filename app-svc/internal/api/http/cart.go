package httpapi

import (
	"net/http"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"
	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/service"

	"github.com/gorilla/mux"
)

type cartView struct {
	Items     []domain.CartItem `json:"items"`
	KitchenID *string           `json:"kitchenId"`
	ItemCount int               `json:"itemCount"`
	Total     float64           `json:"total"`
}

type addItemRequest struct {
	DishID string `json:"dishId"`
	service.LineInput
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) cartView() cartView {
	record := h.Cart.Snapshot()
	return cartView{
		Items:     record.Items,
		KitchenID: record.KitchenID,
		ItemCount: h.Cart.ItemCount(),
		Total:     h.Cart.Total(),
	}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Cart.Clear(r.Context())
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	dish, ok := h.Catalog.Dish(req.DishID)
	if !ok {
		writeError(w, http.StatusNotFound, "Dish not found")
		return
	}
	if err := h.Cart.AddItem(r.Context(), dish, req.LineInput); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.Cart.UpdateQuantity(r.Context(), mux.Vars(r)["dishId"], req.Quantity)
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.Cart.RemoveItem(r.Context(), mux.Vars(r)["dishId"])
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) getQuote(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Checkout.Quote())
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if r.ContentLength != 0 {
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	order, err := h.Checkout.PlaceOrder(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}
