package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"
	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Catalog  service.CatalogReader
	Cart     service.CartServiceInterface
	Orders   service.OrderServiceInterface
	Reviews  service.ReviewServiceInterface
	Users    service.UserServiceInterface
	Checkout service.CheckoutServiceInterface
	QR       service.QRGenerator
	// DemoUser is signed in when a session is opened without a profile.
	DemoUser domain.User
	Logger   logrus.FieldLogger
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/kitchens", h.getKitchens).Methods("GET")
	r.HandleFunc("/api/kitchens/{kitchenId}", h.getKitchen).Methods("GET")
	r.HandleFunc("/api/kitchens/{kitchenId}/dishes", h.getKitchenDishes).Methods("GET")
	r.HandleFunc("/api/dishes/{dishId}", h.getDish).Methods("GET")
	r.HandleFunc("/api/search", h.search).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{dishId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{dishId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart/quote", h.getQuote).Methods("GET")
	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/active", h.getActiveOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/confirm", h.confirmOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/advance", h.advanceOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/cancel", h.cancelOrder).Methods("POST")

	r.HandleFunc("/api/reviews", h.createReview).Methods("POST")
	r.HandleFunc("/api/reviews/{targetType}/{targetId}", h.getTargetReviews).Methods("GET")
	r.HandleFunc("/api/reviews/{id}", h.updateReview).Methods("PATCH")
	r.HandleFunc("/api/reviews/{id}", h.deleteReview).Methods("DELETE")
	r.HandleFunc("/api/reviews/{id}/like", h.likeReview).Methods("POST")
	r.HandleFunc("/api/users/{userId}/reviews", h.getUserReviews).Methods("GET")

	r.HandleFunc("/api/session", h.login).Methods("POST")
	r.HandleFunc("/api/session", h.logout).Methods("DELETE")
	r.HandleFunc("/api/profile", h.getProfile).Methods("GET")
	r.HandleFunc("/api/profile", h.updateProfile).Methods("PATCH")
	r.HandleFunc("/api/profile/reviews", h.getMyReviews).Methods("GET")
	r.HandleFunc("/api/profile/addresses", h.addAddress).Methods("POST")
	r.HandleFunc("/api/profile/addresses/{id}", h.updateAddress).Methods("PATCH")
	r.HandleFunc("/api/profile/addresses/{id}", h.removeAddress).Methods("DELETE")
	r.HandleFunc("/api/profile/addresses/{id}/default", h.setDefaultAddress).Methods("POST")
	r.HandleFunc("/api/profile/payment-methods", h.addPaymentMethod).Methods("POST")
	r.HandleFunc("/api/profile/payment-methods/{id}", h.removePaymentMethod).Methods("DELETE")
	r.HandleFunc("/api/profile/payment-methods/{id}/default", h.setDefaultPaymentMethod).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "app-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getKitchens(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Kitchens())
}

func (h *Handler) getKitchen(w http.ResponseWriter, r *http.Request) {
	kitchen, ok := h.Catalog.Kitchen(mux.Vars(r)["kitchenId"])
	if !ok {
		writeError(w, http.StatusNotFound, "Kitchen not found")
		return
	}
	writeJSON(w, http.StatusOK, kitchen)
}

func (h *Handler) getKitchenDishes(w http.ResponseWriter, r *http.Request) {
	kitchenID := mux.Vars(r)["kitchenId"]
	if _, ok := h.Catalog.Kitchen(kitchenID); !ok {
		writeError(w, http.StatusNotFound, "Kitchen not found")
		return
	}
	dishes := h.Catalog.Dishes(kitchenID)
	if dishes == nil {
		dishes = []domain.Dish{}
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	dish, ok := h.Catalog.Dish(mux.Vars(r)["dishId"])
	if !ok {
		writeError(w, http.StatusNotFound, "Dish not found")
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	kitchens, dishes := h.Catalog.Search(r.URL.Query().Get("q"))
	if kitchens == nil {
		kitchens = []domain.Kitchen{}
	}
	if dishes == nil {
		dishes = []domain.Dish{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"kitchens": kitchens,
		"dishes":   dishes,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"error": message})
}

func decode(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeServiceError maps store errors onto HTTP statuses.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var (
		selectionErr  *domain.SelectionError
		validationErr *service.ValidationError
		transitionErr *service.TransitionError
	)

	switch {
	case errors.Is(err, service.ErrKitchenConflict):
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error":    err.Error(),
			"conflict": true,
		})
	case errors.As(err, &selectionErr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   err.Error(),
			"missing": selectionErr.Missing,
			"tooMany": selectionErr.TooMany,
			"unknown": selectionErr.Unknown,
		})
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": err.Error(),
			"field": validationErr.Field,
		})
	case errors.As(err, &transitionErr),
		errors.Is(err, service.ErrCartChanged):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrAddressRequired),
		errors.Is(err, service.ErrPaymentRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSignInRequired),
		errors.Is(err, service.ErrNotLoggedIn):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrReviewNotFound),
		errors.Is(err, service.ErrAddressNotFound),
		errors.Is(err, service.ErrPaymentMethodNotFound),
		errors.Is(err, service.ErrKitchenNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		logger := h.Logger
		if logger == nil {
			logger = logrus.StandardLogger()
		}
		logger.WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
