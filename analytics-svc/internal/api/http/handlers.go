package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Ganga-777/Cloud-Kitchen/analytics-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Analytics service.AnalyticsInterface
	Logger    logrus.FieldLogger
}

func NewHandler(svc service.AnalyticsInterface, logger logrus.FieldLogger) *Handler {
	return &Handler{Analytics: svc, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/ratings/{targetType}/{targetId}", h.getRating).Methods("GET")
	r.HandleFunc("/api/analytics/kitchens/{kitchenId}/top-dishes", h.getTopDishes).Methods("GET")
}

func (h *Handler) getRating(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rating, err := h.Analytics.Rating(r.Context(), vars["targetType"], vars["targetId"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rating)
}

func (h *Handler) getTopDishes(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	top, err := h.Analytics.TopDishes(r.Context(), mux.Vars(r)["kitchenId"], r.URL.Query().Get("period"), limit)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, top)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPeriod), errors.Is(err, service.ErrInvalidTargetType):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger := h.Logger
		if logger == nil {
			logger = logrus.StandardLogger()
		}
		logger.WithError(err).Error("Failed to read analytics")
		writeError(w, http.StatusInternalServerError, "analytics unavailable")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
