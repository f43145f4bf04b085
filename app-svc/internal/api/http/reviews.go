package httpapi

import (
	"net/http"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"
	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/service"

	"github.com/gorilla/mux"
)

type targetReviewsView struct {
	Reviews []domain.Review       `json:"reviews"`
	Summary service.RatingSummary `json:"summary"`
}

// createReview attributes the review to the signed-in user.
func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var in service.ReviewInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	in.UserID, in.UserName = "", ""
	if user, ok := h.Users.Current(); ok {
		in.UserID, in.UserName = user.ID, user.Name
	}

	review, err := h.Reviews.AddReview(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) getTargetReviews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	targetType := domain.TargetType(vars["targetType"])
	if !targetType.Valid() {
		writeError(w, http.StatusBadRequest, "Unknown review target type")
		return
	}
	writeJSON(w, http.StatusOK, targetReviewsView{
		Reviews: h.Reviews.ReviewsForTarget(vars["targetId"], targetType),
		Summary: h.Reviews.Summary(vars["targetId"], targetType),
	})
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	var patch service.ReviewPatch
	if err := decode(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	review, err := h.Reviews.UpdateReview(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	if !h.Reviews.DeleteReview(r.Context(), mux.Vars(r)["id"]) {
		writeError(w, http.StatusNotFound, "Review not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) likeReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.Reviews.LikeReview(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *Handler) getUserReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Reviews.ReviewsByUser(mux.Vars(r)["userId"]))
}

func (h *Handler) getMyReviews(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Users.Current()
	if !ok {
		h.writeServiceError(w, service.ErrNotLoggedIn)
		return
	}
	writeJSON(w, http.StatusOK, h.Reviews.UserReviews(user.ID))
}
