package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"
	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/service"

	"github.com/gorilla/mux"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	err := decode(r, &user)
	switch {
	case errors.Is(err, io.EOF):
		user = h.DemoUser
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.Users.Login(r.Context(), user))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.Users.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Users.Current()
	if !ok {
		h.writeServiceError(w, service.ErrNotLoggedIn)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var patch service.UserPatch
	if err := decode(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.Users.UpdateUser(r.Context(), patch)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) addAddress(w http.ResponseWriter, r *http.Request) {
	var in service.AddressInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	address, err := h.Users.AddAddress(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, address)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	var patch service.AddressPatch
	if err := decode(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	address, err := h.Users.UpdateAddress(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, address)
}

func (h *Handler) removeAddress(w http.ResponseWriter, r *http.Request) {
	h.respondProfile(w, r, h.Users.RemoveAddress(r.Context(), mux.Vars(r)["id"]))
}

func (h *Handler) setDefaultAddress(w http.ResponseWriter, r *http.Request) {
	h.respondProfile(w, r, h.Users.SetDefaultAddress(r.Context(), mux.Vars(r)["id"]))
}

func (h *Handler) addPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var in service.PaymentMethodInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	method, err := h.Users.AddPaymentMethod(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, method)
}

func (h *Handler) removePaymentMethod(w http.ResponseWriter, r *http.Request) {
	h.respondProfile(w, r, h.Users.RemovePaymentMethod(r.Context(), mux.Vars(r)["id"]))
}

func (h *Handler) setDefaultPaymentMethod(w http.ResponseWriter, r *http.Request) {
	h.respondProfile(w, r, h.Users.SetDefaultPaymentMethod(r.Context(), mux.Vars(r)["id"]))
}

// respondProfile answers a profile mutation with the updated profile.
func (h *Handler) respondProfile(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.getProfile(w, r)
}
