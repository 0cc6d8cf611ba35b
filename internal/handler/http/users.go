package http

import (
	"encoding/json"
	"net/http"

	"github.com/Infogain-GenAI/sample-app1/internal/app"
	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/internal/utils"
	"github.com/Infogain-GenAI/sample-app1/models"
	"github.com/go-chi/chi/v5"
)

// listUsers answers GET /api/users. With an "email" query parameter it
// returns the first user with that email instead of the whole listing.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("email") {
		h.findUserByEmail(w, r)
		return
	}

	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		writeError(w, err)
		return
	}

	if users == nil {
		users = []models.User{}
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("error creating user")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")

	user, err := h.services.UserService.GetUser(r.Context(), name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUser").Str("name", name).Msg("error getting user")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) findUserByEmail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, ErrEmailRequired)
		return
	}

	user, err := h.services.UserService.FindUserByEmail(r.Context(), email)
	if err != nil {
		log.Err(err).Str("func", "*Handler.findUserByEmail").Msg("error finding user by email")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUserEmail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")

	var update models.UserEmailUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateUserEmail").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.UpdateUserEmail(r.Context(), name, update.Email); err != nil {
		log.Err(err).Str("func", "*Handler.updateUserEmail").Str("name", name).Msg("error updating user email")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")

	if err := h.services.UserService.DeleteUser(r.Context(), name); err != nil {
		log.Err(err).Str("func", "*Handler.deleteUser").Str("name", name).Msg("error deleting user")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeError answers with the status mapped from err. Server-side failures
// get a fixed message so store details stay in the logs.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	switch {
	case status == http.StatusServiceUnavailable:
		http.Error(w, app.MsgStoreUnavailable, status)
	case status == http.StatusGatewayTimeout:
		http.Error(w, app.MsgRequestTimedOut, status)
	case status >= http.StatusInternalServerError:
		http.Error(w, app.MsgInternalServerError, status)
	default:
		http.Error(w, err.Error(), status)
	}
}
