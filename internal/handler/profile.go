package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ggrecap/internal/httputil"
	"ggrecap/internal/model"
	"ggrecap/internal/service"
)

// ProfileHandler serves public member profiles.
type ProfileHandler struct {
	users  *service.UserService
	render *httputil.Renderer
}

func NewProfileHandler(users *service.UserService, render *httputil.Renderer) *ProfileHandler {
	return &ProfileHandler{users: users, render: render}
}

// Show handles GET /profile/{username}.
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.users)

	profile, err := h.users.Profile(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			h.render.NotFound(w, r, user)
			return
		}
		http.Error(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}

	h.render.Render(w, r, "profile.html", user, profile)
}
