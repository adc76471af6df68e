package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ggrecap/internal/model"
	"ggrecap/internal/service"
	"ggrecap/internal/transport/http/middleware"
)

// currentUser resolves the session's user id to a full User. Returns nil for
// anonymous requests or stale sessions pointing at a vanished account.
func currentUser(r *http.Request, users *service.UserService) *model.User {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return nil
	}
	user, err := users.GetByID(r.Context(), userID)
	if err != nil {
		return nil
	}
	return user
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
