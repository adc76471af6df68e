package handler

import (
	"net/http"
	"strings"

	"ggrecap/internal/httputil"
	"ggrecap/internal/model"
	"ggrecap/internal/service"
)

// HomeHandler serves the filtered post listing.
type HomeHandler struct {
	posts  *service.PostService
	users  *service.UserService
	render *httputil.Renderer
}

func NewHomeHandler(posts *service.PostService, users *service.UserService, render *httputil.Renderer) *HomeHandler {
	return &HomeHandler{posts: posts, users: users, render: render}
}

// homeData is what index.html renders.
type homeData struct {
	View     *model.HomeView
	Query    string
	Category string
}

// Home handles GET / with optional q and category query parameters.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	filter := model.PostFilter{
		Search:   strings.TrimSpace(r.URL.Query().Get("q")),
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
	}

	view, err := h.posts.Browse(r.Context(), filter)
	if err != nil {
		http.Error(w, "Failed to load posts", http.StatusInternalServerError)
		return
	}

	h.render.Render(w, r, "index.html", currentUser(r, h.users), homeData{
		View:     view,
		Query:    filter.Search,
		Category: filter.Category,
	})
}
