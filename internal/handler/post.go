package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"ggrecap/internal/httputil"
	"ggrecap/internal/model"
	"ggrecap/internal/service"
	"ggrecap/internal/transport/http/middleware"
)

// PostHandler groups the content and engagement endpoints.
type PostHandler struct {
	posts      *service.PostService
	engagement *service.EngagementService
	users      *service.UserService
	render     *httputil.Renderer
}

func NewPostHandler(
	posts *service.PostService,
	engagement *service.EngagementService,
	users *service.UserService,
	render *httputil.Renderer,
) *PostHandler {
	return &PostHandler{posts: posts, engagement: engagement, users: users, render: render}
}

// postData is what post.html renders.
type postData struct {
	Post     *model.Post
	Comments []model.Comment
	Votes    model.VoteTally
	UserVote *model.Feedback
}

// Show handles GET /post/{id}.
func (h *PostHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.users)

	id, err := pathID(r)
	if err != nil {
		h.render.NotFound(w, r, user)
		return
	}

	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			h.render.NotFound(w, r, user)
			return
		}
		http.Error(w, "Failed to load post", http.StatusInternalServerError)
		return
	}

	comments, err := h.engagement.ListComments(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to load comments", http.StatusInternalServerError)
		return
	}

	votes, err := h.engagement.Votes(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to load feedback", http.StatusInternalServerError)
		return
	}

	var userVote *model.Feedback
	if user != nil {
		userVote, _ = h.engagement.VoteOf(r.Context(), id, user.ID)
	}

	h.render.Render(w, r, "post.html", user, postData{
		Post:     post,
		Comments: comments,
		Votes:    votes,
		UserVote: userVote,
	})
}

// Comment handles POST /post/{id}. Requires authentication.
func (h *PostHandler) Comment(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		h.render.NotFound(w, r, currentUser(r, h.users))
		return
	}
	postURL := fmt.Sprintf("/post/%d", id)

	_, err = h.engagement.AddComment(r.Context(), id, userID, r.FormValue("body"))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrBodyRequired):
			h.render.SetFlash(r.Context(), "danger", "Comment cannot be empty.")
			http.Redirect(w, r, postURL, http.StatusSeeOther)
		case errors.Is(err, model.ErrPostNotFound):
			h.render.NotFound(w, r, currentUser(r, h.users))
		default:
			log.Printf("Error adding comment: %v", err)
			http.Error(w, "Failed to add comment", http.StatusInternalServerError)
		}
		return
	}

	h.render.SetFlash(r.Context(), "success", "Play-by-play added!")
	http.Redirect(w, r, postURL+"#comments", http.StatusSeeOther)
}

// Feedback handles POST /post/{id}/feedback. Requires authentication.
func (h *PostHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		h.render.NotFound(w, r, currentUser(r, h.users))
		return
	}
	postURL := fmt.Sprintf("/post/%d", id)

	_, err = h.engagement.CastFeedback(r.Context(), id, userID, r.FormValue("action"))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidFeedback):
			h.render.SetFlash(r.Context(), "danger", "Invalid feedback option.")
			http.Redirect(w, r, postURL, http.StatusSeeOther)
		case errors.Is(err, model.ErrPostNotFound):
			h.render.NotFound(w, r, currentUser(r, h.users))
		default:
			log.Printf("Error casting feedback: %v", err)
			http.Error(w, "Failed to record feedback", http.StatusInternalServerError)
		}
		return
	}

	h.render.SetFlash(r.Context(), "success", "Thanks for the feedback!")
	http.Redirect(w, r, postURL+"#feedback", http.StatusSeeOther)
}

// NewPage handles GET /add. Requires authentication.
func (h *PostHandler) NewPage(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, "add_post.html", currentUser(r, h.users), nil)
}

// Create handles POST /add. Requires authentication.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	form := postFormFromRequest(r)
	post, err := h.posts.Create(r.Context(), userID, form)
	if err != nil {
		h.flashPostFormError(w, r, err, "/add")
		return
	}

	h.render.SetFlash(r.Context(), "success", "Match recap published!")
	http.Redirect(w, r, fmt.Sprintf("/post/%d", post.ID), http.StatusSeeOther)
}

// EditPage handles GET /edit/{id}. Requires authentication and ownership.
func (h *PostHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.users)

	id, err := pathID(r)
	if err != nil {
		h.render.NotFound(w, r, user)
		return
	}

	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		h.render.NotFound(w, r, user)
		return
	}
	if user == nil || !post.CanMutate(user.ID) {
		h.render.SetFlash(r.Context(), "danger", "You can only edit your own recaps.")
		http.Redirect(w, r, fmt.Sprintf("/post/%d", id), http.StatusSeeOther)
		return
	}

	h.render.Render(w, r, "edit_post.html", user, struct{ Post *model.Post }{Post: post})
}

// Edit handles POST /edit/{id}. Requires authentication and ownership.
func (h *PostHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		h.render.NotFound(w, r, currentUser(r, h.users))
		return
	}
	postURL := fmt.Sprintf("/post/%d", id)

	form := postFormFromRequest(r)
	_, err = h.posts.Update(r.Context(), id, userID, form)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotPostOwner):
			h.render.SetFlash(r.Context(), "danger", "You can only edit your own recaps.")
			http.Redirect(w, r, postURL, http.StatusSeeOther)
		case errors.Is(err, model.ErrPostNotFound):
			h.render.NotFound(w, r, currentUser(r, h.users))
		default:
			h.flashPostFormError(w, r, err, fmt.Sprintf("/edit/%d", id))
		}
		return
	}

	h.render.SetFlash(r.Context(), "info", "Post updated.")
	http.Redirect(w, r, postURL, http.StatusSeeOther)
}

// Delete handles POST /delete/{id}. Requires authentication and ownership.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		h.render.NotFound(w, r, currentUser(r, h.users))
		return
	}

	if err := h.posts.Delete(r.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, model.ErrNotPostOwner):
			h.render.SetFlash(r.Context(), "danger", "You can only delete your own posts.")
			http.Redirect(w, r, fmt.Sprintf("/post/%d", id), http.StatusSeeOther)
		case errors.Is(err, model.ErrPostNotFound):
			h.render.NotFound(w, r, currentUser(r, h.users))
		default:
			log.Printf("Error deleting post: %v", err)
			http.Error(w, "Failed to delete post", http.StatusInternalServerError)
		}
		return
	}

	h.render.SetFlash(r.Context(), "warning", "Post removed.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func postFormFromRequest(r *http.Request) *model.PostForm {
	return &model.PostForm{
		Title:    r.FormValue("title"),
		Summary:  r.FormValue("summary"),
		Content:  r.FormValue("content"),
		ImageURL: r.FormValue("image_url"),
		Category: r.FormValue("category"),
	}
}

func (h *PostHandler) flashPostFormError(w http.ResponseWriter, r *http.Request, err error, backTo string) {
	switch {
	case errors.Is(err, model.ErrTitleRequired),
		errors.Is(err, model.ErrSummaryRequired),
		errors.Is(err, model.ErrContentRequired):
		h.render.SetFlash(r.Context(), "danger", err.Error())
		http.Redirect(w, r, backTo, http.StatusSeeOther)
	default:
		log.Printf("Error saving post: %v", err)
		http.Error(w, "Failed to save post", http.StatusInternalServerError)
	}
}
