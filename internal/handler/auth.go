package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"ggrecap/internal/httputil"
	"ggrecap/internal/model"
	"ggrecap/internal/service"
	"ggrecap/internal/transport/http/middleware"
)

// AuthHandler groups the identity lifecycle endpoints.
type AuthHandler struct {
	users   *service.UserService
	session *scs.SessionManager
	render  *httputil.Renderer
}

func NewAuthHandler(users *service.UserService, session *scs.SessionManager, render *httputil.Renderer) *AuthHandler {
	return &AuthHandler{users: users, session: session, render: render}
}

// RegisterPage handles GET /register.
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if user := currentUser(r, h.users); user != nil {
		h.render.SetFlash(r.Context(), "info", "You are already logged in.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render.Render(w, r, "register.html", nil, nil)
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	form := model.RegisterForm{
		Username:        r.FormValue("username"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}

	_, err := h.users.Register(r.Context(), &form)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUsernameTaken):
			h.render.SetFlash(r.Context(), "warning", "Handle already taken.")
		case errors.Is(err, model.ErrPasswordMismatch):
			h.render.SetFlash(r.Context(), "danger", "Passwords do not match.")
		case errors.Is(err, model.ErrUsernameRequired), errors.Is(err, model.ErrPasswordRequired):
			h.render.SetFlash(r.Context(), "danger", "Username and password required.")
		default:
			log.Printf("Error registering user: %v", err)
			h.render.SetFlash(r.Context(), "danger", "Registration failed, please try again.")
		}
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	h.render.SetFlash(r.Context(), "success", "Account created! Time to queue up.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if user := currentUser(r, h.users); user != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render.Render(w, r, "login.html", nil, struct{ Next string }{Next: r.URL.Query().Get("next")})
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	form := model.LoginForm{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	user, err := h.users.Login(r.Context(), &form)
	if err != nil {
		if !errors.Is(err, model.ErrInvalidCredentials) {
			log.Printf("Error logging in: %v", err)
			http.Error(w, "Failed to log in", http.StatusInternalServerError)
			return
		}
		h.render.SetFlash(r.Context(), "danger", "Invalid credentials.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// Rotate the session token on privilege change to head off fixation.
	if err := h.session.RenewToken(r.Context()); err != nil {
		log.Printf("Error renewing session token: %v", err)
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		return
	}
	h.session.Put(r.Context(), middleware.SessionUserKey, user.ID)

	h.render.SetFlash(r.Context(), "success", "Welcome back to the arena!")
	http.Redirect(w, r, safeNext(r.FormValue("next")), http.StatusSeeOther)
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.RenewToken(r.Context()); err != nil {
		log.Printf("Error renewing session token: %v", err)
	}
	h.session.Remove(r.Context(), middleware.SessionUserKey)

	h.render.SetFlash(r.Context(), "info", "Logged out successfully.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// safeNext only follows same-site relative redirect targets.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}
