package http

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ggrecap/internal/handler"
	authmw "ggrecap/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	Session        *scs.SessionManager
	StaticDir      string
	HomeHandler    *handler.HomeHandler
	AuthHandler    *handler.AuthHandler
	PostHandler    *handler.PostHandler
	ProfileHandler *handler.ProfileHandler
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Session context must be loaded before anything reads or writes it.
	r.Use(cfg.Session.LoadAndSave)
	r.Use(authmw.LoadUser(cfg.Session))
	r.Use(authmw.CSRF(cfg.Session))

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	// Public routes - no authentication required
	r.Get("/", cfg.HomeHandler.Home)
	r.Get("/post/{id}", cfg.PostHandler.Show)
	r.Get("/profile/{username}", cfg.ProfileHandler.Show)
	r.Get("/register", cfg.AuthHandler.RegisterPage)
	r.Post("/register", cfg.AuthHandler.Register)
	r.Get("/login", cfg.AuthHandler.LoginPage)
	r.Post("/login", cfg.AuthHandler.Login)

	// Protected routes - require a logged-in session
	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth(cfg.Session))

		r.Post("/logout", cfg.AuthHandler.Logout)

		r.Post("/post/{id}", cfg.PostHandler.Comment)
		r.Post("/post/{id}/feedback", cfg.PostHandler.Feedback)

		r.Get("/add", cfg.PostHandler.NewPage)
		r.Post("/add", cfg.PostHandler.Create)
		r.Get("/edit/{id}", cfg.PostHandler.EditPage)
		r.Post("/edit/{id}", cfg.PostHandler.Edit)
		r.Post("/delete/{id}", cfg.PostHandler.Delete)
	})

	return r
}
