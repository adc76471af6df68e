package http

import (
	"fmt"
	"log"
	stdhttp "net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"ggrecap/internal/config"
	"ggrecap/internal/database"
	"ggrecap/internal/handler"
	"ggrecap/internal/httputil"
	"ggrecap/internal/repository"
	"ggrecap/internal/service"
)

func Run() error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Connect to Database and bring the schema up
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := database.Seed(db, cfg); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	// 3. Sessions
	session := scs.New()
	session.Lifetime = time.Duration(cfg.SessionLifetimeHours) * time.Hour
	session.Cookie.SameSite = stdhttp.SameSiteLaxMode

	// 4. Wire repositories, services, handlers
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	userService := service.NewUserService(userRepo, postRepo, commentRepo, feedbackRepo)
	postService := service.NewPostService(postRepo, commentRepo, userRepo)
	engagementService := service.NewEngagementService(postRepo, commentRepo, feedbackRepo)

	render, err := httputil.NewRenderer(cfg.TemplatesDir, session)
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	router := NewRouter(RouterConfig{
		Session:        session,
		StaticDir:      cfg.StaticDir,
		HomeHandler:    handler.NewHomeHandler(postService, userService, render),
		AuthHandler:    handler.NewAuthHandler(userService, session, render),
		PostHandler:    handler.NewPostHandler(postService, engagementService, userService, render),
		ProfileHandler: handler.NewProfileHandler(userService, render),
	})

	// 5. Serve
	addr := ":" + cfg.ServerPort
	log.Printf("Starting server on %s", addr)
	return stdhttp.ListenAndServe(addr, router)
}
