package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ServerPort string

	// SessionLifetimeHours bounds how long a login cookie stays valid.
	SessionLifetimeHours int

	TemplatesDir string
	StaticDir    string

	// AdminUsername owns seeded and repaired posts. AdminPassword is only
	// used the first time the account is created.
	AdminUsername string
	AdminPassword string

	SeedDemoPosts bool
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading it, relying on environment variables")
	}

	sessionLifetime, err := strconv.Atoi(os.Getenv("SESSION_LIFETIME_HOURS"))
	if err != nil || sessionLifetime <= 0 {
		sessionLifetime = 24
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	templatesDir := os.Getenv("TEMPLATES_DIR")
	if templatesDir == "" {
		templatesDir = "web/templates"
	}

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "web/static"
	}

	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = "admin"
	}

	seedDemoPosts := true
	if v := os.Getenv("SEED_DEMO_POSTS"); v != "" {
		seedDemoPosts, _ = strconv.ParseBool(v)
	}

	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  sslMode,

		ServerPort: serverPort,

		SessionLifetimeHours: sessionLifetime,

		TemplatesDir: templatesDir,
		StaticDir:    staticDir,

		AdminUsername: adminUsername,
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		SeedDemoPosts: seedDemoPosts,
	}, nil
}
