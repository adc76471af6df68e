package database

import (
	"database/sql"
	"fmt"
	"log"

	"ggrecap/internal/config"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

type demoPost struct {
	title    string
	summary  string
	content  string
	imageURL string
	category string
}

var demoPosts = []demoPost{
	{
		title:    "How T1 Dominates the Rift",
		summary:  "Macro play, roaming discipline, and laser-focused drafts keep Faker and crew atop the LCK.",
		content:  "T1's current streak is built on early mid-priority and synchronized jungle tracking. They lean on flexible champs for Faker, draft disengage for Keria, then punish every rotation with pre-planned vision traps. The key takeaway for amateur teams: communicate lane states every wave and call timers out loud.",
		imageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=1400&q=80",
		category: "MOBA",
	},
	{
		title:    "CS2 Utility Setups for Ancient",
		summary:  "T-side control hinges on instant cave pressure and double-molly executes over mid.",
		content:  "Ancient rewards teams that deny CT aggression. Pair a fast cave pop flash with a deep donut smoke so lurkers can pinch A. Once rifles plant, keep one HE for post-plant to punish defuse taps. Practice these lineups in custom servers until muscle memory kicks in.",
		imageURL: "https://images.unsplash.com/photo-1511512578047-dfb367046420?auto=format&fit=crop&w=1200&q=80",
		category: "FPS",
	},
	{
		title:    "Valorant Fracture Playbook",
		summary:  "Double controller comps unlock brutal pincer hits - here's the round-by-round plan.",
		content:  "Use Breach to clear tower while Harbor walls off generator, letting Neon sprint into site without crossfire. On defense, anchor with Killjoy util stacked on B tower and rotate early - Fracture favors proactive swings. Review VODs to ensure your reactions line up with sound cues.",
		imageURL: "https://images.unsplash.com/photo-1506111583091-d69f4b0da347?auto=format&fit=crop&w=1300&q=80",
		category: "Tactics",
	},
}

// Seed runs the one-time startup repair: make sure the admin account exists,
// reattach any post that lost (or never had) a proper owner to it, and seed
// the demo recaps into an empty database. Safe to run on every boot.
func Seed(db *sqlx.DB, cfg *config.Config) error {
	adminID, err := ensureAdmin(db, cfg)
	if err != nil {
		return err
	}

	var postCount int
	if err := db.Get(&postCount, `SELECT COUNT(*) FROM posts`); err != nil {
		return fmt.Errorf("failed to count posts: %w", err)
	}

	if postCount > 0 {
		// The FK on posts.user_id makes orphans impossible in databases this
		// schema created; this only finds rows imported from an older database
		// that lacked the constraint.
		res, err := db.Exec(`UPDATE posts SET user_id = $1 WHERE user_id NOT IN (SELECT id FROM users)`, adminID)
		if err != nil {
			return fmt.Errorf("failed to reassign orphaned posts: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			log.Printf("Reassigned %d orphaned posts to %s", n, cfg.AdminUsername)
		}
		return nil
	}

	if !cfg.SeedDemoPosts {
		return nil
	}

	for _, p := range demoPosts {
		_, err := db.Exec(`
			INSERT INTO posts (user_id, title, summary, content, image_url, category)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, adminID, p.title, p.summary, p.content, p.imageURL, p.category)
		if err != nil {
			return fmt.Errorf("failed to seed demo post %q: %w", p.title, err)
		}
	}
	log.Printf("Seeded %d demo posts", len(demoPosts))

	return nil
}

func ensureAdmin(db *sqlx.DB, cfg *config.Config) (int64, error) {
	var adminID int64
	err := db.Get(&adminID, `SELECT id FROM users WHERE username = $1`, cfg.AdminUsername)
	if err == nil {
		return adminID, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up admin user: %w", err)
	}

	password := cfg.AdminPassword
	if password == "" {
		password = "ggwp123!"
		log.Println("ADMIN_PASSWORD not set, admin account created with the default password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash admin password: %w", err)
	}

	err = db.Get(&adminID, `
		INSERT INTO users (username, password_hashed)
		VALUES ($1, $2)
		RETURNING id
	`, cfg.AdminUsername, string(hash))
	if err != nil {
		return 0, fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Created admin account %q", cfg.AdminUsername)
	return adminID, nil
}
