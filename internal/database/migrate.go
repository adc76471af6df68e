package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema holds the full table set. Statements are idempotent so Migrate can
// run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id              BIGSERIAL PRIMARY KEY,
	username        TEXT NOT NULL UNIQUE,
	password_hashed TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS posts (
	id         BIGSERIAL PRIMARY KEY,
	user_id    BIGINT NOT NULL REFERENCES users(id),
	title      TEXT NOT NULL,
	summary    TEXT NOT NULL,
	content    TEXT NOT NULL,
	image_url  TEXT,
	category   TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS post_comments (
	id         BIGSERIAL PRIMARY KEY,
	post_id    BIGINT NOT NULL REFERENCES posts(id),
	user_id    BIGINT NOT NULL REFERENCES users(id),
	body       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS post_feedback (
	id      BIGSERIAL PRIMARY KEY,
	post_id BIGINT NOT NULL REFERENCES posts(id),
	user_id BIGINT NOT NULL REFERENCES users(id),
	helpful BOOLEAN NOT NULL,
	UNIQUE (post_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at DESC, id DESC);
CREATE INDEX IF NOT EXISTS idx_post_comments_post ON post_comments (post_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_post_feedback_post ON post_feedback (post_id);
`

// Migrate creates the tables if they do not exist yet. Dependent rows are
// removed by the application inside the post-delete transaction, so the
// foreign keys carry no ON DELETE action.
func Migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to run schema migration: %w", err)
	}
	return nil
}
