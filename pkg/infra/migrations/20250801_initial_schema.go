package migrations

import (
	"github.com/feedguard/feedguard/pkg/infra/database"
	"gorm.io/gorm"
)

// Initial SQL schema for the feed tables: posts, comments, notifications.
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250801_initial_schema",
		Name: "Create core tables: posts, comments, notifications",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE EXTENSION IF NOT EXISTS pgcrypto;
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS posts (
					id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					author_id        TEXT NOT NULL,
					author_name      TEXT NOT NULL DEFAULT '',
					author_photo_url TEXT NOT NULL DEFAULT '',
					displayed_text   TEXT NOT NULL,
					original_text    TEXT NOT NULL DEFAULT '',
					verdict          JSONB,
					created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_posts_author_id ON posts (author_id);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at DESC);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS comments (
					id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					post_id          UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
					author_id        TEXT NOT NULL,
					author_name      TEXT NOT NULL DEFAULT '',
					author_photo_url TEXT NOT NULL DEFAULT '',
					displayed_text   TEXT NOT NULL,
					original_text    TEXT NOT NULL DEFAULT '',
					verdict          JSONB,
					created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments (post_id, created_at);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS notifications (
					id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					recipient_id TEXT NOT NULL,
					actor_name   TEXT NOT NULL DEFAULT '',
					kind         TEXT NOT NULL,
					post_id      UUID,
					message      TEXT NOT NULL DEFAULT '',
					read         BOOLEAN NOT NULL DEFAULT FALSE,
					created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications (recipient_id, created_at DESC);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP TABLE IF EXISTS notifications;`).Error; err != nil {
				return err
			}
			if err := db.Exec(`DROP TABLE IF EXISTS comments;`).Error; err != nil {
				return err
			}
			return db.Exec(`DROP TABLE IF EXISTS posts;`).Error
		},
	})
}
