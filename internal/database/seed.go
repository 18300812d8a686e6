package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"pulse/internal/slug"
)

// Seed populates the database with initial development data: a demo user,
// a starter group, and a couple of posts. It is a no-op when any user
// already exists.
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (username, password_hash, display_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`, "demo", string(hash), "Demo Author").Scan(&userID)
	if err != nil {
		return fmt.Errorf("seed insert user: %w", err)
	}

	groupTitle := "General Discussion"
	var groupID string
	err = db.QueryRow(`
		INSERT INTO groups (title, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`, groupTitle, slug.Generate(groupTitle), "A place for anything that fits nowhere else.").Scan(&groupID)
	if err != nil {
		return fmt.Errorf("seed insert group: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO posts (text, author_id, group_id) VALUES
			($1, $2, $3),
			($4, $5, NULL)
	`,
		"Welcome to Pulse! This is the first post in General Discussion.", userID, groupID,
		"Posts without a group land on the main feed only.", userID,
	)
	if err != nil {
		return fmt.Errorf("seed insert posts: %w", err)
	}

	slog.Info("database seeded with demo data",
		"username", "demo",
		"password", "demo1234",
	)

	return nil
}
