// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"pulse/internal/models"
	"pulse/internal/slug"
)

// GroupStore manages topic groups in the database. Groups are created
// administratively (seed or ops tooling) and never deleted by handlers.
type GroupStore struct {
	db *sql.DB
}

// NewGroupStore returns a new GroupStore.
func NewGroupStore(db *sql.DB) *GroupStore {
	return &GroupStore{db: db}
}

const groupColumns = `id, title, slug, description, created_at`

// scanGroup scans a row into a Group struct.
func scanGroup(scanner interface{ Scan(...any) error }) (*models.Group, error) {
	var g models.Group
	err := scanner.Scan(&g.ID, &g.Title, &g.Slug, &g.Description, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// List returns all groups ordered by title, with post counts for display.
func (s *GroupStore) List() ([]models.Group, error) {
	rows, err := s.db.Query(`
		SELECT g.id, g.title, g.slug, g.description, g.created_at,
		       COUNT(p.id) AS post_count
		FROM groups g
		LEFT JOIN posts p ON p.group_id = g.id
		GROUP BY g.id
		ORDER BY g.title
	`)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	var items []models.Group
	for rows.Next() {
		var g models.Group
		err := rows.Scan(&g.ID, &g.Title, &g.Slug, &g.Description, &g.CreatedAt, &g.PostCount)
		if err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

// FindBySlug retrieves a group by its URL slug. Returns nil if not found.
func (s *GroupStore) FindBySlug(groupSlug string) (*models.Group, error) {
	row := s.db.QueryRow(`SELECT `+groupColumns+` FROM groups WHERE slug = $1`, groupSlug)
	g, err := scanGroup(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find group by slug: %w", err)
	}
	return g, nil
}

// FindByID retrieves a group by ID. Returns nil if not found.
func (s *GroupStore) FindByID(id uuid.UUID) (*models.Group, error) {
	row := s.db.QueryRow(`SELECT `+groupColumns+` FROM groups WHERE id = $1`, id)
	g, err := scanGroup(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find group by id: %w", err)
	}
	return g, nil
}

// Create inserts a new group and returns it. When the slug is empty it is
// generated from the title. Slugs are immutable once a URL references
// them, so there is no Update for this column.
func (s *GroupStore) Create(g *models.Group) (*models.Group, error) {
	if g.Slug == "" {
		g.Slug = slug.Generate(g.Title)
	}

	row := s.db.QueryRow(`
		INSERT INTO groups (title, slug, description)
		VALUES ($1, $2, $3)
		RETURNING `+groupColumns,
		g.Title, g.Slug, g.Description,
	)
	result, err := scanGroup(row)
	if err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	return result, nil
}
