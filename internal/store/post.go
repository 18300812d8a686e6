// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"pulse/internal/models"
)

// PostStore handles all post-related database operations. List queries
// join author and group so listings render without extra round trips,
// ordered by pub_date descending with id as the stable tie-break.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// postSelect is the joined projection shared by every post query.
const postSelect = `
	SELECT p.id, p.text, p.pub_date, p.author_id, p.group_id,
	       u.username, u.display_name, g.title, g.slug
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id`

const postOrder = ` ORDER BY p.pub_date DESC, p.id DESC`

// scanPost scans a joined row into a Post struct.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	err := scanner.Scan(
		&p.ID, &p.Text, &p.PubDate, &p.AuthorID, &p.GroupID,
		&p.AuthorUsername, &p.AuthorDisplayName, &p.GroupTitle, &p.GroupSlug,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// collectPosts drains rows into a slice of posts.
func collectPosts(rows *sql.Rows) ([]models.Post, error) {
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// ListOrdered returns all posts, newest first.
func (s *PostStore) ListOrdered() ([]models.Post, error) {
	rows, err := s.db.Query(postSelect + postOrder)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return collectPosts(rows)
}

// ListByGroup returns the group's posts, newest first.
func (s *PostStore) ListByGroup(groupID uuid.UUID) ([]models.Post, error) {
	rows, err := s.db.Query(postSelect+` WHERE p.group_id = $1`+postOrder, groupID)
	if err != nil {
		return nil, fmt.Errorf("list posts by group: %w", err)
	}
	return collectPosts(rows)
}

// ListByAuthor returns the author's posts, newest first.
func (s *PostStore) ListByAuthor(authorID uuid.UUID) ([]models.Post, error) {
	rows, err := s.db.Query(postSelect+` WHERE p.author_id = $1`+postOrder, authorID)
	if err != nil {
		return nil, fmt.Errorf("list posts by author: %w", err)
	}
	return collectPosts(rows)
}

// FindByID retrieves a post by its numeric ID. Returns nil if not found.
func (s *PostStore) FindByID(id int64) (*models.Post, error) {
	row := s.db.QueryRow(postSelect+` WHERE p.id = $1`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// Create inserts a new post. The database assigns id and pub_date; the
// caller supplies text, author, and the optional group. Returns the
// stored post with display fields populated.
func (s *PostStore) Create(p *models.Post) (*models.Post, error) {
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO posts (text, author_id, group_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, p.Text, p.AuthorID, p.GroupID).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return s.FindByID(id)
}

// Update persists a post's text and group. Author and pub_date are never
// part of the statement, so they cannot change after creation.
func (s *PostStore) Update(p *models.Post) error {
	_, err := s.db.Exec(`
		UPDATE posts SET text = $1, group_id = $2 WHERE id = $3
	`, p.Text, p.GroupID, p.ID)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

// Count returns the total number of posts.
func (s *PostStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}
