// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Group is a named, slug-addressed topic that posts may be filed under.
// Groups are created administratively; posts reference them weakly, so
// removing a group never removes its posts.
type Group struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	// PostCount is populated by list queries for display; it is not a column.
	PostCount int `json:"post_count,omitempty"`
}
