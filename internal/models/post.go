// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a user-authored text entry, optionally filed under a group.
// AuthorID is set exactly once at creation and never reassigned; PubDate
// is server-assigned at creation and is the default descending sort key
// for every listing.
type Post struct {
	ID       int64      `json:"id"`
	Text     string     `json:"text"`
	PubDate  time.Time  `json:"pub_date"`
	AuthorID uuid.UUID  `json:"author_id"`
	GroupID  *uuid.UUID `json:"group_id,omitempty"`

	// Display fields joined by list queries; not columns of the posts table.
	AuthorUsername    string  `json:"author_username,omitempty"`
	AuthorDisplayName string  `json:"author_display_name,omitempty"`
	GroupTitle        *string `json:"group_title,omitempty"`
	GroupSlug         *string `json:"group_slug,omitempty"`
}

// InGroup reports whether the post is filed under a group.
func (p Post) InGroup() bool {
	return p.GroupID != nil
}

// AuthorName returns the author's display name, falling back to the username.
// Value receiver so templates can call it on list elements.
func (p Post) AuthorName() string {
	if p.AuthorDisplayName != "" {
		return p.AuthorDisplayName
	}
	return p.AuthorUsername
}
