// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"pulse/internal/models"
)

// Validation limits for post form fields.
const maxPostTextLen = 40_000

// GroupFinder resolves a group by its primary key. Satisfied by
// store.GroupStore.
type GroupFinder interface {
	FindByID(id uuid.UUID) (*models.Group, error)
}

// PostForm carries the raw inputs of the post create/edit form plus
// per-field validation errors. GroupID keeps the submitted value as a
// string so an invalid selection can be re-rendered as typed.
type PostForm struct {
	Text    string
	GroupID string
	Group   *models.Group // resolved during Validate when GroupID is set
	Errors  map[string]string
}

// ParsePostForm extracts post form fields from the request.
func ParsePostForm(r *http.Request) *PostForm {
	return &PostForm{
		Text:    r.FormValue("text"),
		GroupID: r.FormValue("group"),
		Errors:  make(map[string]string),
	}
}

// NewPostForm pre-fills a form from an existing post for the edit page.
func NewPostForm(post *models.Post) *PostForm {
	f := &PostForm{
		Text:   post.Text,
		Errors: make(map[string]string),
	}
	if post.GroupID != nil {
		f.GroupID = post.GroupID.String()
	}
	return f
}

// Validate checks the form and resolves the selected group. It returns
// true when the form is clean; otherwise Errors describes what to fix.
func (f *PostForm) Validate(groups GroupFinder) (bool, error) {
	if strings.TrimSpace(f.Text) == "" {
		f.Errors["text"] = "Text is required."
	} else if utf8.RuneCountInString(f.Text) > maxPostTextLen {
		f.Errors["text"] = "Text is too long (max 40,000 characters)."
	}

	f.Group = nil
	if f.GroupID != "" {
		id, err := uuid.Parse(f.GroupID)
		if err != nil {
			f.Errors["group"] = "Unknown group selected."
		} else {
			group, err := groups.FindByID(id)
			if err != nil {
				return false, fmt.Errorf("resolve group: %w", err)
			}
			if group == nil {
				f.Errors["group"] = "Unknown group selected."
			} else {
				f.Group = group
			}
		}
	}

	return len(f.Errors) == 0, nil
}
