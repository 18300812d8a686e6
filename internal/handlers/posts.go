// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handler groups for the site: post
// browsing and authoring, account management, and static pages.
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pulse/internal/middleware"
	"pulse/internal/models"
	"pulse/internal/pagination"
	"pulse/internal/render"
)

// PostRepo is the post storage surface the handlers need. Satisfied by
// store.PostStore.
type PostRepo interface {
	ListOrdered() ([]models.Post, error)
	ListByGroup(groupID uuid.UUID) ([]models.Post, error)
	ListByAuthor(authorID uuid.UUID) ([]models.Post, error)
	FindByID(id int64) (*models.Post, error)
	Create(p *models.Post) (*models.Post, error)
	Update(p *models.Post) error
}

// GroupRepo is the group storage surface the handlers need. Satisfied by
// store.GroupStore.
type GroupRepo interface {
	GroupFinder
	List() ([]models.Group, error)
	FindBySlug(groupSlug string) (*models.Group, error)
}

// UserRepo is the user lookup surface the post handlers need. Satisfied
// by store.UserStore.
type UserRepo interface {
	FindByUsername(username string) (*models.User, error)
}

// Posts groups the handlers for browsing and authoring posts.
type Posts struct {
	renderer *render.Renderer
	posts    PostRepo
	groups   GroupRepo
	users    UserRepo
	pageSize int
}

// NewPosts creates a new Posts handler group. pageSize controls how many
// posts each listing page shows.
func NewPosts(renderer *render.Renderer, posts PostRepo, groups GroupRepo, users UserRepo, pageSize int) *Posts {
	return &Posts{
		renderer: renderer,
		posts:    posts,
		groups:   groups,
		users:    users,
		pageSize: pageSize,
	}
}

// Index renders the site-wide post listing, newest first.
func (h *Posts) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListOrdered()
	if err != nil {
		slog.Error("list posts failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page := pagination.Paginate(posts, h.pageSize, pagination.ParseNumber(r.URL.Query().Get("page")))

	h.renderer.Page(w, r, "index", &render.PageData{
		Title: "Latest posts",
		Data:  map[string]any{"PageObj": page},
	})
}

// GroupPosts renders the post listing of a single group.
func (h *Posts) GroupPosts(w http.ResponseWriter, r *http.Request) {
	group, err := h.groups.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		slog.Error("group lookup failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if group == nil {
		http.NotFound(w, r)
		return
	}

	posts, err := h.posts.ListByGroup(group.ID)
	if err != nil {
		slog.Error("list group posts failed", "error", err, "group", group.Slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page := pagination.Paginate(posts, h.pageSize, pagination.ParseNumber(r.URL.Query().Get("page")))

	h.renderer.Page(w, r, "group_list", &render.PageData{
		Title: group.Title,
		Data: map[string]any{
			"Group":   group,
			"PageObj": page,
		},
	})
}

// Profile renders a user's page with all their posts.
func (h *Posts) Profile(w http.ResponseWriter, r *http.Request) {
	author, err := h.users.FindByUsername(chi.URLParam(r, "username"))
	if err != nil {
		slog.Error("profile lookup failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if author == nil {
		http.NotFound(w, r)
		return
	}

	posts, err := h.posts.ListByAuthor(author.ID)
	if err != nil {
		slog.Error("list author posts failed", "error", err, "username", author.Username)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page := pagination.Paginate(posts, h.pageSize, pagination.ParseNumber(r.URL.Query().Get("page")))

	h.renderer.Page(w, r, "profile", &render.PageData{
		Title: author.Name(),
		Data: map[string]any{
			"Author":  author,
			"PageObj": page,
		},
	})
}

// PostDetail renders a single post.
func (h *Posts) PostDetail(w http.ResponseWriter, r *http.Request) {
	post, ok := h.findPost(w, r)
	if !ok {
		return
	}

	h.renderer.Page(w, r, "post_detail", &render.PageData{
		Title: "Post by " + post.AuthorName(),
		Data:  map[string]any{"Post": post},
	})
}

// PostCreate renders the new-post form on GET and publishes the post on
// POST. The authenticated user becomes the author; on success the
// browser is sent to their profile.
func (h *Posts) PostCreate(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		http.Redirect(w, r, middleware.LoginPath, http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		h.renderForm(w, r, &PostForm{Errors: map[string]string{}}, false, 0)
		return
	}

	form := ParsePostForm(r)
	valid, err := form.Validate(h.groups)
	if err != nil {
		slog.Error("post form validation failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if !valid {
		h.renderForm(w, r, form, false, 0)
		return
	}

	post := &models.Post{
		Text:     form.Text,
		AuthorID: sess.UserID,
	}
	if form.Group != nil {
		post.GroupID = &form.Group.ID
	}

	created, err := h.posts.Create(post)
	if err != nil {
		slog.Error("post create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("post published", "post_id", created.ID, "author", sess.Username)
	http.Redirect(w, r, "/profile/"+sess.Username+"/", http.StatusFound)
}

// PostEdit lets a post's author change its text and group. Anyone else
// is sent back to the post page. Author and publication date never
// change on edit.
func (h *Posts) PostEdit(w http.ResponseWriter, r *http.Request) {
	post, ok := h.findPost(w, r)
	if !ok {
		return
	}

	detailURL := fmt.Sprintf("/posts/%d/", post.ID)

	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil || sess.UserID != post.AuthorID {
		http.Redirect(w, r, detailURL, http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		h.renderForm(w, r, NewPostForm(post), true, post.ID)
		return
	}

	form := ParsePostForm(r)
	valid, err := form.Validate(h.groups)
	if err != nil {
		slog.Error("post form validation failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if !valid {
		h.renderForm(w, r, form, true, post.ID)
		return
	}

	post.Text = form.Text
	post.GroupID = nil
	if form.Group != nil {
		post.GroupID = &form.Group.ID
	}

	if err := h.posts.Update(post); err != nil {
		slog.Error("post update failed", "error", err, "post_id", post.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("post updated", "post_id", post.ID, "author", sess.Username)
	http.Redirect(w, r, detailURL, http.StatusFound)
}

// findPost resolves the {id} URL parameter to a post, writing a 404 (and
// returning false) when the ID is malformed or no post exists.
func (h *Posts) findPost(w http.ResponseWriter, r *http.Request) (*models.Post, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	post, err := h.posts.FindByID(id)
	if err != nil {
		slog.Error("post lookup failed", "error", err, "post_id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	if post == nil {
		http.NotFound(w, r)
		return nil, false
	}

	return post, true
}

// renderForm renders the shared create/edit form page.
func (h *Posts) renderForm(w http.ResponseWriter, r *http.Request, form *PostForm, isEdit bool, postID int64) {
	groups, err := h.groups.List()
	if err != nil {
		slog.Error("list groups failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	title := "New post"
	if isEdit {
		title = "Edit post"
	}

	h.renderer.Page(w, r, "create_post", &render.PageData{
		Title: title,
		Data: map[string]any{
			"Form":   form,
			"Groups": groups,
			"IsEdit": isEdit,
			"PostPK": postID,
		},
	})
}
