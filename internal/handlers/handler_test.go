// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Storage is faked in memory so these tests run without PostgreSQL; the
// store packages carry their own integration tests.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pulse/internal/middleware"
	"pulse/internal/models"
	"pulse/internal/render"
	"pulse/internal/session"
)

// fakePostRepo is an in-memory PostRepo.
type fakePostRepo struct {
	posts  []models.Post
	nextID int64
}

func (f *fakePostRepo) ordered() []models.Post {
	out := make([]models.Post, len(f.posts))
	copy(out, f.posts)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PubDate.Equal(out[j].PubDate) {
			return out[i].PubDate.After(out[j].PubDate)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (f *fakePostRepo) ListOrdered() ([]models.Post, error) {
	return f.ordered(), nil
}

func (f *fakePostRepo) ListByGroup(groupID uuid.UUID) ([]models.Post, error) {
	var out []models.Post
	for _, p := range f.ordered() {
		if p.GroupID != nil && *p.GroupID == groupID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) ListByAuthor(authorID uuid.UUID) ([]models.Post, error) {
	var out []models.Post
	for _, p := range f.ordered() {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) FindByID(id int64) (*models.Post, error) {
	for i := range f.posts {
		if f.posts[i].ID == id {
			p := f.posts[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) Create(p *models.Post) (*models.Post, error) {
	f.nextID++
	created := *p
	created.ID = f.nextID
	if created.PubDate.IsZero() {
		created.PubDate = time.Now()
	}
	f.posts = append(f.posts, created)
	return &created, nil
}

func (f *fakePostRepo) Update(p *models.Post) error {
	for i := range f.posts {
		if f.posts[i].ID == p.ID {
			// Only text and group are writable, matching the real store.
			f.posts[i].Text = p.Text
			f.posts[i].GroupID = p.GroupID
			return nil
		}
	}
	return fmt.Errorf("post %d not found", p.ID)
}

// fakeGroupRepo is an in-memory GroupRepo.
type fakeGroupRepo struct {
	groups []models.Group
}

func (f *fakeGroupRepo) List() ([]models.Group, error) {
	return f.groups, nil
}

func (f *fakeGroupRepo) FindBySlug(groupSlug string) (*models.Group, error) {
	for i := range f.groups {
		if f.groups[i].Slug == groupSlug {
			g := f.groups[i]
			return &g, nil
		}
	}
	return nil, nil
}

func (f *fakeGroupRepo) FindByID(id uuid.UUID) (*models.Group, error) {
	for i := range f.groups {
		if f.groups[i].ID == id {
			g := f.groups[i]
			return &g, nil
		}
	}
	return nil, nil
}

// fakeUserRepo is an in-memory user store for both lookup and auth.
type fakeUserRepo struct {
	users     []models.User
	passwords map[string]string // username -> plaintext, test only
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{passwords: make(map[string]string)}
}

func (f *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(username, password, displayName string) (*models.User, error) {
	u := models.User{
		ID:          uuid.New(),
		Username:    username,
		DisplayName: displayName,
		CreatedAt:   time.Now(),
	}
	f.users = append(f.users, u)
	f.passwords[username] = password
	return &u, nil
}

func (f *fakeUserRepo) CheckPassword(user *models.User, password string) bool {
	return f.passwords[user.Username] == password
}

// testRenderer builds the real renderer so handler tests exercise the
// actual templates.
func testRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return r
}

// newTestPosts wires a Posts handler group onto fresh fakes.
func newTestPosts(t *testing.T, pageSize int) (*Posts, *fakePostRepo, *fakeGroupRepo, *fakeUserRepo) {
	t.Helper()
	postRepo := &fakePostRepo{}
	groupRepo := &fakeGroupRepo{}
	userRepo := newFakeUserRepo()
	h := NewPosts(testRenderer(t), postRepo, groupRepo, userRepo, pageSize)
	return h, postRepo, groupRepo, userRepo
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// formRequest builds an urlencoded POST to target with the given fields.
func formRequest(target string, fields url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(fields.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// seedUser registers a user in the fake repo and returns it.
func seedUser(t *testing.T, repo *fakeUserRepo, username string) *models.User {
	t.Helper()
	u, err := repo.Create(username, "correct-horse-battery", "")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// seedPost adds a post for the author at the given publication time.
func seedPost(t *testing.T, repo *fakePostRepo, author *models.User, text string, at time.Time, groupID *uuid.UUID) *models.Post {
	t.Helper()
	p, err := repo.Create(&models.Post{
		Text:           text,
		PubDate:        at,
		AuthorID:       author.ID,
		GroupID:        groupID,
		AuthorUsername: author.Username,
	})
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return p
}
