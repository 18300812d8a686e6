// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"pulse/internal/middleware"
	"pulse/internal/models"
	"pulse/internal/render"
	"pulse/internal/session"
)

// Signup form limits.
const (
	minUsernameLen    = 3
	maxUsernameLen    = 150
	minPasswordLen    = 8
	maxDisplayNameLen = 150
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// AuthUserRepo is the user storage surface the auth handlers need.
// Satisfied by store.UserStore.
type AuthUserRepo interface {
	FindByUsername(username string) (*models.User, error)
	Create(username, password, displayName string) (*models.User, error)
	CheckPassword(user *models.User, password string) bool
}

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	renderer *render.Renderer
	sessions *session.Store
	users    AuthUserRepo
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, sessions *session.Store, users AuthUserRepo) *Auth {
	return &Auth{
		renderer: renderer,
		sessions: sessions,
		users:    users,
	}
}

// LoginPage renders the login form. A ?next= parameter is carried
// through the form so a successful login returns to the original page.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromCtx(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	a.renderer.Page(w, r, "login", &render.PageData{
		Title: "Sign in",
		Data:  map[string]any{"Next": safeNext(r.FormValue("next"))},
	})
}

// LoginSubmit processes the login form.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")
	next := safeNext(r.FormValue("next"))

	user, err := a.users.FindByUsername(username)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		a.renderer.Page(w, r, "login", &render.PageData{
			Title: "Sign in",
			Data:  map[string]any{"Error": "An unexpected error occurred.", "Next": next},
		})
		return
	}

	if user == nil || !a.users.CheckPassword(user, password) {
		a.renderer.Page(w, r, "login", &render.PageData{
			Title: "Sign in",
			Data: map[string]any{
				"Error":    "Invalid username or password.",
				"Username": username,
				"Next":     next,
			},
		})
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
	}); err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("user logged in", "username", user.Username)

	if next == "" {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusFound)
}

// SignupPage renders the registration form.
func (a *Auth) SignupPage(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromCtx(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	a.renderer.Page(w, r, "signup", &render.PageData{Title: "Sign up"})
}

// SignupSubmit creates a new account and logs the user straight in.
func (a *Auth) SignupSubmit(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	displayName := strings.TrimSpace(r.FormValue("display_name"))

	if msg := validateSignup(username, password, displayName); msg != "" {
		a.signupError(w, r, msg, username, displayName)
		return
	}

	existing, err := a.users.FindByUsername(username)
	if err != nil {
		slog.Error("signup lookup failed", "error", err)
		a.signupError(w, r, "An unexpected error occurred.", username, displayName)
		return
	}
	if existing != nil {
		a.signupError(w, r, "That username is already taken.", username, displayName)
		return
	}

	user, err := a.users.Create(username, password, displayName)
	if err != nil {
		slog.Error("signup create failed", "error", err)
		a.signupError(w, r, "An unexpected error occurred.", username, displayName)
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
	}); err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("user registered", "username", user.Username)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout destroys the session and returns to the front page.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (a *Auth) signupError(w http.ResponseWriter, r *http.Request, msg, username, displayName string) {
	a.renderer.Page(w, r, "signup", &render.PageData{
		Title: "Sign up",
		Data: map[string]any{
			"Error":       msg,
			"Username":    username,
			"DisplayName": displayName,
		},
	})
}

// validateSignup checks registration inputs and returns the first error
// found, or "" when the form is clean.
func validateSignup(username, password, displayName string) string {
	if username == "" {
		return "Username is required."
	}
	if utf8.RuneCountInString(username) < minUsernameLen {
		return "Username is too short (min 3 characters)."
	}
	if utf8.RuneCountInString(username) > maxUsernameLen {
		return "Username is too long (max 150 characters)."
	}
	if !usernamePattern.MatchString(username) {
		return "Username may only contain letters, digits, dots, dashes and underscores."
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return "Password is too short (min 8 characters)."
	}
	if utf8.RuneCountInString(displayName) > maxDisplayNameLen {
		return "Display name is too long (max 150 characters)."
	}
	return ""
}

// safeNext keeps post-login redirects on this site: only local absolute
// paths survive, everything else (external URLs, scheme-relative
// "//host" tricks) is dropped.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}
