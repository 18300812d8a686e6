// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// site. It organizes routes into public, authoring, and account groups
// with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pulse/internal/handlers"
	"pulse/internal/middleware"
	"pulse/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, posts *handlers.Posts, auth *handlers.Auth, about *handlers.About) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Everything that renders or accepts forms runs behind CSRF.
	r.Group(func(r chi.Router) {
		r.Use(middleware.CSRF)

		// Public browsing.
		r.Get("/", posts.Index)
		r.Get("/group/{slug}/", posts.GroupPosts)
		r.Get("/profile/{username}/", posts.Profile)
		r.Get("/posts/{id}/", posts.PostDetail)

		// Static pages.
		r.Get("/about/author/", about.Author)
		r.Get("/about/tech/", about.Tech)

		// Account routes. Login and signup submissions are rate limited.
		loginLimiter := middleware.NewRateLimiter(10, time.Minute)
		r.Route("/auth", func(r chi.Router) {
			r.Get("/login/", auth.LoginPage)
			r.With(loginLimiter.Middleware).Post("/login/", auth.LoginSubmit)
			r.Get("/signup/", auth.SignupPage)
			r.With(loginLimiter.Middleware).Post("/signup/", auth.SignupSubmit)
			r.Post("/logout/", auth.Logout)
		})

		// Authoring — requires a session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/create/", posts.PostCreate)
			r.Post("/create/", posts.PostCreate)
			r.Get("/posts/{id}/edit/", posts.PostEdit)
			r.Post("/posts/{id}/edit/", posts.PostEdit)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
