package handlers

import (
	"net/http"

	"pulse/internal/render"
)

// About groups the static informational pages.
type About struct {
	renderer *render.Renderer
}

// NewAbout creates a new About handler group.
func NewAbout(renderer *render.Renderer) *About {
	return &About{renderer: renderer}
}

// Author renders the about-the-author page.
func (h *About) Author(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, "about_author", &render.PageData{
		Title: "About the author",
		Data:  map[string]any{},
	})
}

// Tech renders the technology page.
func (h *About) Tech(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, "about_tech", &render.PageData{
		Title: "Technology",
		Data:  map[string]any{},
	})
}
