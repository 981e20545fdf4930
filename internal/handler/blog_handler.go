package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// GetBlog returns the published posts together with the tag names in use,
// for the public blog page filters.
func (h *Handlers) GetBlog(w http.ResponseWriter, r *http.Request) {
	listing, err := h.PostService.PublicListing(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, listing, http.StatusOK)
}

// GetBlogPost returns a published post by slug plus up to 5 recent other
// published posts and the full tag list for the sidebar.
func (h *Handlers) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	view, err := h.PostService.PublicPostBySlug(r.Context(), slug)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, view, http.StatusOK)
}
