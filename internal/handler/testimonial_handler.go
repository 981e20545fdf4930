package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"noorcms/internal/service"
)

// GetApprovedTestimonials returns approved testimonials only, for the public site.
func (h *Handlers) GetApprovedTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.TestimonialService.ApprovedTestimonials(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, testimonials, http.StatusOK)
}

// SubmitTestimonial handles the public form. The stored status is always
// pending, whatever the client sent.
func (h *Handlers) SubmitTestimonial(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	testimonial, err := h.TestimonialService.SubmitTestimonial(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, testimonial, http.StatusCreated)
}

func (h *Handlers) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	testimonials, err := h.TestimonialService.ListTestimonials(r.Context(), status)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, testimonials, http.StatusOK)
}

func (h *Handlers) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	testimonial, err := h.TestimonialService.CreateTestimonial(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, testimonial, http.StatusCreated)
}

func (h *Handlers) GetTestimonial(w http.ResponseWriter, r *http.Request) {
	testimonialID := mux.Vars(r)["id"]

	testimonial, err := h.TestimonialService.GetTestimonial(r.Context(), testimonialID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, testimonial, http.StatusOK)
}

func (h *Handlers) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	testimonialID := mux.Vars(r)["id"]

	var req service.UpdateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	testimonial, err := h.TestimonialService.UpdateTestimonial(r.Context(), testimonialID, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, testimonial, http.StatusOK)
}

func (h *Handlers) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	testimonialID := mux.Vars(r)["id"]

	if err := h.TestimonialService.DeleteTestimonial(r.Context(), testimonialID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "testimonial deleted"}, http.StatusOK)
}
