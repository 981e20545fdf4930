package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"noorcms/internal/service"
)

// GetPublicFaqs returns published FAQs only.
func (h *Handlers) GetPublicFaqs(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	faqs, err := h.FaqService.PublicFaqs(r.Context(), category)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, faqs, http.StatusOK)
}

func (h *Handlers) ListFaqs(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	listing, err := h.FaqService.ListFaqs(r.Context(), category)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, listing, http.StatusOK)
}

func (h *Handlers) CreateFaq(w http.ResponseWriter, r *http.Request) {
	var req service.CreateFaqRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	faq, err := h.FaqService.CreateFaq(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, faq, http.StatusCreated)
}

func (h *Handlers) GetFaq(w http.ResponseWriter, r *http.Request) {
	faqID := mux.Vars(r)["id"]

	faq, err := h.FaqService.GetFaq(r.Context(), faqID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, faq, http.StatusOK)
}

func (h *Handlers) UpdateFaq(w http.ResponseWriter, r *http.Request) {
	faqID := mux.Vars(r)["id"]

	var req service.UpdateFaqRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	faq, err := h.FaqService.UpdateFaq(r.Context(), faqID, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, faq, http.StatusOK)
}

func (h *Handlers) DeleteFaq(w http.ResponseWriter, r *http.Request) {
	faqID := mux.Vars(r)["id"]

	if err := h.FaqService.DeleteFaq(r.Context(), faqID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "faq deleted"}, http.StatusOK)
}
