package handlers

import (
	"encoding/json"
	"net/http"
)

type SubscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type SubscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handlers) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Provider failures surface as a generic error, the detail stays in the logs.
	if err := h.NewsletterService.Subscribe(r.Context(), req.Email, req.Name); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, SubscribeResponse{Success: true, Message: "subscribed"}, http.StatusOK)
}
