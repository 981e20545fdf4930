package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"noorcms/internal/models"
	"noorcms/internal/repository"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Admin *models.Admin `json:"admin"`
	Token string        `json:"token"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	admin, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			WriteError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, LoginResponse{Admin: admin, Token: token}, http.StatusOK)
}
