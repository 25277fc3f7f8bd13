package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/matefs/next-crm-api/internal/infra/auth"
	"github.com/matefs/next-crm-api/internal/usecase"
)

type UserHandler struct {
	GetUC    *usecase.GetUserProfileUseCase
	UpdateUC *usecase.UpdateUserProfileUseCase
}

func NewUserHandler(getUC *usecase.GetUserProfileUseCase, updateUC *usecase.UpdateUserProfileUseCase) *UserHandler {
	return &UserHandler{GetUC: getUC, UpdateUC: updateUC}
}

func (h *UserHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.GetUC.Execute(r.Context(), auth.TokenFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	output, err := h.UpdateUC.Execute(r.Context(), auth.TokenFromContext(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
