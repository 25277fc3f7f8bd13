package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/infra/auth"
	"github.com/matefs/next-crm-api/internal/infra/http/middleware"
	"github.com/matefs/next-crm-api/internal/usecase"
)

type LeadHandler struct {
	ListUC   *usecase.ListLeadsUseCase
	CreateUC *usecase.CreateLeadUseCase
	UpdateUC *usecase.UpdateLeadUseCase
	DeleteUC *usecase.DeleteLeadUseCase
}

func NewLeadHandler(
	listUC *usecase.ListLeadsUseCase,
	createUC *usecase.CreateLeadUseCase,
	updateUC *usecase.UpdateLeadUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
) *LeadHandler {
	return &LeadHandler{
		ListUC:   listUC,
		CreateUC: createUC,
		UpdateUC: updateUC,
		DeleteUC: deleteUC,
	}
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.ListUC.Execute(r.Context(), auth.UserFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	output, err := h.CreateUC.Execute(r.Context(), auth.UserFromContext(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadCreated()
	writeJSON(w, http.StatusCreated, output)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	output, err := h.UpdateUC.Execute(r.Context(), auth.UserFromContext(r.Context()), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	output, err := h.DeleteUC.Execute(r.Context(), auth.UserFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadDeleted()
	writeJSON(w, http.StatusOK, output)
}

// HandleStatuses expõe o vocabulário para o front montar os dropdowns.
func (h *LeadHandler) HandleStatuses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, entity.LeadStatuses)
}
