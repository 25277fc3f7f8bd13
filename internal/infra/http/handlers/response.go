package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/matefs/next-crm-api/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, statusForCode(domainErr.Code), errorResponse{Error: domainErr.Message})
		return
	}

	var techErr *usecase.TechnicalError
	if errors.As(err, &techErr) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: techErr.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func statusForCode(code string) int {
	switch code {
	case usecase.CodeValidation, usecase.CodeAuthUpdateFailed:
		return http.StatusBadRequest
	case usecase.CodeNotAuthenticated:
		return http.StatusUnauthorized
	case usecase.CodeLeadNotFound:
		return http.StatusNotFound
	case usecase.CodeLeadsNotAuthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
