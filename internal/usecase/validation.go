package usecase

import (
	"fmt"
	"strings"

	"github.com/matefs/next-crm-api/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateLeadInput(input LeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "Nome é obrigatório"})
	}

	if input.Status != "" && !entity.ValidStatus(input.Status) {
		errors = append(errors, ValidationError{"status", "Status inválido"})
	}

	return errors
}

func ValidateSendMessageInput(input SendMessageInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.LeadID) == "" {
		errors = append(errors, ValidationError{"lead_id", "Lead é obrigatório"})
	}

	if strings.TrimSpace(input.Message) == "" {
		errors = append(errors, ValidationError{"message", "Mensagem é obrigatória"})
	}

	return errors
}

func ValidateBulkMessageInput(input BulkMessageInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Message) == "" {
		errors = append(errors, ValidationError{"message", "Mensagem é obrigatória"})
	}

	if len(input.LeadIDs) == 0 {
		errors = append(errors, ValidationError{"selected_leads", "Selecione pelo menos um lead"})
	}

	return errors
}

// validationError achata os erros de campo no envelope de domínio que os
// handlers devolvem ao formulário.
func validationError(errs []ValidationError) *DomainError {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return &DomainError{Code: CodeValidation, Message: strings.Join(msgs, "; ")}
}
