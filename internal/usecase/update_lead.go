package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/logs"
)

type UpdateLeadUseCase struct {
	Repo LeadRepositoryInterface
}

func NewUpdateLeadUseCase(repo LeadRepositoryInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Repo: repo}
}

// Execute substitui os campos do lead. O UPDATE é escopado por
// (id, user_id): mexer no lead de outro usuário cai no mesmo
// "não encontrado ou não autorizado" da leitura.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, user *entity.AuthUser, leadID string, input LeadInput) (*ActionOutput, error) {
	if user == nil {
		return nil, ErrNotAuthenticated()
	}

	if strings.TrimSpace(leadID) == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "Lead é obrigatório"}
	}

	if errs := ValidateLeadInput(input); len(errs) > 0 {
		return nil, validationError(errs)
	}

	// Status vazio segue vazio: o repositório entende como "mantém o
	// status que já está no banco". O default de novo é só do create.
	lead := &entity.Lead{
		ID:        leadID,
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Company:   strings.TrimSpace(input.Company),
		Status:    input.Status,
		Notes:     input.Notes,
		UpdatedAt: time.Now(),
		UserID:    user.ID,
	}

	if err := uc.Repo.Update(ctx, user.ID, lead); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, ErrLeadNotAuthorized()
		}
		logs.Logger.WithError(err).Error("erro ao atualizar lead")
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	return &ActionOutput{Success: "Lead atualizado com sucesso!"}, nil
}
