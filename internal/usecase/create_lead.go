package usecase

import (
	"context"
	"strings"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/logs"
)

type CreateLeadUseCase struct {
	Repo LeadRepositoryInterface
}

func NewCreateLeadUseCase(repo LeadRepositoryInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{Repo: repo}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, user *entity.AuthUser, input LeadInput) (*ActionOutput, error) {
	if user == nil {
		return nil, ErrNotAuthenticated()
	}

	if errs := ValidateLeadInput(input); len(errs) > 0 {
		return nil, validationError(errs)
	}

	lead := entity.NewLead(user.ID, strings.TrimSpace(input.Name))
	lead.Email = strings.TrimSpace(input.Email)
	lead.Phone = strings.TrimSpace(input.Phone)
	lead.Company = strings.TrimSpace(input.Company)
	lead.Notes = input.Notes
	if input.Status != "" {
		lead.Status = input.Status
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		logs.Logger.WithError(err).Error("erro ao criar lead")
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	return &ActionOutput{Success: "Lead criado com sucesso!"}, nil
}
