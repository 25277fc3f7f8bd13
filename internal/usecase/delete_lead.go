package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/logs"
)

type DeleteLeadUseCase struct {
	Repo LeadRepositoryInterface
}

func NewDeleteLeadUseCase(repo LeadRepositoryInterface) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{Repo: repo}
}

func (uc *DeleteLeadUseCase) Execute(ctx context.Context, user *entity.AuthUser, leadID string) (*ActionOutput, error) {
	if user == nil {
		return nil, ErrNotAuthenticated()
	}

	if strings.TrimSpace(leadID) == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "Lead é obrigatório"}
	}

	if err := uc.Repo.Delete(ctx, user.ID, leadID); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, ErrLeadNotAuthorized()
		}
		logs.Logger.WithError(err).Error("erro ao excluir lead")
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	return &ActionOutput{Success: "Lead excluído com sucesso!"}, nil
}
