package usecase

import (
	"context"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/logs"
)

type ListLeadsUseCase struct {
	Repo LeadRepositoryInterface
}

func NewListLeadsUseCase(repo LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

// Execute devolve os leads do usuário, mais recente primeiro. Falha de
// banco vira erro explícito: quem chama distingue "vazio" de "fora do ar".
func (uc *ListLeadsUseCase) Execute(ctx context.Context, user *entity.AuthUser) ([]entity.Lead, error) {
	if user == nil {
		return nil, ErrNotAuthenticated()
	}

	leads, err := uc.Repo.FindAllByUser(ctx, user.ID)
	if err != nil {
		logs.Logger.WithError(err).Error("erro ao buscar leads")
		return nil, &TechnicalError{Code: CodeDatabase, Message: "Erro ao buscar leads"}
	}

	return leads, nil
}
