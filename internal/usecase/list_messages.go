package usecase

import (
	"context"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/logs"
)

type ListMessagesUseCase struct {
	Repo MessageRepositoryInterface
}

func NewListMessagesUseCase(repo MessageRepositoryInterface) *ListMessagesUseCase {
	return &ListMessagesUseCase{Repo: repo}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, user *entity.AuthUser) ([]entity.MessageWithLead, error) {
	if user == nil {
		return nil, ErrNotAuthenticated()
	}

	messages, err := uc.Repo.FindAllByUser(ctx, user.ID)
	if err != nil {
		logs.Logger.WithError(err).Error("erro ao buscar mensagens")
		return nil, &TechnicalError{Code: CodeDatabase, Message: "Erro ao buscar mensagens"}
	}

	return messages, nil
}
