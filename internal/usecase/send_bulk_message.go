package usecase

import (
	"context"
	"fmt"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/logs"
)

type SendBulkMessageUseCase struct {
	LeadRepo    LeadRepositoryInterface
	MessageRepo MessageRepositoryInterface
}

func NewSendBulkMessageUseCase(leadRepo LeadRepositoryInterface, messageRepo MessageRepositoryInterface) *SendBulkMessageUseCase {
	return &SendBulkMessageUseCase{LeadRepo: leadRepo, MessageRepo: messageRepo}
}

// Execute é tudo-ou-nada: se qualquer id pedido não for um lead do usuário,
// nenhuma mensagem é gravada. A gravação em si é um único INSERT multi-linha,
// então não existe entrega parcial nem por falha no meio do lote.
func (uc *SendBulkMessageUseCase) Execute(ctx context.Context, user *entity.AuthUser, input BulkMessageInput) (*ActionOutput, error) {
	if user == nil {
		return nil, ErrNotAuthenticated()
	}

	if errs := ValidateBulkMessageInput(input); len(errs) > 0 {
		return nil, validationError(errs)
	}

	leads, err := uc.LeadRepo.FindOwnedByIDs(ctx, user.ID, input.LeadIDs)
	if err != nil || len(leads) != len(input.LeadIDs) {
		return nil, &DomainError{
			Code:    CodeLeadsNotAuthorized,
			Message: "Alguns leads não foram encontrados ou não são autorizados",
		}
	}

	messages := make([]entity.Message, 0, len(leads))
	for _, lead := range leads {
		messages = append(messages, *entity.NewMessage(user.ID, lead.ID, input.Message))
	}

	if err := uc.MessageRepo.CreateBatch(ctx, messages); err != nil {
		logs.Logger.WithError(err).Error("erro ao enviar mensagens em massa")
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	return &ActionOutput{Success: fmt.Sprintf("Mensagem enviada para %d lead(s) com sucesso!", len(leads))}, nil
}
