package usecase

import (
	"context"
	"fmt"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/logs"
)

type SendMessageUseCase struct {
	LeadRepo    LeadRepositoryInterface
	MessageRepo MessageRepositoryInterface
}

func NewSendMessageUseCase(leadRepo LeadRepositoryInterface, messageRepo MessageRepositoryInterface) *SendMessageUseCase {
	return &SendMessageUseCase{LeadRepo: leadRepo, MessageRepo: messageRepo}
}

// Execute grava uma mensagem para um lead do usuário. O lookup do lead é a
// checagem de posse: qualquer falha ali vira o mesmo "não encontrado ou não
// autorizado", inclusive id malformado.
func (uc *SendMessageUseCase) Execute(ctx context.Context, user *entity.AuthUser, input SendMessageInput) (*ActionOutput, error) {
	if user == nil {
		return nil, ErrNotAuthenticated()
	}

	if errs := ValidateSendMessageInput(input); len(errs) > 0 {
		return nil, validationError(errs)
	}

	lead, err := uc.LeadRepo.FindOwned(ctx, user.ID, input.LeadID)
	if err != nil {
		return nil, ErrLeadNotAuthorized()
	}

	message := entity.NewMessage(user.ID, lead.ID, input.Message)
	if err := uc.MessageRepo.Create(ctx, message); err != nil {
		logs.Logger.WithError(err).Error("erro ao enviar mensagem")
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	return &ActionOutput{Success: fmt.Sprintf("Mensagem enviada para %s com sucesso!", lead.Name)}, nil
}
