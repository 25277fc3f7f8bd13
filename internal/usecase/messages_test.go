package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/matefs/next-crm-api/internal/entity"
)

func TestSendMessageSuccess(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("FindOwned", mock.Anything, "user-1", "lead-1").
		Return(&entity.Lead{ID: "lead-1", Name: "Maria", UserID: "user-1"}, nil)

	messageRepo := new(MockMessageRepository)
	messageRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *entity.Message) bool {
		return m.LeadID == "lead-1" &&
			m.UserID == "user-1" &&
			m.Message == "Olá, tudo bem?" &&
			m.Status == entity.MessageStatusSent
	})).Return(nil)

	uc := NewSendMessageUseCase(leadRepo, messageRepo)
	output, err := uc.Execute(context.Background(), caller(),
		SendMessageInput{LeadID: "lead-1", Message: "  Olá, tudo bem?  "})

	assert.NoError(t, err)
	assert.Equal(t, "Mensagem enviada para Maria com sucesso!", output.Success)
	messageRepo.AssertExpectations(t)
}

func TestSendMessageLeadDeOutroUsuario(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("FindOwned", mock.Anything, "user-1", "lead-do-outro").
		Return(nil, entity.ErrLeadNotFound)

	messageRepo := new(MockMessageRepository)

	uc := NewSendMessageUseCase(leadRepo, messageRepo)
	_, err := uc.Execute(context.Background(), caller(),
		SendMessageInput{LeadID: "lead-do-outro", Message: "Olá"})

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeLeadNotFound, domainErr.Code)
	assert.Equal(t, "Lead não encontrado ou não autorizado", domainErr.Message)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendMessageValidacao(t *testing.T) {
	uc := NewSendMessageUseCase(new(MockLeadRepository), new(MockMessageRepository))

	_, err := uc.Execute(context.Background(), caller(), SendMessageInput{LeadID: "", Message: "Olá"})
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Lead é obrigatório", domainErr.Message)

	_, err = uc.Execute(context.Background(), caller(), SendMessageInput{LeadID: "lead-1", Message: "   "})
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Mensagem é obrigatória", domainErr.Message)
}

func TestSendBulkMessageSuccess(t *testing.T) {
	ids := []string{"lead-1", "lead-2", "lead-3"}
	leads := []entity.Lead{
		{ID: "lead-1", Name: "Ana"},
		{ID: "lead-2", Name: "Bruna"},
		{ID: "lead-3", Name: "Clara"},
	}

	leadRepo := new(MockLeadRepository)
	leadRepo.On("FindOwnedByIDs", mock.Anything, "user-1", ids).Return(leads, nil)

	messageRepo := new(MockMessageRepository)
	messageRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(messages []entity.Message) bool {
		if len(messages) != 3 {
			return false
		}
		for _, m := range messages {
			if m.Message != "Promoção de junho" || m.Status != entity.MessageStatusSent || m.UserID != "user-1" {
				return false
			}
		}
		return true
	})).Return(nil)

	uc := NewSendBulkMessageUseCase(leadRepo, messageRepo)
	output, err := uc.Execute(context.Background(), caller(),
		BulkMessageInput{Message: " Promoção de junho ", LeadIDs: ids})

	assert.NoError(t, err)
	assert.Equal(t, "Mensagem enviada para 3 lead(s) com sucesso!", output.Success)
	messageRepo.AssertExpectations(t)
}

func TestSendBulkMessageTudoOuNada(t *testing.T) {
	ids := []string{"lead-1", "lead-2", "lead-do-outro"}

	// um dos ids não é do usuário: o SELECT escopado devolve só dois
	leadRepo := new(MockLeadRepository)
	leadRepo.On("FindOwnedByIDs", mock.Anything, "user-1", ids).Return([]entity.Lead{
		{ID: "lead-1", Name: "Ana"},
		{ID: "lead-2", Name: "Bruna"},
	}, nil)

	messageRepo := new(MockMessageRepository)

	uc := NewSendBulkMessageUseCase(leadRepo, messageRepo)
	_, err := uc.Execute(context.Background(), caller(),
		BulkMessageInput{Message: "Olá", LeadIDs: ids})

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeLeadsNotAuthorized, domainErr.Code)
	assert.Equal(t, "Alguns leads não foram encontrados ou não são autorizados", domainErr.Message)
	messageRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestSendBulkMessageValidacao(t *testing.T) {
	uc := NewSendBulkMessageUseCase(new(MockLeadRepository), new(MockMessageRepository))

	_, err := uc.Execute(context.Background(), caller(), BulkMessageInput{Message: "Olá"})
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Selecione pelo menos um lead", domainErr.Message)

	_, err = uc.Execute(context.Background(), caller(),
		BulkMessageInput{Message: "  ", LeadIDs: []string{"lead-1"}})
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Mensagem é obrigatória", domainErr.Message)
}

func TestListMessages(t *testing.T) {
	messages := []entity.MessageWithLead{
		{Message: entity.Message{ID: "m-2"}, LeadName: "Bruna"},
		{Message: entity.Message{ID: "m-1"}, LeadName: "Ana"},
	}
	repo := new(MockMessageRepository)
	repo.On("FindAllByUser", mock.Anything, "user-1").Return(messages, nil)

	uc := NewListMessagesUseCase(repo)
	got, err := uc.Execute(context.Background(), caller())

	assert.NoError(t, err)
	assert.Equal(t, messages, got)
}

func TestListMessagesFalhaDeBanco(t *testing.T) {
	repo := new(MockMessageRepository)
	repo.On("FindAllByUser", mock.Anything, "user-1").Return(nil, errors.New("timeout"))

	uc := NewListMessagesUseCase(repo)
	_, err := uc.Execute(context.Background(), caller())

	var techErr *TechnicalError
	assert.ErrorAs(t, err, &techErr)
	assert.Equal(t, CodeDatabase, techErr.Code)
}
