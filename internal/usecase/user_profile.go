package usecase

import (
	"context"
	"strings"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/infra/auth/gotrue"
	"github.com/matefs/next-crm-api/internal/logs"
)

type GetUserProfileUseCase struct {
	Auth AuthGatewayInterface
}

func NewGetUserProfileUseCase(auth AuthGatewayInterface) *GetUserProfileUseCase {
	return &GetUserProfileUseCase{Auth: auth}
}

// Execute busca o perfil completo no GoTrue com o token do próprio usuário.
// O token só carrega as claims; created_at e last_sign_in_at vêm de lá.
func (uc *GetUserProfileUseCase) Execute(ctx context.Context, accessToken string) (*entity.UserProfile, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, ErrNotAuthenticated()
	}

	profile, err := uc.Auth.GetUser(ctx, accessToken)
	if err != nil {
		logs.Logger.WithError(err).Error("erro ao buscar perfil do usuário")
		return nil, &TechnicalError{Code: CodeAuthGateway, Message: "Erro ao buscar perfil do usuário"}
	}

	return profile, nil
}

type UpdateUserProfileUseCase struct {
	Auth AuthGatewayInterface
}

func NewUpdateUserProfileUseCase(auth AuthGatewayInterface) *UpdateUserProfileUseCase {
	return &UpdateUserProfileUseCase{Auth: auth}
}

// Execute repassa full_name e phone para o update do próprio GoTrue, sem
// validação local; erro do subsistema volta com a mensagem original.
func (uc *UpdateUserProfileUseCase) Execute(ctx context.Context, accessToken string, input UpdateProfileInput) (*ActionOutput, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, ErrNotAuthenticated()
	}

	patch := gotrue.UpdateUserInput{
		Phone: strings.TrimSpace(input.Phone),
		Data: gotrue.UserData{
			FullName: strings.TrimSpace(input.FullName),
		},
	}

	if err := uc.Auth.UpdateUser(ctx, accessToken, patch); err != nil {
		return nil, &DomainError{Code: CodeAuthUpdateFailed, Message: err.Error()}
	}

	return &ActionOutput{Success: "Perfil atualizado com sucesso!"}, nil
}
