package usecase

import (
	"context"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/infra/auth/gotrue"
)

// Todos os métodos de leitura/escrita recebem o userID dono: não existe
// query sem escopo de dono neste repositório.
type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	Update(ctx context.Context, userID string, lead *entity.Lead) error
	Delete(ctx context.Context, userID, leadID string) error
	FindAllByUser(ctx context.Context, userID string) ([]entity.Lead, error)
	FindOwned(ctx context.Context, userID, leadID string) (*entity.Lead, error)
	FindOwnedByIDs(ctx context.Context, userID string, leadIDs []string) ([]entity.Lead, error)
	ListForStats(ctx context.Context, userID string) ([]entity.Lead, error)
}

type MessageRepositoryInterface interface {
	Create(ctx context.Context, message *entity.Message) error
	CreateBatch(ctx context.Context, messages []entity.Message) error
	FindAllByUser(ctx context.Context, userID string) ([]entity.MessageWithLead, error)
}

type AuthGatewayInterface interface {
	GetUser(ctx context.Context, accessToken string) (*entity.UserProfile, error)
	UpdateUser(ctx context.Context, accessToken string, input gotrue.UpdateUserInput) error
}
