package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/infra/auth/gotrue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Update(ctx context.Context, userID string, lead *entity.Lead) error {
	args := m.Called(ctx, userID, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, userID, leadID string) error {
	args := m.Called(ctx, userID, leadID)
	return args.Error(0)
}

func (m *MockLeadRepository) FindAllByUser(ctx context.Context, userID string) ([]entity.Lead, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindOwned(ctx context.Context, userID, leadID string) (*entity.Lead, error) {
	args := m.Called(ctx, userID, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindOwnedByIDs(ctx context.Context, userID string, leadIDs []string) ([]entity.Lead, error) {
	args := m.Called(ctx, userID, leadIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListForStats(ctx context.Context, userID string) ([]entity.Lead, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

// MockMessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) CreateBatch(ctx context.Context, messages []entity.Message) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

func (m *MockMessageRepository) FindAllByUser(ctx context.Context, userID string) ([]entity.MessageWithLead, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MessageWithLead), args.Error(1)
}

// MockAuthGateway
type MockAuthGateway struct {
	mock.Mock
}

func (m *MockAuthGateway) GetUser(ctx context.Context, accessToken string) (*entity.UserProfile, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *MockAuthGateway) UpdateUser(ctx context.Context, accessToken string, input gotrue.UpdateUserInput) error {
	args := m.Called(ctx, accessToken, input)
	return args.Error(0)
}

func caller() *entity.AuthUser {
	return &entity.AuthUser{ID: "user-1", Email: "ana@example.com"}
}
