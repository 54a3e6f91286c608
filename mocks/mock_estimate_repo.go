package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
)

// MockEstimateRepository is a mock implementation of port.EstimateRepository.
type MockEstimateRepository struct {
	mock.Mock
}

func (m *MockEstimateRepository) CreateImport(ctx context.Context, imp *domain.EstimateImport) error {
	args := m.Called(ctx, imp)
	return args.Error(0)
}

func (m *MockEstimateRepository) SaveResult(ctx context.Context, importID uuid.UUID, result *domain.ParseResult) error {
	args := m.Called(ctx, importID, result)
	return args.Error(0)
}

func (m *MockEstimateRepository) MarkFailed(ctx context.Context, importID uuid.UUID, parseErr string) error {
	args := m.Called(ctx, importID, parseErr)
	return args.Error(0)
}

func (m *MockEstimateRepository) ClaimPending(ctx context.Context, limit int) ([]domain.EstimateImport, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EstimateImport), args.Error(1)
}
