package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
	"github.com/Farhaan96/CollisionOS-sub009/internal/service"
)

// MockImportService is a mock implementation of service.ImportService.
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) Import(ctx context.Context, input *service.ImportInput) (*service.ImportOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportOutput), args.Error(1)
}

func (m *MockImportService) ProcessImport(ctx context.Context, imp *domain.EstimateImport) {
	m.Called(ctx, imp)
}
