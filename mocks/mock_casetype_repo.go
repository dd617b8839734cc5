package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lexconnect/internal/domain"
)

// MockCaseTypeRepo is a mock implementation of port.CaseTypeRepository.
type MockCaseTypeRepo struct {
	mock.Mock
}

func (m *MockCaseTypeRepo) ListSubtypes(ctx context.Context) ([]domain.CaseSubtype, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CaseSubtype), args.Error(1)
}

func (m *MockCaseTypeRepo) ListSubtypesByBase(ctx context.Context, baseType domain.CaseBaseType) ([]domain.CaseSubtype, error) {
	args := m.Called(ctx, baseType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CaseSubtype), args.Error(1)
}

func (m *MockCaseTypeRepo) CreateSubtype(ctx context.Context, s *domain.CaseSubtype) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
