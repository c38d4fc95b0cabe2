package repository

import (
	"context"

	"landhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRequirementRepository is a mock for repository.RequirementRepository.
type MockRequirementRepository struct {
	mock.Mock
}

// NewMockRequirementRepository creates a mock wired to the test lifecycle.
func NewMockRequirementRepository(t mockConstructorTestingT) *MockRequirementRepository {
	m := &MockRequirementRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockRequirementRepository) FindAll(ctx context.Context) ([]*entity.Requirement, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Requirement
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Requirement)
	}

	return r0, ret.Error(1)
}

func (_m *MockRequirementRepository) Create(ctx context.Context, requirement *entity.Requirement) error {
	ret := _m.Called(ctx, requirement)

	return ret.Error(0)
}

func (_m *MockRequirementRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InquiryStatus) (*entity.Requirement, error) {
	ret := _m.Called(ctx, id, status)

	var r0 *entity.Requirement
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Requirement)
	}

	return r0, ret.Error(1)
}
