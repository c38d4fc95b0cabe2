package repository

import (
	"context"

	"landhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLandRepository is a mock for repository.LandRepository.
type MockLandRepository struct {
	mock.Mock
}

// NewMockLandRepository creates a mock wired to the test lifecycle.
func NewMockLandRepository(t mockConstructorTestingT) *MockLandRepository {
	m := &MockLandRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockLandRepository) FindAll(ctx context.Context, companyID *uuid.UUID) ([]*entity.Land, error) {
	ret := _m.Called(ctx, companyID)

	var r0 []*entity.Land
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Land)
	}

	return r0, ret.Error(1)
}

func (_m *MockLandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Land, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Land
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Land)
	}

	return r0, ret.Error(1)
}

func (_m *MockLandRepository) Create(ctx context.Context, land *entity.Land) error {
	ret := _m.Called(ctx, land)

	return ret.Error(0)
}

func (_m *MockLandRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*entity.Land, error) {
	ret := _m.Called(ctx, id, changes)

	var r0 *entity.Land
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Land)
	}

	return r0, ret.Error(1)
}

func (_m *MockLandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_m *MockLandRepository) CountByCompany(ctx context.Context) (map[uuid.UUID]int64, error) {
	ret := _m.Called(ctx)

	var r0 map[uuid.UUID]int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[uuid.UUID]int64)
	}

	return r0, ret.Error(1)
}
