// Package repository provides test doubles for the domain repository interfaces.
package repository

import (
	"context"

	"landhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCompanyRepository is a mock for repository.CompanyRepository.
type MockCompanyRepository struct {
	mock.Mock
}

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// NewMockCompanyRepository creates a mock wired to the test lifecycle.
// Expectations are asserted automatically on cleanup.
func NewMockCompanyRepository(t mockConstructorTestingT) *MockCompanyRepository {
	m := &MockCompanyRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockCompanyRepository) FindAll(ctx context.Context) ([]*entity.Company, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Company
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Company)
	}

	return r0, ret.Error(1)
}

func (_m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Company
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Company)
	}

	return r0, ret.Error(1)
}

func (_m *MockCompanyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Company, error) {
	ret := _m.Called(ctx, ids)

	var r0 []*entity.Company
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Company)
	}

	return r0, ret.Error(1)
}

func (_m *MockCompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	ret := _m.Called(ctx, company)

	return ret.Error(0)
}

func (_m *MockCompanyRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*entity.Company, error) {
	ret := _m.Called(ctx, id, changes)

	var r0 *entity.Company
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Company)
	}

	return r0, ret.Error(1)
}

func (_m *MockCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}
