// Package usecase provides test doubles for the usecase interfaces.
package usecase

import (
	"context"

	"landhub/internal/domain/entity"
	"landhub/internal/domain/service"
	appusecase "landhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockCompanyUsecase is a mock for usecase.CompanyUsecase.
type MockCompanyUsecase struct {
	mock.Mock
}

// NewMockCompanyUsecase creates a mock wired to the test lifecycle.
func NewMockCompanyUsecase(t mockConstructorTestingT) *MockCompanyUsecase {
	m := &MockCompanyUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockCompanyUsecase) List(ctx context.Context) ([]*entity.Company, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Company
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Company)
	}

	return r0, ret.Error(1)
}

func (_m *MockCompanyUsecase) Create(ctx context.Context, input *appusecase.CreateCompanyInput) (*entity.Company, error) {
	ret := _m.Called(ctx, input)

	var r0 *entity.Company
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Company)
	}

	return r0, ret.Error(1)
}

func (_m *MockCompanyUsecase) Update(ctx context.Context, input *appusecase.UpdateCompanyInput) (*entity.Company, error) {
	ret := _m.Called(ctx, input)

	var r0 *entity.Company
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Company)
	}

	return r0, ret.Error(1)
}

func (_m *MockCompanyUsecase) Delete(ctx context.Context, input *appusecase.DeleteCompanyInput) error {
	ret := _m.Called(ctx, input)

	return ret.Error(0)
}

// MockLandUsecase is a mock for usecase.LandUsecase.
type MockLandUsecase struct {
	mock.Mock
}

// NewMockLandUsecase creates a mock wired to the test lifecycle.
func NewMockLandUsecase(t mockConstructorTestingT) *MockLandUsecase {
	m := &MockLandUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockLandUsecase) List(ctx context.Context, companyID *uuid.UUID) ([]*entity.Land, error) {
	ret := _m.Called(ctx, companyID)

	var r0 []*entity.Land
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Land)
	}

	return r0, ret.Error(1)
}

func (_m *MockLandUsecase) Create(ctx context.Context, input *appusecase.CreateLandInput) (*entity.Land, error) {
	ret := _m.Called(ctx, input)

	var r0 *entity.Land
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Land)
	}

	return r0, ret.Error(1)
}

func (_m *MockLandUsecase) Update(ctx context.Context, input *appusecase.UpdateLandInput) (*entity.Land, error) {
	ret := _m.Called(ctx, input)

	var r0 *entity.Land
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Land)
	}

	return r0, ret.Error(1)
}

func (_m *MockLandUsecase) Delete(ctx context.Context, input *appusecase.DeleteLandInput) error {
	ret := _m.Called(ctx, input)

	return ret.Error(0)
}

func (_m *MockLandUsecase) ContactQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	ret := _m.Called(ctx, id)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

// MockRequirementUsecase is a mock for usecase.RequirementUsecase.
type MockRequirementUsecase struct {
	mock.Mock
}

// NewMockRequirementUsecase creates a mock wired to the test lifecycle.
func NewMockRequirementUsecase(t mockConstructorTestingT) *MockRequirementUsecase {
	m := &MockRequirementUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockRequirementUsecase) List(ctx context.Context) ([]*entity.Requirement, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Requirement
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Requirement)
	}

	return r0, ret.Error(1)
}

func (_m *MockRequirementUsecase) Create(ctx context.Context, input *appusecase.CreateRequirementInput) (*entity.Requirement, error) {
	ret := _m.Called(ctx, input)

	var r0 *entity.Requirement
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Requirement)
	}

	return r0, ret.Error(1)
}

func (_m *MockRequirementUsecase) UpdateStatus(ctx context.Context, input *appusecase.UpdateRequirementStatusInput) (*entity.Requirement, error) {
	ret := _m.Called(ctx, input)

	var r0 *entity.Requirement
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Requirement)
	}

	return r0, ret.Error(1)
}

// MockAdminUsecase is a mock for usecase.AdminUsecase.
type MockAdminUsecase struct {
	mock.Mock
}

// NewMockAdminUsecase creates a mock wired to the test lifecycle.
func NewMockAdminUsecase(t mockConstructorTestingT) *MockAdminUsecase {
	m := &MockAdminUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockAdminUsecase) Login(ctx context.Context, input *appusecase.LoginInput) (*appusecase.LoginOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *appusecase.LoginOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*appusecase.LoginOutput)
	}

	return r0, ret.Error(1)
}

// MockUploadUsecase is a mock for usecase.UploadUsecase.
type MockUploadUsecase struct {
	mock.Mock
}

// NewMockUploadUsecase creates a mock wired to the test lifecycle.
func NewMockUploadUsecase(t mockConstructorTestingT) *MockUploadUsecase {
	m := &MockUploadUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockUploadUsecase) Upload(ctx context.Context, input *appusecase.UploadInput) (*service.StoredObject, error) {
	ret := _m.Called(ctx, input)

	var r0 *service.StoredObject
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.StoredObject)
	}

	return r0, ret.Error(1)
}
