// Package service provides test doubles for the domain service interfaces.
package service

import (
	"context"
	"io"

	domainservice "landhub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockTokenService is a mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock wired to the test lifecycle.
func NewMockTokenService(t mockConstructorTestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockTokenService) GenerateAdminToken(email string) (string, error) {
	ret := _m.Called(email)

	return ret.String(0), ret.Error(1)
}

func (_m *MockTokenService) ValidateToken(tokenString string) (*jwt.Token, error) {
	ret := _m.Called(tokenString)

	var r0 *jwt.Token
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*jwt.Token)
	}

	return r0, ret.Error(1)
}

// MockPasswordHasher is a mock for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock wired to the test lifecycle.
func NewMockPasswordHasher(t mockConstructorTestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (_m *MockPasswordHasher) Check(password, hash string) bool {
	ret := _m.Called(password, hash)

	return ret.Bool(0)
}

// MockObjectStorage is a mock for service.ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

// NewMockObjectStorage creates a mock wired to the test lifecycle.
func NewMockObjectStorage(t mockConstructorTestingT) *MockObjectStorage {
	m := &MockObjectStorage{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockObjectStorage) Upload(ctx context.Context, folder, filename, contentType string, content io.Reader) (*domainservice.StoredObject, error) {
	ret := _m.Called(ctx, folder, filename, contentType, content)

	var r0 *domainservice.StoredObject
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domainservice.StoredObject)
	}

	return r0, ret.Error(1)
}

// MockQRCodeService is a mock for service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates a mock wired to the test lifecycle.
func NewMockQRCodeService(t mockConstructorTestingT) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockQRCodeService) GeneratePNG(content string) ([]byte, error) {
	ret := _m.Called(content)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}
