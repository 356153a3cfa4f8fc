package usecase

import (
	"context"

	"dropmarks/internal/domain/entity"
	"dropmarks/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockCredentialVerifier is a mock type for the CredentialVerifier type
type MockCredentialVerifier struct {
	mock.Mock
}

type MockCredentialVerifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCredentialVerifier) EXPECT() *MockCredentialVerifier_Expecter {
	return &MockCredentialVerifier_Expecter{mock: &_m.Mock}
}

// Verify provides a mock function with given fields: ctx, credentials
func (_m *MockCredentialVerifier) Verify(ctx context.Context, credentials entity.Credentials) (*usecase.VerificationResult, error) {
	ret := _m.Called(ctx, credentials)

	var r0 *usecase.VerificationResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.VerificationResult)
	}

	return r0, ret.Error(1)
}

type MockCredentialVerifier_Verify_Call struct {
	*mock.Call
}

func (_e *MockCredentialVerifier_Expecter) Verify(ctx interface{}, credentials interface{}) *MockCredentialVerifier_Verify_Call {
	return &MockCredentialVerifier_Verify_Call{Call: _e.mock.On("Verify", ctx, credentials)}
}

func (_c *MockCredentialVerifier_Verify_Call) Return(_a0 *usecase.VerificationResult, _a1 error) *MockCredentialVerifier_Verify_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// NewMockCredentialVerifier creates a new instance of MockCredentialVerifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCredentialVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialVerifier {
	m := &MockCredentialVerifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
