package service

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock type for the PasswordHasher type.
// It also satisfies HashComparator.
type MockPasswordHasher struct {
	mock.Mock
}

type MockPasswordHasher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordHasher) EXPECT() *MockPasswordHasher_Expecter {
	return &MockPasswordHasher_Expecter{mock: &_m.Mock}
}

// Check provides a mock function with given fields: password, hash
func (_m *MockPasswordHasher) Check(password string, hash string) (bool, error) {
	ret := _m.Called(password, hash)

	if rf, ok := ret.Get(0).(func(string, string) (bool, error)); ok {
		return rf(password, hash)
	}

	return ret.Bool(0), ret.Error(1)
}

type MockPasswordHasher_Check_Call struct {
	*mock.Call
}

func (_e *MockPasswordHasher_Expecter) Check(password interface{}, hash interface{}) *MockPasswordHasher_Check_Call {
	return &MockPasswordHasher_Check_Call{Call: _e.mock.On("Check", password, hash)}
}

func (_c *MockPasswordHasher_Check_Call) Return(_a0 bool, _a1 error) *MockPasswordHasher_Check_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockPasswordHasher_Check_Call) RunAndReturn(run func(string, string) (bool, error)) *MockPasswordHasher_Check_Call {
	_c.Call.Return(run)

	return _c
}

// Hash provides a mock function with given fields: password
func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	return ret.String(0), ret.Error(1)
}

type MockPasswordHasher_Hash_Call struct {
	*mock.Call
}

func (_e *MockPasswordHasher_Expecter) Hash(password interface{}) *MockPasswordHasher_Hash_Call {
	return &MockPasswordHasher_Hash_Call{Call: _e.mock.On("Hash", password)}
}

func (_c *MockPasswordHasher_Hash_Call) Return(_a0 string, _a1 error) *MockPasswordHasher_Hash_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// Scheme provides a mock function with no fields
func (_m *MockPasswordHasher) Scheme() string {
	ret := _m.Called()

	return ret.String(0)
}

type MockPasswordHasher_Scheme_Call struct {
	*mock.Call
}

func (_e *MockPasswordHasher_Expecter) Scheme() *MockPasswordHasher_Scheme_Call {
	return &MockPasswordHasher_Scheme_Call{Call: _e.mock.On("Scheme")}
}

func (_c *MockPasswordHasher_Scheme_Call) Return(_a0 string) *MockPasswordHasher_Scheme_Call {
	_c.Call.Return(_a0)

	return _c
}

// NewMockPasswordHasher creates a new instance of MockPasswordHasher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
