package repository

import (
	"context"

	"dropmarks/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockSessionManager is a mock type for the SessionManager type
type MockSessionManager struct {
	mock.Mock
}

type MockSessionManager_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSessionManager) EXPECT() *MockSessionManager_Expecter {
	return &MockSessionManager_Expecter{mock: &_m.Mock}
}

// WithSession provides a mock function with given fields: ctx, fn
func (_m *MockSessionManager) WithSession(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	ret := _m.Called(ctx, fn)

	if rf, ok := ret.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return ret.Error(0)
}

type MockSessionManager_WithSession_Call struct {
	*mock.Call
}

func (_e *MockSessionManager_Expecter) WithSession(ctx interface{}, fn interface{}) *MockSessionManager_WithSession_Call {
	return &MockSessionManager_WithSession_Call{Call: _e.mock.On("WithSession", ctx, fn)}
}

func (_c *MockSessionManager_WithSession_Call) Run(run func(ctx context.Context, fn func(repository.RepositoryFactory) error)) *MockSessionManager_WithSession_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(func(repository.RepositoryFactory) error))
	})

	return _c
}

func (_c *MockSessionManager_WithSession_Call) Return(_a0 error) *MockSessionManager_WithSession_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockSessionManager_WithSession_Call) RunAndReturn(run func(context.Context, func(repository.RepositoryFactory) error) error) *MockSessionManager_WithSession_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockSessionManager creates a new instance of MockSessionManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSessionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionManager {
	m := &MockSessionManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockRepositoryFactory is a mock type for the RepositoryFactory type
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// NewUserRepository provides a mock function with no fields
func (_m *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	ret := _m.Called()

	if rf, ok := ret.Get(0).(func() repository.UserRepository); ok {
		return rf()
	}

	if ret.Get(0) == nil {
		return nil
	}

	return ret.Get(0).(repository.UserRepository)
}

type MockRepositoryFactory_NewUserRepository_Call struct {
	*mock.Call
}

func (_e *MockRepositoryFactory_Expecter) NewUserRepository() *MockRepositoryFactory_NewUserRepository_Call {
	return &MockRepositoryFactory_NewUserRepository_Call{Call: _e.mock.On("NewUserRepository")}
}

func (_c *MockRepositoryFactory_NewUserRepository_Call) Return(_a0 repository.UserRepository) *MockRepositoryFactory_NewUserRepository_Call {
	_c.Call.Return(_a0)

	return _c
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
