package repository

import (
	"context"

	"dropmarks/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock type for the UserRepository type
type MockUserRepository struct {
	mock.Mock
}

type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &_m.Mock}
}

func userResult(ret mock.Arguments, call func() (*entity.User, error)) (*entity.User, error) {
	if call != nil {
		return call()
	}

	var user *entity.User
	if ret.Get(0) != nil {
		user = ret.Get(0).(*entity.User)
	}

	return user, ret.Error(1)
}

// FindByUsername provides a mock function with given fields: ctx, username
func (_m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	ret := _m.Called(ctx, username)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.User, error)); ok {
		return userResult(ret, func() (*entity.User, error) { return rf(ctx, username) })
	}

	return userResult(ret, nil)
}

type MockUserRepository_FindByUsername_Call struct {
	*mock.Call
}

func (_e *MockUserRepository_Expecter) FindByUsername(ctx interface{}, username interface{}) *MockUserRepository_FindByUsername_Call {
	return &MockUserRepository_FindByUsername_Call{Call: _e.mock.On("FindByUsername", ctx, username)}
}

func (_c *MockUserRepository_FindByUsername_Call) Return(_a0 *entity.User, _a1 error) *MockUserRepository_FindByUsername_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockUserRepository_FindByUsername_Call) RunAndReturn(run func(context.Context, string) (*entity.User, error)) *MockUserRepository_FindByUsername_Call {
	_c.Call.Return(run)

	return _c
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.User, error)); ok {
		return userResult(ret, func() (*entity.User, error) { return rf(ctx, id) })
	}

	return userResult(ret, nil)
}

type MockUserRepository_FindByID_Call struct {
	*mock.Call
}

func (_e *MockUserRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockUserRepository_FindByID_Call {
	return &MockUserRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockUserRepository_FindByID_Call) Return(_a0 *entity.User, _a1 error) *MockUserRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// Create provides a mock function with given fields: ctx, user
func (_m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)

	if rf, ok := ret.Get(0).(func(context.Context, *entity.User) error); ok {
		return rf(ctx, user)
	}

	return ret.Error(0)
}

type MockUserRepository_Create_Call struct {
	*mock.Call
}

func (_e *MockUserRepository_Expecter) Create(ctx interface{}, user interface{}) *MockUserRepository_Create_Call {
	return &MockUserRepository_Create_Call{Call: _e.mock.On("Create", ctx, user)}
}

func (_c *MockUserRepository_Create_Call) Run(run func(ctx context.Context, user *entity.User)) *MockUserRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.User))
	})

	return _c
}

func (_c *MockUserRepository_Create_Call) Return(_a0 error) *MockUserRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

// UpdatePasswordHash provides a mock function with given fields: ctx, username, passwordHash
func (_m *MockUserRepository) UpdatePasswordHash(ctx context.Context, username string, passwordHash string) error {
	ret := _m.Called(ctx, username, passwordHash)

	return ret.Error(0)
}

type MockUserRepository_UpdatePasswordHash_Call struct {
	*mock.Call
}

func (_e *MockUserRepository_Expecter) UpdatePasswordHash(ctx interface{}, username interface{}, passwordHash interface{}) *MockUserRepository_UpdatePasswordHash_Call {
	return &MockUserRepository_UpdatePasswordHash_Call{Call: _e.mock.On("UpdatePasswordHash", ctx, username, passwordHash)}
}

func (_c *MockUserRepository_UpdatePasswordHash_Call) Return(_a0 error) *MockUserRepository_UpdatePasswordHash_Call {
	_c.Call.Return(_a0)

	return _c
}

// DeleteByUsername provides a mock function with given fields: ctx, username
func (_m *MockUserRepository) DeleteByUsername(ctx context.Context, username string) error {
	ret := _m.Called(ctx, username)

	return ret.Error(0)
}

type MockUserRepository_DeleteByUsername_Call struct {
	*mock.Call
}

func (_e *MockUserRepository_Expecter) DeleteByUsername(ctx interface{}, username interface{}) *MockUserRepository_DeleteByUsername_Call {
	return &MockUserRepository_DeleteByUsername_Call{Call: _e.mock.On("DeleteByUsername", ctx, username)}
}

func (_c *MockUserRepository_DeleteByUsername_Call) Return(_a0 error) *MockUserRepository_DeleteByUsername_Call {
	_c.Call.Return(_a0)

	return _c
}

// NewMockUserRepository creates a new instance of MockUserRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
