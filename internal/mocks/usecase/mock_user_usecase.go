package usecase

import (
	"context"

	"dropmarks/internal/domain/entity"
	"dropmarks/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a mock type for the UserUsecase type
type MockUserUsecase struct {
	mock.Mock
}

type MockUserUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserUsecase) EXPECT() *MockUserUsecase_Expecter {
	return &MockUserUsecase_Expecter{mock: &_m.Mock}
}

// CreateUser provides a mock function with given fields: ctx, input
func (_m *MockUserUsecase) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	ret := _m.Called(ctx, input)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

type MockUserUsecase_CreateUser_Call struct {
	*mock.Call
}

func (_e *MockUserUsecase_Expecter) CreateUser(ctx interface{}, input interface{}) *MockUserUsecase_CreateUser_Call {
	return &MockUserUsecase_CreateUser_Call{Call: _e.mock.On("CreateUser", ctx, input)}
}

func (_c *MockUserUsecase_CreateUser_Call) Return(_a0 *entity.User, _a1 error) *MockUserUsecase_CreateUser_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// GetUser provides a mock function with given fields: ctx, username
func (_m *MockUserUsecase) GetUser(ctx context.Context, username string) (*entity.User, error) {
	ret := _m.Called(ctx, username)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

type MockUserUsecase_GetUser_Call struct {
	*mock.Call
}

func (_e *MockUserUsecase_Expecter) GetUser(ctx interface{}, username interface{}) *MockUserUsecase_GetUser_Call {
	return &MockUserUsecase_GetUser_Call{Call: _e.mock.On("GetUser", ctx, username)}
}

func (_c *MockUserUsecase_GetUser_Call) Return(_a0 *entity.User, _a1 error) *MockUserUsecase_GetUser_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// DeleteUser provides a mock function with given fields: ctx, username
func (_m *MockUserUsecase) DeleteUser(ctx context.Context, username string) error {
	ret := _m.Called(ctx, username)

	return ret.Error(0)
}

type MockUserUsecase_DeleteUser_Call struct {
	*mock.Call
}

func (_e *MockUserUsecase_Expecter) DeleteUser(ctx interface{}, username interface{}) *MockUserUsecase_DeleteUser_Call {
	return &MockUserUsecase_DeleteUser_Call{Call: _e.mock.On("DeleteUser", ctx, username)}
}

func (_c *MockUserUsecase_DeleteUser_Call) Return(_a0 error) *MockUserUsecase_DeleteUser_Call {
	_c.Call.Return(_a0)

	return _c
}

// ChangePassword provides a mock function with given fields: ctx, input
func (_m *MockUserUsecase) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	ret := _m.Called(ctx, input)

	return ret.Error(0)
}

type MockUserUsecase_ChangePassword_Call struct {
	*mock.Call
}

func (_e *MockUserUsecase_Expecter) ChangePassword(ctx interface{}, input interface{}) *MockUserUsecase_ChangePassword_Call {
	return &MockUserUsecase_ChangePassword_Call{Call: _e.mock.On("ChangePassword", ctx, input)}
}

func (_c *MockUserUsecase_ChangePassword_Call) Return(_a0 error) *MockUserUsecase_ChangePassword_Call {
	_c.Call.Return(_a0)

	return _c
}

// NewMockUserUsecase creates a new instance of MockUserUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
