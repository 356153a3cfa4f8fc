package service

import (
	"context"

	"dropmarks/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAuthEventPublisher is a mock type for the AuthEventPublisher type
type MockAuthEventPublisher struct {
	mock.Mock
}

type MockAuthEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthEventPublisher) EXPECT() *MockAuthEventPublisher_Expecter {
	return &MockAuthEventPublisher_Expecter{mock: &_m.Mock}
}

// PublishAuthEvent provides a mock function with given fields: ctx, event
func (_m *MockAuthEventPublisher) PublishAuthEvent(ctx context.Context, event *entity.AuthEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

type MockAuthEventPublisher_PublishAuthEvent_Call struct {
	*mock.Call
}

func (_e *MockAuthEventPublisher_Expecter) PublishAuthEvent(ctx interface{}, event interface{}) *MockAuthEventPublisher_PublishAuthEvent_Call {
	return &MockAuthEventPublisher_PublishAuthEvent_Call{Call: _e.mock.On("PublishAuthEvent", ctx, event)}
}

func (_c *MockAuthEventPublisher_PublishAuthEvent_Call) Run(run func(ctx context.Context, event *entity.AuthEvent)) *MockAuthEventPublisher_PublishAuthEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.AuthEvent))
	})

	return _c
}

func (_c *MockAuthEventPublisher_PublishAuthEvent_Call) Return(_a0 error) *MockAuthEventPublisher_PublishAuthEvent_Call {
	_c.Call.Return(_a0)

	return _c
}

// Close provides a mock function with no fields
func (_m *MockAuthEventPublisher) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}

// NewMockAuthEventPublisher creates a new instance of MockAuthEventPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAuthEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthEventPublisher {
	m := &MockAuthEventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
