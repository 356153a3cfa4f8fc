package service

import (
	"context"

	"dropmarks/internal/domain/entity"
)

// AuthEventPublisher publishes authentication outcomes to a message queue.
type AuthEventPublisher interface {
	PublishAuthEvent(ctx context.Context, event *entity.AuthEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
