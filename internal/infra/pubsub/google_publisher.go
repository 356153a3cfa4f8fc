package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"dropmarks/internal/domain/entity"
	"dropmarks/internal/domain/lifecycle"
	"dropmarks/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// ErrPublisherClosed is returned when publishing after Close.
var ErrPublisherClosed = errors.New("auth event publisher is closed")

// googlePubSubPublisher implements AuthEventPublisher using Google Cloud Pub/Sub.
// Publish does not wait for the server acknowledgement; results are
// collected in the background and failures are logged.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger

	// mu guards closed; pending.Add only happens under the read lock.
	mu      sync.RWMutex
	closed  bool
	pending sync.WaitGroup
}

func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.AuthEventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishAuthEvent(ctx context.Context, event *entity.AuthEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()

		return errors.WithStack(ErrPublisherClosed)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: messageAttributes(event),
	})
	p.pending.Add(1)
	p.mu.RUnlock()

	go func() {
		defer p.pending.Done()

		waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
		defer cancel()

		serverID, err := result.Get(waitCtx)
		if err != nil {
			p.logger.Error("[GooglePubSub] Failed to publish auth event",
				slog.String("request_id", event.RequestID),
				slog.Any("error", err),
			)

			return
		}

		p.logger.Debug("[GooglePubSub] Auth event published",
			slog.String("request_id", event.RequestID),
			slog.String("server_id", serverID),
		)
	}()

	return nil
}

// Close flushes buffered messages and releases Pub/Sub client resources.
func (p *googlePubSubPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return nil
	}
	p.closed = true
	p.mu.Unlock()

	if p.publisher != nil {
		p.publisher.Stop()
	}
	p.pending.Wait()

	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
