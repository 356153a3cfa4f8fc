package pubsub

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGooglePubSubPublisher_PublishAfterClose(t *testing.T) {
	p := &googlePubSubPublisher{logger: newDiscardLogger()}

	require.NoError(t, p.Close())

	err := p.PublishAuthEvent(context.Background(), testEvent())
	assert.True(t, errors.Is(err, ErrPublisherClosed))
}

func TestGooglePubSubPublisher_ConcurrentCloseAndPublish(t *testing.T) {
	p := &googlePubSubPublisher{logger: newDiscardLogger()}
	require.NoError(t, p.Close())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, p.Close())
		}()
		go func() {
			defer wg.Done()
			err := p.PublishAuthEvent(context.Background(), testEvent())
			assert.True(t, errors.Is(err, ErrPublisherClosed))
		}()
	}
	wg.Wait()
}
