package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublisherCountersUnderConcurrency(t *testing.T) {
	p := NewMissionPublisher(nil)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			p.recordSuccess()
		}()
		go func() {
			defer wg.Done()
			p.recordFailure()
		}()
	}
	wg.Wait()

	metrics := p.GetMetrics()
	assert.Equal(t, int64(100), metrics["messages_published"])
	assert.Equal(t, int64(100), metrics["messages_failed"])
	assert.Equal(t, MissionQueue, metrics["queue"])
}

func TestHealthCheckWithoutConnection(t *testing.T) {
	p := NewMissionPublisher(nil)
	p.recordFailure()

	status := p.HealthCheck()

	assert.False(t, status.IsHealthy)
	assert.Equal(t, int64(0), status.MessagesPublished)
	assert.Equal(t, int64(1), status.MessagesFailed)
	assert.False(t, status.LastPublishTime.IsZero())
}
