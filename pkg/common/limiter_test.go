package common

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestClientKey(t *testing.T) {
	tests := []struct {
		remote string
		want   string
	}{
		{"192.0.2.1:4000", "192.0.2.1"},
		{"192.0.2.1", "192.0.2.1"},
		{"[::1]:50051", "::1"},
		{"::1", "::1"},
		{"bufconn", "bufconn"},
		{"", "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClientKey(tt.remote), tt.remote)
	}
}

func TestClientLimiterSharesBucketAcrossPorts(t *testing.T) {
	clock := clockwork.NewFakeClock()
	limiter := NewClientLimiter(1, 2, clock)

	assert.True(t, limiter.Allow("192.0.2.1:4000"))
	assert.True(t, limiter.Allow("192.0.2.1:4001"))
	assert.False(t, limiter.Allow("192.0.2.1:4002"), "third call from the same host should be limited")

	// other hosts have their own bucket
	assert.True(t, limiter.Allow("192.0.2.2:4000"))
	assert.Equal(t, 2, limiter.Clients())

	clock.Advance(time.Second)
	assert.True(t, limiter.Allow("192.0.2.1"), "one token should be available after refill")
}

func TestClientLimiterPin(t *testing.T) {
	clock := clockwork.NewFakeClock()
	limiter := NewClientLimiter(0.001, 1, clock).WithIdle(time.Minute)

	limiter.Pin("127.0.0.1:9999", 1000, 1000)
	for range 100 {
		assert.True(t, limiter.Allow("127.0.0.1:1234"))
	}

	assert.True(t, limiter.Allow("192.0.2.1:4000"))
	clock.Advance(2 * time.Minute)
	assert.True(t, limiter.Allow("192.0.2.9:4000"))

	// the idle stranger is swept, the pinned client stays
	assert.Equal(t, 2, limiter.Clients())
	assert.True(t, limiter.Allow("127.0.0.1:1"))
}

func TestClientLimiterSweepsIdleClients(t *testing.T) {
	clock := clockwork.NewFakeClock()
	limiter := NewClientLimiter(0.001, 1, clock).WithIdle(time.Minute)

	assert.True(t, limiter.Allow("192.0.2.1:4000"))
	assert.False(t, limiter.Allow("192.0.2.1:4000"))

	clock.Advance(30 * time.Second)
	assert.True(t, limiter.Allow("192.0.2.2:4000"))

	clock.Advance(40 * time.Second)
	// first client idle for 70s is dropped and starts with a fresh bucket
	assert.True(t, limiter.Allow("192.0.2.1:4000"))
	assert.Equal(t, 2, limiter.Clients())
}

func TestClientLimiterNil(t *testing.T) {
	var limiter *ClientLimiter
	assert.True(t, limiter.Allow("192.0.2.1:4000"))
	limiter.Pin("192.0.2.1", 1, 1)
	assert.Zero(t, limiter.Clients())
}

func TestClientLimiterConcurrency(t *testing.T) {
	limiter := NewClientLimiter(10, 5, nil)
	client := uuid.NewString()

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter.Allow(client + ":" + string(rune('0'+i%10)))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, limiter.Clients())
}
