package common

import (
	"net"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

// DefaultClientIdle is how long a client bucket survives without traffic.
const DefaultClientIdle = 30 * time.Minute

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
	pinned   bool
}

// ClientLimiter keeps one token bucket per client of the HTTP and gRPC
// surfaces. A nil *ClientLimiter allows everything.
type ClientLimiter struct {
	clock clockwork.Clock
	rate  rate.Limit
	burst int
	idle  time.Duration

	mu        sync.Mutex
	buckets   map[string]*clientBucket
	lastSweep time.Time
}

func NewClientLimiter(clientRate rate.Limit, clientBurst int, clock clockwork.Clock) *ClientLimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ClientLimiter{
		clock:     clock,
		rate:      clientRate,
		burst:     clientBurst,
		idle:      DefaultClientIdle,
		buckets:   make(map[string]*clientBucket),
		lastSweep: clock.Now(),
	}
}

// WithIdle changes how long an unused bucket is kept. Zero keeps buckets
// forever.
func (l *ClientLimiter) WithIdle(idle time.Duration) *ClientLimiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.idle = idle
	return l
}

// ClientKey reduces a remote address to the host that owns it, so every
// connection from one machine draws from the same bucket.
func ClientKey(remote string) string {
	if remote == "" {
		return "unknown"
	}
	if host, _, err := net.SplitHostPort(remote); err == nil {
		return host
	}
	return remote
}

// Allow takes one token from the bucket of the client at remote.
func (l *ClientLimiter) Allow(remote string) bool {
	if l == nil {
		return true
	}
	key := ClientKey(remote)

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.sweepLocked(now)

	bucket, ok := l.buckets[key]
	if !ok {
		bucket = &clientBucket{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.buckets[key] = bucket
	}
	bucket.lastSeen = now
	return bucket.limiter.AllowN(now, 1)
}

// Pin gives one client its own rate, e.g. the local UI. Pinned buckets are
// never swept.
func (l *ClientLimiter) Pin(remote string, clientRate rate.Limit, clientBurst int) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buckets[ClientKey(remote)] = &clientBucket{
		limiter:  rate.NewLimiter(clientRate, clientBurst),
		lastSeen: l.clock.Now(),
		pinned:   true,
	}
}

// sweepLocked drops idle buckets at most once per idle period.
func (l *ClientLimiter) sweepLocked(now time.Time) {
	if l.idle <= 0 || now.Sub(l.lastSweep) < l.idle {
		return
	}
	l.lastSweep = now
	for key, bucket := range l.buckets {
		if !bucket.pinned && now.Sub(bucket.lastSeen) >= l.idle {
			delete(l.buckets, key)
		}
	}
}

// Clients is the number of buckets currently held.
func (l *ClientLimiter) Clients() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
