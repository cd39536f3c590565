package remote

import (
	"context"
	"math/rand"
	"time"

	"github.com/acamera-isp/ispreg-go/pkg/transport"
)

// Retry defaults.
const (
	DefaultRetryInitial = 250 * time.Millisecond
	DefaultRetryMax     = 5 * time.Second
	retryMultiplier     = 2.0
	retryJitter         = 0.25
)

// RetryConfig controls DialRetry.
type RetryConfig struct {
	// Attempts is the total number of connection attempts. Values below 1
	// mean a single attempt.
	Attempts int

	// Initial is the delay after the first failed attempt.
	Initial time.Duration

	// Max caps the delay between attempts.
	Max time.Duration
}

// backoff calculates exponential delays with jitter.
type backoff struct {
	current time.Duration
	max     time.Duration
	rng     *rand.Rand
}

func newBackoff(initial, max time.Duration) *backoff {
	if initial <= 0 {
		initial = DefaultRetryInitial
	}
	if max < initial {
		max = DefaultRetryMax
		if max < initial {
			max = initial
		}
	}
	return &backoff{
		current: initial,
		max:     max,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// next returns the next delay (with jitter) and advances the backoff.
func (b *backoff) next() time.Duration {
	delay := b.current + time.Duration(float64(b.current)*retryJitter*b.rng.Float64())
	next := time.Duration(float64(b.current) * retryMultiplier)
	if next > b.max {
		next = b.max
	}
	b.current = next
	return delay
}

// DialRetry is Dial with up to cfg.Attempts connection attempts, waiting
// with exponential backoff between them. It is meant for starting next to
// a server that may not be listening yet. The last connection error is
// returned when every attempt fails.
func DialRetry(ctx context.Context, address string, config transport.ClientConfig, cfg RetryConfig) (*Space, error) {
	attempts := max(cfg.Attempts, 1)
	b := newBackoff(cfg.Initial, cfg.Max)

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			timer := time.NewTimer(b.next())
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		s, err := Dial(ctx, address, config)
		if err == nil {
			return s, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}
