package remote

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acamera-isp/ispreg-go/pkg/isp"
	"github.com/acamera-isp/ispreg-go/pkg/regspace"
	"github.com/acamera-isp/ispreg-go/pkg/transport"
)

func TestBackoffSequence(t *testing.T) {
	b := newBackoff(100*time.Millisecond, 500*time.Millisecond)

	bases := []time.Duration{100, 200, 400, 500, 500}
	for i, base := range bases {
		base *= time.Millisecond
		d := b.next()
		assert.GreaterOrEqual(t, d, base, "attempt %d", i)
		assert.LessOrEqual(t, d, base+base/4, "attempt %d", i)
	}
}

func TestBackoffDefaults(t *testing.T) {
	b := newBackoff(0, 0)
	assert.Equal(t, DefaultRetryInitial, b.current)
	assert.Equal(t, DefaultRetryMax, b.max)

	b = newBackoff(10*time.Second, 0)
	assert.Equal(t, 10*time.Second, b.max)
}

// freeAddr returns a loopback address nothing listens on.
func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestDialRetryGivesUp(t *testing.T) {
	addr := freeAddr(t)
	start := time.Now()
	_, err := DialRetry(context.Background(), addr, transport.ClientConfig{ConnectTimeout: time.Second},
		RetryConfig{Attempts: 3, Initial: 10 * time.Millisecond, Max: 20 * time.Millisecond})
	require.Error(t, err)
	// Two waits: 10ms and 20ms, plus jitter.
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestDialRetryCancelled(t *testing.T) {
	addr := freeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := DialRetry(ctx, addr, transport.ClientConfig{}, RetryConfig{Attempts: 5, Initial: time.Hour})
	assert.Error(t, err)
}

func TestDialRetryConnectsLate(t *testing.T) {
	addr := freeAddr(t)
	mem := regspace.NewMemoryWithImage(isp.Default().ResetImage())
	h := NewHandler(HandlerConfig{Space: mem, Size: isp.WindowSize})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := transport.NewServer(transport.ServerConfig{Address: addr, OnMessage: h.ServeFrame})
	go func() {
		time.Sleep(50 * time.Millisecond)
		if err := server.Start(ctx); err != nil {
			t.Errorf("start server: %v", err)
		}
	}()
	defer server.Stop()

	s, err := DialRetry(ctx, addr, transport.ClientConfig{ConnectTimeout: time.Second},
		RetryConfig{Attempts: 20, Initial: 20 * time.Millisecond, Max: 100 * time.Millisecond})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, uint32(0x04380780), s.ReadWord(isp.ISPTopActiveWidth.Offset))
	assert.NoError(t, s.Err())
}
