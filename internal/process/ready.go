package process

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/eveflipper/launcher/internal/config"
	"github.com/eveflipper/launcher/internal/errors"
)

// readyPollInterval is the delay between readiness connection attempts.
const readyPollInterval = 100 * time.Millisecond

// WaitReady polls the backend's loopback port until it accepts a TCP
// connection or the timeout elapses.
//
// This is opt-in: by default the launcher only detects spawn failure, not
// bind failure inside the backend.
func WaitReady(ctx context.Context, timeout time.Duration) error {
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(Port))

	return waitReady(ctx, addr, timeout)
}

func waitReady(ctx context.Context, addr string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = config.DefaultReadyTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(readyPollInterval)
	defer ticker.Stop()

	var dialer net.Dialer

	for {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err == nil {
			_ = conn.Close()

			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %s not reachable: %v", errors.ErrNotReady, addr, ctx.Err())
		case <-ticker.C:
		}
	}
}
