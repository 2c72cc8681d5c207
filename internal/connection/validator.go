package connection

import (
	"context"
	"errors"
	"net/url"

	"github.com/eliziario/scanbridge/internal/client"
)

// Pinger is the slice of the scan client the validator needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CheckConnection performs the lightweight round trip that confirms the
// server is reachable and the credentials are accepted. Ordinary failure
// modes (timeout, DNS, connection refused, any non-2xx status) report
// false; anything else is an unexpected error and propagates.
func CheckConnection(ctx context.Context, p Pinger) (bool, error) {
	err := p.Ping(ctx)
	if err == nil {
		return true, nil
	}

	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		return false, nil
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return false, nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false, nil
	}

	return false, err
}
