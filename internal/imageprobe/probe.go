// Package imageprobe checks whether image URIs are loadable. It only
// consumes the success/failure signal; bytes and dimensions are never
// inspected.
package imageprobe

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Prober issues HEAD requests against image URIs.
type Prober struct {
	client *http.Client
}

// New creates a prober with the given per-request timeout.
func New(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Prober{
		client: &http.Client{Timeout: timeout},
	}
}

// Probe reports nil if the URI answers with a non-error status.
// Any transport error or 4xx/5xx status counts as a load failure.
func (p *Prober) Probe(ctx context.Context, uri string) error {
	if uri == "" {
		return fmt.Errorf("empty image uri")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, uri, nil)
	if err != nil {
		return fmt.Errorf("invalid image uri %q: %w", uri, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("image fetch failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}
	return nil
}
