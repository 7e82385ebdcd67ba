//go:build windows

package stderr

import "log/slog"

// Capture is a no-op on Windows.
type Capture struct{}

func Start(*slog.Logger) (*Capture, error) {
	return &Capture{}, nil
}

func (c *Capture) Stop() {}
