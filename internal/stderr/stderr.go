//go:build !windows

// Package stderr redirects file descriptor 2 into the log while the terminal
// UI owns the screen, so stray writes (runtime warnings, library noise)
// cannot corrupt the layout.
package stderr

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// Capture is an active redirection of fd 2.
type Capture struct {
	orig int
	r, w *os.File
	done chan struct{}
}

// Start redirects fd 2 to a pipe whose lines are logged as warnings. If the
// redirection cannot be set up, stderr is left alone and the error returned.
func Start(log *slog.Logger) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	fd := int(os.Stderr.Fd())
	orig, err := unix.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}
	if err := unix.Dup2(int(w.Fd()), fd); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{orig: orig, r: r, w: w, done: make(chan struct{})}
	go func() {
		defer close(c.done)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				log.Warn("stderr", "line", line)
			}
		}
	}()
	return c, nil
}

// Stop restores the original stderr and waits until every captured line has
// been logged.
func (c *Capture) Stop() {
	_ = unix.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = unix.Close(c.orig)
	c.w.Close()
	<-c.done
	c.r.Close()
}
