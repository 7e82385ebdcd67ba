// Package terminal runs a Bubble Tea program as the key source and screen
// surface of the navigator loop.
package terminal

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tracknav/internal/keymap"
	"github.com/llehouerou/tracknav/internal/ui/screen"
	"github.com/llehouerou/tracknav/internal/ui/styles"
)

// keyBuffer is how many key presses may wait for the loop before new ones
// are dropped.
const keyBuffer = 64

var interrupt = key.NewBinding(key.WithKeys("ctrl+c"))

// frameMsg carries a rendered frame from the loop to the program.
type frameMsg string

// Terminal bridges the program goroutine and the loop goroutine. Keys flow
// out through a channel; frames flow in through Program.Send.
type Terminal struct {
	program *tea.Program
	send    func(tea.Msg)
	ctx     context.Context
	cancel  context.CancelFunc

	keys   chan keymap.Key
	width  atomic.Int32
	height atomic.Int32
	sized  chan struct{}
	once   sync.Once

	buf   *screen.Buffer
	theme *styles.Theme

	done chan struct{}
	err  error
}

var _ screen.Surface = (*Terminal)(nil)

func newTerminal(ctx context.Context) *Terminal {
	ctx, cancel := context.WithCancel(ctx)
	return &Terminal{
		ctx:    ctx,
		cancel: cancel,
		keys:   make(chan keymap.Key, keyBuffer),
		sized:  make(chan struct{}),
		buf:    screen.NewBuffer(0, 0),
		theme:  styles.T(),
		done:   make(chan struct{}),
	}
}

// Start launches the program on the alternate screen and waits for the
// first window size.
func Start(ctx context.Context, opts ...tea.ProgramOption) (*Terminal, error) {
	t := newTerminal(ctx)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(t.ctx)}, opts...)
	t.program = tea.NewProgram(model{t: t}, opts...)
	t.send = t.program.Send

	go func() {
		defer close(t.done)
		defer t.cancel()
		_, t.err = t.program.Run()
	}()

	select {
	case <-t.sized:
		return t, nil
	case <-t.done:
		if t.err == nil {
			t.err = errors.New("terminal closed before first frame")
		}
		return nil, t.err
	case <-ctx.Done():
		t.program.Kill()
		<-t.done
		return nil, ctx.Err()
	}
}

// Context is cancelled on Ctrl+C or when the program exits.
func (t *Terminal) Context() context.Context {
	return t.ctx
}

// Close stops the program and restores the terminal.
func (t *Terminal) Close() error {
	t.program.Quit()
	<-t.done
	if errors.Is(t.err, tea.ErrProgramKilled) || errors.Is(t.err, context.Canceled) {
		return nil
	}
	return t.err
}

// PollKey waits at most timeout for a key press.
func (t *Terminal) PollKey(timeout time.Duration) (keymap.Key, bool) {
	select {
	case k := <-t.keys:
		return k, true
	default:
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case k := <-t.keys:
		return k, true
	case <-timer.C:
	case <-t.done:
	}
	return keymap.Key{}, false
}

func (t *Terminal) Width() int  { return int(t.width.Load()) }
func (t *Terminal) Height() int { return int(t.height.Load()) }

// Clear starts a new frame at the current window size.
func (t *Terminal) Clear() {
	if t.buf.Width() != t.Width() || t.buf.Height() != t.Height() {
		t.buf.Resize(t.Width(), t.Height())
		return
	}
	t.buf.Clear()
}

func (t *Terminal) Print(x, y int, style screen.Style, text string) {
	t.buf.Print(x, y, style, text)
}

// Present hands the frame to the program.
func (t *Terminal) Present() {
	t.buf.Present()
	t.send(frameMsg(t.buf.Render(t.theme.Paint)))
}

func (t *Terminal) resized(width, height int) {
	t.width.Store(int32(width))
	t.height.Store(int32(height))
	t.once.Do(func() { close(t.sized) })
}

// pushKey queues k for the loop, dropping it when the loop is behind.
func (t *Terminal) pushKey(k keymap.Key) {
	select {
	case t.keys <- k:
	default:
	}
}
