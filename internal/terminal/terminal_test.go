package terminal

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tracknav/internal/keymap"
	"github.com/llehouerou/tracknav/internal/ui/screen"
	"github.com/llehouerou/tracknav/internal/ui/testutil"
)

func newTestTerminal(t *testing.T) (*Terminal, *[]tea.Msg) {
	t.Helper()
	term := newTerminal(context.Background())
	t.Cleanup(term.cancel)
	var sent []tea.Msg
	term.send = func(msg tea.Msg) { sent = append(sent, msg) }
	return term, &sent
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []keymap.Key
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, []keymap.Key{keymap.Rune('j')}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("gg")}, keymap.Runes("gg")},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []keymap.Key{keymap.Rune(' ')}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []keymap.Key{keymap.Enter}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, []keymap.Key{keymap.Escape}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []keymap.Key{keymap.Backspace}},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, []keymap.Key{{Type: keymap.KeyOther}}},
		{"alt", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j"), Alt: true}, []keymap.Key{{Type: keymap.KeyOther}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translate(tt.msg))
		})
	}
}

func TestModel_KeysReachPollKey(t *testing.T) {
	term, _ := newTestTerminal(t)
	m := model{t: term}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("gj")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	for _, want := range []keymap.Key{keymap.Rune('g'), keymap.Rune('j'), keymap.Enter} {
		k, ok := term.PollKey(time.Millisecond)
		require.True(t, ok)
		assert.Equal(t, want, k)
	}
	_, ok := term.PollKey(time.Millisecond)
	assert.False(t, ok)
}

func TestModel_CtrlCCancels(t *testing.T) {
	term, _ := newTestTerminal(t)
	m := model{t: term}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.ErrorIs(t, term.Context().Err(), context.Canceled)
	_, ok := term.PollKey(time.Millisecond)
	assert.False(t, ok)
}

func TestModel_WindowSize(t *testing.T) {
	term, _ := newTestTerminal(t)
	m := model{t: term}

	m.Update(tea.WindowSizeMsg{Width: 30, Height: 5})
	assert.Equal(t, 30, term.Width())
	assert.Equal(t, 5, term.Height())

	select {
	case <-term.sized:
	default:
		t.Fatal("first size must be signalled")
	}
	m.Update(tea.WindowSizeMsg{Width: 10, Height: 2})
	assert.Equal(t, 10, term.Width())
}

func TestPushKey_DropsWhenFull(t *testing.T) {
	term, _ := newTestTerminal(t)
	for range keyBuffer + 10 {
		term.pushKey(keymap.Rune('j'))
	}
	assert.Len(t, term.keys, keyBuffer)
}

func TestSurface_PresentSendsFrame(t *testing.T) {
	term, sent := newTestTerminal(t)
	term.resized(12, 2)

	term.Clear()
	term.Print(0, 0, screen.Normal, "hello")
	term.Print(0, 1, screen.Status, "status")
	term.Present()

	require.Len(t, *sent, 1)
	frame, ok := (*sent)[0].(frameMsg)
	require.True(t, ok)

	assert.Equal(t, []string{"hello", "status"}, testutil.FrameLines(string(frame)))

	m, _ := model{t: term}.Update(frame)
	assert.Equal(t, string(frame), m.View())
}

func TestSurface_ClearFollowsSize(t *testing.T) {
	term, _ := newTestTerminal(t)
	term.resized(8, 3)
	term.Clear()
	assert.Equal(t, 8, term.buf.Width())
	assert.Equal(t, 3, term.buf.Height())

	term.resized(4, 1)
	term.Clear()
	assert.Equal(t, 4, term.buf.Width())
}
